// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/site"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates parses every page template with the site helpers installed.
// Each page is addressed by its file name, e.g. "home.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static serves the embedded static directory rooted at its contents.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// ErrorPanel is the data of the shared error partial.
type ErrorPanel struct {
	Message  string
	RetryURL string
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon":       Icon,
		"img":        Image,
		"formatDate": FormatDate,
		"label":      Label,
		"tel":        Tel,
		"panel": func(msg, retry string) ErrorPanel {
			if msg == "" {
				msg = content.FallbackMessage
			}
			return ErrorPanel{Message: msg, RetryURL: retry}
		},
	}
}

var icons = map[string]string{
	"tennis":     "🎾",
	"badminton":  "🏸",
	"squash":     "🎾",
	"swimming":   "🏊",
	"pool":       "🏊",
	"cricket":    "🏏",
	"football":   "⚽",
	"basketball": "🏀",
	"gym":        "🏋",
	"fitness":    "🏋",
	"yoga":       "🧘",
	"spa":        "💆",
	"dining":     "🍽",
	"restaurant": "🍽",
	"cafe":       "☕",
	"bar":        "🍸",
	"library":    "📚",
	"kids":       "🧸",
	"parking":    "🅿",
	"events":     "🎉",
	"banquet":    "🎉",
	"rooms":      "🛏",
}

const defaultIcon = "★"

// Icon maps the API's icon name onto a glyph. Unknown names get a star.
func Icon(name string) string {
	if g, ok := icons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return defaultIcon
}

// Image substitutes the placeholder for a missing image.
func Image(src string) string {
	if strings.TrimSpace(src) == "" {
		return site.FallbackImage
	}
	return src
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// FormatDate renders API dates as "2 Jan 2006". Unparseable input is shown
// as is.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return s
}

// Label turns a category key into a tab label: "water-sports" -> "Water Sports".
func Label(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Tel strips a display phone number down to a tel: URI.
func Tel(phone string) template.URL {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return template.URL("tel:" + b.String())
}
