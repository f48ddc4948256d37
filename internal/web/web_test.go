package web

import (
	"html/template"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/clubsite/internal/site"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"home.html", "about.html", "facilities.html", "sport.html", "gallery.html",
		"events.html", "membership.html", "affiliations.html", "contact.html",
		"guest_registration.html", "enquiry_result.html", "not_found.html",
		"head", "foot", "error", "empty", "loading",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStaticServesPlaceholder(t *testing.T) {
	f, err := Static().Open("/img/placeholder.svg")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestStaticServesHeroScript(t *testing.T) {
	f, err := Static().Open("/js/hero.js")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "data-interval")
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "🏊", Icon("Swimming"))
	assert.Equal(t, "🎾", Icon(" tennis "))
	assert.Equal(t, defaultIcon, Icon("curling"))
	assert.Equal(t, defaultIcon, Icon(""))
}

func TestImage(t *testing.T) {
	assert.Equal(t, site.FallbackImage, Image(""))
	assert.Equal(t, site.FallbackImage, Image("  "))
	assert.Equal(t, "/a.jpg", Image("/a.jpg"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "7 Mar 2026", FormatDate("2026-03-07"))
	assert.Equal(t, "7 Mar 2026", FormatDate("2026-03-07T18:30:00Z"))
	assert.Equal(t, "next Friday", FormatDate("next Friday"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Water Sports", Label("water-sports"))
	assert.Equal(t, "All", Label("all"))
	assert.Equal(t, "", Label(""))
	assert.Equal(t, "Équipe Junior", Label("équipe-junior"))
}

func TestTel(t *testing.T) {
	assert.Equal(t, template.URL("tel:+912040001234"), Tel("+91 20 4000 1234"))
}
