package pages

import (
	"net/url"
	"sort"
	"strings"

	"github.com/Nixie-Tech-LLC/clubsite/internal/fetch"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
	"github.com/Nixie-Tech-LLC/clubsite/internal/site"
	"github.com/Nixie-Tech-LLC/clubsite/internal/ui"
)

// Layout is the shared chrome every page renders around its sections.
type Layout struct {
	Title    string
	ClubName string
	Path     string
	RetryURL string
	Year     int
	Nav      []site.NavItem
	Scroll   *ui.ScrollLock
	Footer   Footer
}

// Footer sections load independently of each other and of the page.
type Footer struct {
	Sports    fetch.State[[]model.FooterLink]
	Amenities fetch.State[[]model.FooterLink]
	Contact   fetch.State[model.ContactInfo]
}

// ContactInfo is the live contact record with every missing field filled
// from the hard-coded details.
func (f Footer) ContactInfo() model.ContactInfo {
	return mergeContact(f.Contact, site.Contact)
}

func mergeContact(s fetch.State[model.ContactInfo], fallback model.ContactInfo) model.ContactInfo {
	if !s.Ready() {
		return fallback
	}
	c := s.Data()
	if len(c.Address.Lines()) == 0 {
		c.Address = fallback.Address
	}
	if c.Phone == "" {
		c.Phone = fallback.Phone
	}
	if c.Email == "" {
		c.Email = fallback.Email
	}
	if c.WhatsApp == "" {
		c.WhatsApp = fallback.WhatsApp
	}
	if len(c.Hours) == 0 {
		c.Hours = fallback.Hours
	}
	if len(c.Social) == 0 {
		c.Social = fallback.Social
	}
	return c
}

type Tab struct {
	Name   string
	URL    string
	Active bool
}

func tabs(path, param string, names []string, active string) []Tab {
	if active == "" {
		active = ui.AllCategories
	}
	out := make([]Tab, 0, len(names))
	for _, n := range names {
		q := url.Values{}
		if n != ui.AllCategories {
			q.Set(param, n)
		}
		out = append(out, Tab{Name: n, URL: link(path, q), Active: n == active})
	}
	return out
}

// link builds path?query with keys in a stable order.
func link(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Get(k)))
	}
	return b.String()
}

type Slide struct {
	model.HeroSlide
	Active bool
}

type HeroView struct {
	Slides   []Slide
	Current  int
	PrevURL  string
	NextURL  string
	Interval int // milliseconds, read by the client-side auto-advance
}

type homePage struct {
	Layout
	Hero         fetch.State[[]model.HeroSlide]
	HeroView     HeroView
	Featured     fetch.State[[]model.Facility]
	Testimonials []model.Testimonial
	Upcoming     fetch.State[[]model.Event]
	Popup        bool
	PopupClose   string
}

type aboutPage struct {
	Layout
	About    model.AboutUs
	Settings model.AboutSettings
	Logos    fetch.State[[]model.AffiliationLogo]
}

type facilitiesPage struct {
	Layout
	Heading  string
	Intro    string
	BasePath string
	Items    fetch.State[[]model.Facility]
	Tabs     []Tab
}

type Rule struct {
	Number    int
	Text      string
	Open      bool
	ToggleURL string
}

type sportPage struct {
	Layout
	Sport    model.Facility
	Images   []string
	Image    int
	PrevURL  string
	NextURL  string
	Rules    []Rule
	Category string
}

type Tile struct {
	Image model.GalleryImage
	Index int
	URL   string
}

type LightboxView struct {
	Image    model.GalleryImage
	Position int
	Total    int
	PrevURL  string
	NextURL  string
	CloseURL string
}

type galleryPage struct {
	Layout
	Images   fetch.State[[]model.GalleryImage]
	Tabs     []Tab
	Tiles    []Tile
	Lightbox *LightboxView
}

type eventsPage struct {
	Layout
	Events fetch.State[[]model.Event]
	Tabs   []Tab
}

type membershipPage struct {
	Layout
	Tiers        []model.MembershipTier
	Testimonials []model.Testimonial
}

type affiliationsPage struct {
	Layout
	Affiliations fetch.State[[]model.Affiliation]
	Form         formView
}

type contactPage struct {
	Layout
	Contact model.ContactInfo
	Hours   []hoursRow
	Form    formView
}

type hoursRow struct {
	Area  string
	Hours string
}

type guestPage struct {
	Layout
	Purpose  string
	Purposes []Tab
	Form     formView
}

// formView carries what an enquiry form posts and where to come back to.
type formView struct {
	Action string
	Type   string
	Return string
}

type resultPage struct {
	Layout
	Success   bool
	Message   string
	Reference string
	BackURL   string
}

type notFoundPage struct {
	Layout
}
