package pages

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/clubsite/internal/fetch"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
	"github.com/Nixie-Tech-LLC/clubsite/internal/site"
	"github.com/Nixie-Tech-LLC/clubsite/internal/ui"
)

const popupCookie = "announcement_seen"

func (h *Handler) home(c *gin.Context) {
	var (
		data         homePage
		testimonials fetch.State[[]model.Testimonial]
		events       fetch.State[[]model.Event]
	)
	g := h.begin(c, &data.Layout, "Home")
	fetch.Go(g, "home.hero", &data.Hero, h.content.HeroSlides)
	fetch.Go(g, "home.featured", &data.Featured, func(ctx context.Context) ([]model.Facility, error) {
		return h.content.FeaturedAmenities(ctx, featuredCount)
	})
	fetch.Go(g, "home.testimonials", &testimonials, h.content.Testimonials)
	fetch.Go(g, "home.events", &events, h.content.Events)
	g.Wait()

	data.Testimonials = testimonials.Or(site.Testimonials)
	if events.Failed() {
		events = fetch.Succeeded(site.Events)
	}

	data.Upcoming = events
	if events.Ready() {
		upcoming := ui.FilterByCategory(events.Data(), model.EventUpcoming)
		if len(upcoming) > upcomingCount {
			upcoming = upcoming[:upcomingCount]
		}
		data.Upcoming = fetch.Succeeded(upcoming)
	}

	if data.Hero.Ready() {
		data.HeroView = h.heroView(c, data.Hero.Data())
	}

	switch {
	case c.Query("popup") == "close":
		c.SetCookie(popupCookie, "1", 30*24*3600, "/", "", false, true)
	default:
		if _, err := c.Cookie(popupCookie); err != nil {
			data.Popup = true
			data.PopupClose = link("/", url.Values{"popup": {"close"}})
			release := data.Scroll.Acquire()
			defer release()
		}
	}

	h.render(c, http.StatusOK, "home.html", data)
}

// heroView picks the slide to show. ?slide= moves the site-wide rotation to
// that slide, which also restarts its timer.
func (h *Handler) heroView(c *gin.Context, slides []model.HeroSlide) HeroView {
	n := len(slides)
	current := 0
	if h.hero != nil {
		h.hero.Resize(n)
		current = h.hero.Index()
	}
	if raw := c.Query("slide"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			if h.hero != nil {
				current = h.hero.Goto(i)
			} else {
				current = ui.Wrap(i, n)
			}
		}
	}

	v := HeroView{
		Current:  current,
		PrevURL:  link("/", url.Values{"slide": {strconv.Itoa(ui.PrevIndex(current, n))}}),
		NextURL:  link("/", url.Values{"slide": {strconv.Itoa(ui.NextIndex(current, n))}}),
		Interval: int(h.heroInterval.Milliseconds()),
	}
	for i, s := range slides {
		v.Slides = append(v.Slides, Slide{HeroSlide: s, Active: i == current})
	}
	return v
}

func (h *Handler) about(c *gin.Context) {
	var (
		data     aboutPage
		about    fetch.State[model.AboutUs]
		settings fetch.State[model.AboutSettings]
	)
	g := h.begin(c, &data.Layout, "About Us")
	fetch.Go(g, "about.content", &about, h.content.AboutUs)
	fetch.Go(g, "about.settings", &settings, h.content.AboutSettings)
	fetch.Go(g, "about.logos", &data.Logos, h.content.AffiliationLogos)
	g.Wait()

	data.About = about.Or(site.About)
	if len(data.About.Paragraphs) == 0 {
		data.About.Paragraphs = site.About.Paragraphs
	}
	data.Settings = settings.Or(site.AboutSettings)
	if len(data.Settings.Stats) == 0 {
		data.Settings.Stats = site.AboutSettings.Stats
	}

	h.render(c, http.StatusOK, "about.html", data)
}

// sports falls back to the static catalogue silently; the page is never an
// error panel.
func (h *Handler) sports(c *gin.Context) {
	var (
		data   facilitiesPage
		sports fetch.State[[]model.Facility]
	)
	g := h.begin(c, &data.Layout, "Sports")
	fetch.Go(g, "sports", &sports, h.content.Sports)
	g.Wait()

	all := sports.Or(site.Sports)
	category := c.Query("category")

	data.Heading = "Sports Facilities"
	data.Intro = "Courts, pools and grounds for every level of play."
	data.BasePath = "/sports"
	data.Tabs = tabs("/sports", "category", ui.Categories(all), category)
	data.Items = fetch.Succeeded(ui.FilterByCategory(all, category))

	h.render(c, http.StatusOK, "facilities.html", data)
}

func (h *Handler) sport(c *gin.Context) {
	var (
		data   sportPage
		sports fetch.State[[]model.Facility]
	)
	category, slug := c.Param("category"), c.Param("sportSlug")

	g := h.begin(c, &data.Layout, "Sports")
	fetch.Go(g, "sports", &sports, h.content.Sports)
	g.Wait()

	sport, ok := site.FindFacility(sports.Or(site.Sports), category, slug)
	if !ok {
		sport, ok = site.FindFacility(site.Sports, category, slug)
	}
	if !ok {
		h.render(c, http.StatusNotFound, "not_found.html", notFoundPage{Layout: data.Layout})
		return
	}

	data.Title = sport.Title
	data.Sport = sport
	data.Category = category

	data.Images = sport.Images
	if len(data.Images) == 0 {
		data.Images = []string{sport.Cover()}
	}
	n := len(data.Images)
	data.Image = 0
	if i, err := strconv.Atoi(c.Query("image")); err == nil {
		data.Image = ui.Wrap(i, n)
	}

	open := -1
	if i, err := strconv.Atoi(c.Query("open")); err == nil && i >= 0 && i < len(sport.AccessRules) {
		open = i
	}

	base := c.Request.URL.Path
	withImage := func(q url.Values, img int) url.Values {
		if img != 0 {
			q.Set("image", strconv.Itoa(img))
		}
		return q
	}
	openQuery := func() url.Values {
		q := url.Values{}
		if open >= 0 {
			q.Set("open", strconv.Itoa(open))
		}
		return q
	}
	data.PrevURL = link(base, withImage(openQuery(), ui.PrevIndex(data.Image, n)))
	data.NextURL = link(base, withImage(openQuery(), ui.NextIndex(data.Image, n)))

	for i, rule := range sport.AccessRules {
		q := withImage(url.Values{}, data.Image)
		if next := ui.Toggle(open, i); next >= 0 {
			q.Set("open", strconv.Itoa(next))
		}
		data.Rules = append(data.Rules, Rule{Number: i + 1, Text: rule, Open: i == open, ToggleURL: link(base, q)})
	}

	h.render(c, http.StatusOK, "sport.html", data)
}

func (h *Handler) amenities(c *gin.Context) {
	var data facilitiesPage
	g := h.begin(c, &data.Layout, "Amenities")
	fetch.Go(g, "amenities", &data.Items, h.content.Amenities)
	g.Wait()

	data.Heading = "Amenities"
	data.Intro = "Everything beyond the game: dining, wellness and spaces to unwind."
	data.BasePath = "/amenities"
	if data.Items.Ready() {
		all := data.Items.Data()
		category := c.Query("category")
		data.Tabs = tabs("/amenities", "category", ui.Categories(all), category)
		data.Items = fetch.Succeeded(ui.FilterByCategory(all, category))
	}

	h.render(c, http.StatusOK, "facilities.html", data)
}

func (h *Handler) gallery(c *gin.Context) {
	var data galleryPage
	g := h.begin(c, &data.Layout, "Gallery")
	fetch.Go(g, "gallery", &data.Images, h.content.Gallery)
	g.Wait()

	if data.Images.Ready() {
		all := data.Images.Data()
		category := c.Query("category")
		filtered := ui.FilterByCategory(all, category)

		data.Tabs = tabs("/gallery", "category", ui.Categories(all), category)
		data.Images = fetch.Succeeded(filtered)

		base := url.Values{}
		if category != "" && category != ui.AllCategories {
			base.Set("category", category)
		}
		at := func(i int) string {
			q := url.Values{}
			for k, v := range base {
				q[k] = v
			}
			q.Set("image", strconv.Itoa(i))
			return link("/gallery", q)
		}

		for i, img := range filtered {
			data.Tiles = append(data.Tiles, Tile{Image: img, Index: i, URL: at(i)})
		}

		if lb := ui.ParseLightbox(c.Query("image"), len(filtered)); lb.Open {
			data.Lightbox = &LightboxView{
				Image:    filtered[lb.Index],
				Position: lb.Index + 1,
				Total:    lb.Len,
				PrevURL:  at(lb.Prev),
				NextURL:  at(lb.Next),
				CloseURL: link("/gallery", base),
			}
			release := data.Scroll.Acquire()
			defer release()
		}
	}

	h.render(c, http.StatusOK, "gallery.html", data)
}

func (h *Handler) events(c *gin.Context) {
	var data eventsPage
	g := h.begin(c, &data.Layout, "Events")
	fetch.Go(g, "events", &data.Events, h.content.Events)
	g.Wait()

	if data.Events.Ready() {
		all := data.Events.Data()
		status := c.Query("status")
		data.Tabs = tabs("/events", "status", []string{ui.AllCategories, model.EventUpcoming, model.EventPast}, status)

		filtered := ui.FilterByCategory(all, status)
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })
		data.Events = fetch.Succeeded(filtered)
	}

	h.render(c, http.StatusOK, "events.html", data)
}

func (h *Handler) membership(c *gin.Context) {
	var (
		data         membershipPage
		testimonials fetch.State[[]model.Testimonial]
	)
	g := h.begin(c, &data.Layout, "Membership")
	fetch.Go(g, "membership.testimonials", &testimonials, h.content.Testimonials)
	g.Wait()

	data.Tiers = site.MembershipTiers
	data.Testimonials = testimonials.Or(site.Testimonials)

	h.render(c, http.StatusOK, "membership.html", data)
}

func (h *Handler) affiliations(c *gin.Context) {
	var data affiliationsPage
	g := h.begin(c, &data.Layout, "Affiliations")
	fetch.Go(g, "affiliations", &data.Affiliations, h.content.Affiliations)
	g.Wait()

	data.Form = formView{Action: "/partnership/enquiry", Type: model.EnquiryPartnership, Return: "/affiliations"}
	h.render(c, http.StatusOK, "affiliations.html", data)
}

func (h *Handler) contact(c *gin.Context) {
	var data contactPage
	g := h.begin(c, &data.Layout, "Contact")
	g.Wait()

	data.Contact = data.Footer.ContactInfo()
	for area, hours := range data.Contact.Hours {
		data.Hours = append(data.Hours, hoursRow{Area: area, Hours: hours})
	}
	sort.Slice(data.Hours, func(i, j int) bool { return data.Hours[i].Area < data.Hours[j].Area })

	data.Form = formView{Action: "/enquiries", Type: model.EnquiryGeneral, Return: "/contact"}
	h.render(c, http.StatusOK, "contact.html", data)
}

// guestPurposes are the registration paths linked from the membership menu.
var guestPurposes = []struct{ Key, Label string }{
	{"visit", "Club visit"},
	{"event", "Event guest"},
	{"sports", "Sports trial"},
}

func (h *Handler) guestRegistration(c *gin.Context) {
	kind := c.Param("kind")
	purpose := ""
	for _, p := range guestPurposes {
		if p.Key == kind {
			purpose = p.Label
		}
	}
	if kind != "" && purpose == "" {
		h.NotFound(c)
		return
	}

	var data guestPage
	g := h.begin(c, &data.Layout, "Guest Registration")
	g.Wait()

	data.Purpose = purpose
	for _, p := range guestPurposes {
		data.Purposes = append(data.Purposes, Tab{Name: p.Label, URL: "/guest-registration/" + p.Key, Active: p.Key == kind})
	}
	data.Form = formView{Action: "/enquiries", Type: model.EnquiryGuest, Return: c.Request.URL.Path}
	h.render(c, http.StatusOK, "guest_registration.html", data)
}
