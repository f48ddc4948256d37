// Package pages renders the public site. Every page loads its sections
// concurrently, then renders each one as content, an empty state or an
// error panel with a retry link.
package pages

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/db"
	"github.com/Nixie-Tech-LLC/clubsite/internal/fetch"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
	"github.com/Nixie-Tech-LLC/clubsite/internal/site"
	"github.com/Nixie-Tech-LLC/clubsite/internal/storage"
	"github.com/Nixie-Tech-LLC/clubsite/internal/ui"
)

// Content is the part of the content API client the pages use.
type Content interface {
	ContactInfo(ctx context.Context) (model.ContactInfo, error)
	FooterSports(ctx context.Context) ([]model.FooterLink, error)
	FooterAmenities(ctx context.Context) ([]model.FooterLink, error)
	Sports(ctx context.Context) ([]model.Facility, error)
	Amenities(ctx context.Context) ([]model.Facility, error)
	FeaturedAmenities(ctx context.Context, n int) ([]model.Facility, error)
	HeroSlides(ctx context.Context) ([]model.HeroSlide, error)
	AboutUs(ctx context.Context) (model.AboutUs, error)
	AboutSettings(ctx context.Context) (model.AboutSettings, error)
	Affiliations(ctx context.Context) ([]model.Affiliation, error)
	AffiliationLogos(ctx context.Context) ([]model.AffiliationLogo, error)
	Gallery(ctx context.Context) ([]model.GalleryImage, error)
	Events(ctx context.Context) ([]model.Event, error)
	Testimonials(ctx context.Context) ([]model.Testimonial, error)
	Brochure(ctx context.Context) ([]byte, string, error)
	SubmitEnquiry(ctx context.Context, p content.EnquiryPayload) (string, error)
	SubmitPartnershipEnquiry(ctx context.Context, p content.EnquiryPayload) (string, error)
}

// EnquiryNotifier announces stored enquiries to staff.
type EnquiryNotifier interface {
	EnquiryReceived(e model.Enquiry) error
}

// MirrorCache remembers where the brochure was mirrored to.
type MirrorCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

const (
	featuredCount       = 3
	upcomingCount       = 3
	defaultMirrorTTL    = 24 * time.Hour
)

type Config struct {
	Content  Content
	Store    db.Store
	Notifier EnquiryNotifier
	Storage  storage.Storage
	Cache    MirrorCache

	// Hero is the site-wide slide rotation; nil renders the first slide.
	Hero *ui.Carousel
	// HeroInterval is handed to the in-page rotation script; 0 disables it.
	HeroInterval time.Duration
	MirrorTTL    time.Duration
	Now          func() time.Time
}

type Handler struct {
	content      Content
	store        db.Store
	notifier     EnquiryNotifier
	storage      storage.Storage
	cache        MirrorCache
	hero         *ui.Carousel
	heroInterval time.Duration
	mirrorTTL    time.Duration
	now          func() time.Time
}

func New(cfg Config) *Handler {
	h := &Handler{
		content:      cfg.Content,
		store:        cfg.Store,
		notifier:     cfg.Notifier,
		storage:      cfg.Storage,
		cache:        cfg.Cache,
		hero:         cfg.Hero,
		heroInterval: cfg.HeroInterval,
		mirrorTTL:    cfg.MirrorTTL,
		now:          cfg.Now,
	}
	if h.heroInterval < 0 {
		h.heroInterval = 0
	}
	if h.mirrorTTL <= 0 {
		h.mirrorTTL = defaultMirrorTTL
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.store == nil {
		h.store = db.NewMemoryStore()
	}
	return h
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/", h.home)
	r.GET("/about-us", h.about)
	r.GET("/sports", h.sports)
	r.GET("/sports/:category/:sportSlug", h.sport)
	r.GET("/amenities", h.amenities)
	r.GET("/gallery", h.gallery)
	r.GET("/events", h.events)
	r.GET("/membership", h.membership)
	r.GET("/affiliations", h.affiliations)
	r.GET("/affiliations/brochure.pdf", h.brochure)
	r.GET("/contact", h.contact)
	r.GET("/guest-registration", h.guestRegistration)
	r.GET("/guest-registration/:kind", h.guestRegistration)

	r.POST("/enquiries", h.submitEnquiry)
	r.POST("/partnership/enquiry", h.submitPartnership)

	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
}

// begin fills the shared layout and queues the footer loads. The returned
// group is bound to the request context.
func (h *Handler) begin(c *gin.Context, l *Layout, title string) *fetch.Group {
	*l = Layout{
		Title:    title,
		ClubName: site.ClubName,
		Path:     c.Request.URL.Path,
		RetryURL: c.Request.URL.RequestURI(),
		Year:     h.now().Year(),
		Nav:      site.Nav,
		Scroll:   &ui.ScrollLock{},
	}

	g := fetch.NewGroup(c.Request.Context())
	fetch.Go(g, "footer.sports", &l.Footer.Sports, h.content.FooterSports)
	fetch.Go(g, "footer.amenities", &l.Footer.Amenities, h.content.FooterAmenities)
	fetch.Go(g, "footer.contact", &l.Footer.Contact, h.content.ContactInfo)
	return g
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	if c.Request.Context().Err() != nil {
		log.Debug().Str("path", c.Request.URL.Path).Msg("[pages] client went away before render")
		return
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page; it is also used as gin's NoRoute handler.
func (h *Handler) NotFound(c *gin.Context) {
	var data notFoundPage
	g := h.begin(c, &data.Layout, "Page not found")
	g.Wait()
	h.render(c, http.StatusNotFound, "not_found.html", data)
}
