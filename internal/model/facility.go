package model

// Facility is an amenity or a sport as returned by the content API.
type Facility struct {
	ID               ID       `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Icon             string   `json:"icon"`
	Image            string   `json:"image"`
	Images           []string `json:"images,omitempty"`
	Timings          string   `json:"timings,omitempty"`
	Capacity         string   `json:"capacity,omitempty"`
	AccessRules      []string `json:"access_rules,omitempty"`
}

func (f Facility) CategoryName() string { return f.Category }

// Cover returns the first usable image of the facility.
func (f Facility) Cover() string {
	if f.Image != "" {
		return f.Image
	}
	for _, img := range f.Images {
		if img != "" {
			return img
		}
	}
	return ""
}

// FooterLink is the trimmed facility shape served by the footer endpoints.
type FooterLink struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

type HeroSlide struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Link     string `json:"link"`
}
