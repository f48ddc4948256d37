package site

import "github.com/Nixie-Tech-LLC/clubsite/internal/model"

// NavItem is one entry of the main menu. Children render as a dropdown.
type NavItem struct {
	Label    string
	Path     string
	Children []NavItem
}

// Nav is the main menu. Every path here is a registered route.
var Nav = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "About Us", Path: "/about-us"},
	{Label: "Sports", Path: "/sports"},
	{Label: "Amenities", Path: "/amenities"},
	{Label: "Events", Path: "/events"},
	{Label: "Gallery", Path: "/gallery"},
	{Label: "Membership", Path: "/membership", Children: []NavItem{
		{Label: "Membership Plans", Path: "/membership"},
		{Label: "Guest Registration", Path: "/guest-registration"},
		{Label: "Affiliations", Path: "/affiliations"},
	}},
	{Label: "Contact", Path: "/contact"},
}

// Paths flattens Nav, parents before children, without duplicates.
func Paths() []string {
	seen := map[string]bool{}
	var out []string
	var walk func([]NavItem)
	walk = func(items []NavItem) {
		for _, it := range items {
			if !seen[it.Path] {
				seen[it.Path] = true
				out = append(out, it.Path)
			}
			walk(it.Children)
		}
	}
	walk(Nav)
	return out
}

// FindFacility matches on category and slug. An empty slug on the record
// falls back to its id.
func FindFacility(list []model.Facility, category, slug string) (model.Facility, bool) {
	for _, f := range list {
		key := f.Slug
		if key == "" {
			key = f.ID.String()
		}
		if f.Category == category && key == slug {
			return f, true
		}
	}
	return model.Facility{}, false
}
