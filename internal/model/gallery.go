package model

type GalleryImage struct {
	ID          ID     `json:"id"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (g GalleryImage) CategoryName() string { return g.Category }
