package model

type Testimonial struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	VideoURL  string `json:"video_url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Rating    int    `json:"rating"`
}

// Stars clamps the rating into 0..5 for display.
func (t Testimonial) Stars() []struct{} {
	n := t.Rating
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return make([]struct{}, n)
}
