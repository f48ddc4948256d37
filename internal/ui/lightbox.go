package ui

import "strconv"

// Lightbox is the open/closed state of the gallery overlay plus the
// positions its prev/next controls link to.
type Lightbox struct {
	Open  bool
	Index int
	Prev  int
	Next  int
	Len   int
}

// ParseLightbox reads the ?image= parameter. Anything that is not an index
// into a non-empty list leaves the lightbox closed.
func ParseLightbox(param string, n int) Lightbox {
	lb := Lightbox{Len: n}
	if param == "" || n == 0 {
		return lb
	}
	i, err := strconv.Atoi(param)
	if err != nil || i < 0 || i >= n {
		return lb
	}
	lb.Open = true
	lb.Index = i
	lb.Prev = PrevIndex(i, n)
	lb.Next = NextIndex(i, n)
	return lb
}
