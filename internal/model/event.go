package model

const (
	EventUpcoming = "upcoming"
	EventPast     = "past"
)

type Event struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Type        string `json:"type"`
}

func (e Event) CategoryName() string { return e.Status }
