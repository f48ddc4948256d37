// Package site holds the club's hard-coded content: what pages show when the
// content API fails or leaves a field empty.
package site

import "github.com/Nixie-Tech-LLC/clubsite/internal/model"

const (
	ClubName      = "Riverside Sports & Leisure Club"
	FallbackImage = "/static/img/placeholder.svg"
)

// Contact is rendered whenever /contact-info is unavailable.
var Contact = model.ContactInfo{
	Address: model.Address{
		Line1:    "12 Riverside Drive",
		Line2:    "Clubhouse Gate 2",
		City:     "Pune",
		State:    "Maharashtra",
		Postcode: "411001",
		Country:  "India",
	},
	Phone:    "+91 20 4000 1234",
	Email:    "info@riversideclub.example",
	WhatsApp: "+91 98000 01234",
	Hours: map[string]string{
		"Clubhouse":      "6:00 AM - 11:00 PM",
		"Swimming Pool":  "6:00 AM - 9:00 PM",
		"Fitness Centre": "5:30 AM - 10:30 PM",
	},
	Social: map[string]string{
		"instagram": "https://instagram.com/riversideclub",
		"facebook":  "https://facebook.com/riversideclub",
	},
}

// Sports is the static sport facility catalogue used when /sports fails.
var Sports = []model.Facility{
	{
		ID: "tennis", Title: "Tennis", Slug: "tennis", Category: "racquet", Icon: "tennis",
		ShortDescription: "Four floodlit hard courts with coaching for all levels.",
		Description:      "Our hard courts are resurfaced every season and lit for evening play. Resident coaches run junior academies and adult clinics throughout the week.",
		Timings:          "6:00 AM - 10:00 PM", Capacity: "4 courts",
		AccessRules: []string{"Non-marking shoes only", "Courts bookable 7 days ahead", "Guests must be accompanied by a member"},
	},
	{
		ID: "badminton", Title: "Badminton", Slug: "badminton", Category: "racquet", Icon: "badminton",
		ShortDescription: "Six wooden courts in an air-conditioned hall.",
		Description:      "A dedicated hall with sprung wooden flooring, professional lighting and equipment hire.",
		Timings:          "6:00 AM - 11:00 PM", Capacity: "6 courts",
		AccessRules: []string{"Court slots are 45 minutes", "Shuttles available at the desk"},
	},
	{
		ID: "swimming", Title: "Swimming", Slug: "swimming", Category: "aquatics", Icon: "swimming",
		ShortDescription: "Temperature-controlled 25m pool with a separate kids' pool.",
		Description:      "Lane swimming, aqua aerobics and learn-to-swim programmes run year round under certified lifeguards.",
		Timings:          "6:00 AM - 9:00 PM", Capacity: "60 swimmers",
		AccessRules: []string{"Swim caps are mandatory", "Shower before entering the pool", "Children under 10 need an adult in the water"},
	},
	{
		ID: "cricket", Title: "Cricket", Slug: "cricket", Category: "field", Icon: "cricket",
		ShortDescription: "Turf nets and a full-size ground for league fixtures.",
		Description:      "Three turf nets with bowling machines and a maintained ground that hosts the club's weekend league.",
		Timings:          "6:00 AM - 7:00 PM", Capacity: "3 nets",
		AccessRules: []string{"Helmets required in the nets", "Ground bookings through the sports office"},
	},
	{
		ID: "football", Title: "Football", Slug: "football", Category: "field", Icon: "football",
		ShortDescription: "Five-a-side artificial turf pitch with floodlights.",
		Description:      "An all-weather pitch for five-a-side games, academy sessions and corporate leagues.",
		Timings:          "6:00 AM - 11:00 PM", Capacity: "10 players",
		AccessRules: []string{"Moulded studs or turf shoes only"},
	},
}

// Events fills the home page's upcoming list when /events fails. The events
// page itself shows the error.
var Events = []model.Event{
	{ID: "summer-gala", Title: "Summer Swim Gala", Date: "2026-05-16", Time: "9:00 AM", Location: "Main Pool", Description: "Inter-family relays and age-group races.", Status: model.EventUpcoming, Type: "sports"},
	{ID: "diwali-night", Title: "Diwali Night", Date: "2026-11-07", Time: "7:30 PM", Location: "Lawn", Description: "Dinner, music and fireworks for members and families.", Status: model.EventUpcoming, Type: "social"},
	{ID: "open-tennis", Title: "Club Open Tennis", Date: "2025-12-12", Time: "8:00 AM", Location: "Tennis Courts", Description: "Singles and doubles draws across four categories.", Status: model.EventPast, Type: "sports"},
}

var Testimonials = []model.Testimonial{
	{ID: "t1", Name: "Meera Kulkarni", Role: "Member since 2015", Quote: "The pool and the coaching staff are the reason our kids love weekends.", Rating: 5},
	{ID: "t2", Name: "Arjun Rao", Role: "Tennis league captain", Quote: "Courts are always in top shape and booking is painless.", Rating: 5},
	{ID: "t3", Name: "Sara D'Souza", Role: "Corporate member", Quote: "A calm place to unwind after work, with great food at the café.", Rating: 4},
}

var MembershipTiers = []model.MembershipTier{
	{Name: "Individual", Price: "₹45,000 / year", Perks: []string{"Full facility access", "Two guest passes a month", "Member rates at dining outlets"}},
	{Name: "Family", Price: "₹85,000 / year", Highlight: true, Perks: []string{"Covers two adults and two children", "Junior academy discounts", "Six guest passes a month"}},
	{Name: "Corporate", Price: "On request", Perks: []string{"Transferable nominee cards", "Banquet and meeting room credits", "Dedicated relationship manager"}},
}

var About = model.AboutUs{
	Heading: "About " + ClubName,
	Paragraphs: []string{
		"Founded in 1978 on the banks of the river, the club has grown from two tennis courts into a complete sports and leisure destination.",
		"Today more than 4,000 member families use our courts, pools, fitness centre and dining rooms.",
	},
	Mission: "To keep our community active, connected and at ease.",
	Vision:  "A club every generation of a family is proud to call home.",
}

var AboutSettings = model.AboutSettings{
	HeroTitle:    "Our Story",
	HeroSubtitle: "Four decades of sport and community",
	Stats: []model.Stat{
		{Label: "Member families", Value: "4,000+"},
		{Label: "Sports", Value: "15"},
		{Label: "Years", Value: "48"},
	},
}
