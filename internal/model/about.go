package model

type AboutUs struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Mission    string   `json:"mission"`
	Vision     string   `json:"vision"`
	Image      string   `json:"image"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AboutSettings struct {
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroImage    string `json:"hero_image"`
	Stats        []Stat `json:"stats"`
}

// MembershipTier is rendered from hard-coded content only.
type MembershipTier struct {
	Name      string
	Price     string
	Perks     []string
	Highlight bool
}
