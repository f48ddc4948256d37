package model

type Affiliation struct {
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number,omitempty"`
}

type AffiliationLogo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}
