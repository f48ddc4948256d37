package model

type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Lines drops empty address parts.
func (a Address) Lines() []string {
	var out []string
	for _, s := range []string{a.Line1, a.Line2, a.City, a.State, a.Postcode, a.Country} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

type ContactInfo struct {
	Address  Address           `json:"address"`
	Phone    string            `json:"phone"`
	Email    string            `json:"email"`
	WhatsApp string            `json:"whatsapp"`
	Hours    map[string]string `json:"hours"`
	Social   map[string]string `json:"social"`
}
