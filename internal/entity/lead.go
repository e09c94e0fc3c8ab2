package entity

// DefaultLeadName is used when an imported row carries no display name.
const DefaultLeadName = "Prospect"

type Lead struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
