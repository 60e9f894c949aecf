package entity

// ProfessionalFilter is a domain-level filter for the discovery search.
// Zero values mean "no filter".
type ProfessionalFilter struct {
	CategoryID uint
	City       string // case-insensitive substring of the owner's city
}
