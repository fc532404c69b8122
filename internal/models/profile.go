package models

// ExtractedProfile is the parse-resume response. Every field except Text is
// optional; a nil pointer serializes as an explicit null, never an error.
type ExtractedProfile struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Text  string  `json:"text"`
}

// Optional maps an empty heuristic result onto the absent marker.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
