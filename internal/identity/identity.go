// Package identity generates disposable persona data: a display name, a
// login handle, a checksum-valid CPF and a phone number. Names, adjectives
// and area codes come from a reference Source; everything else is drawn
// from the generator's own random source.
package identity

import (
	"slices"

	"github.com/zarlcorp/zpersona/internal/refdata"
)

// Field names reported in Record.Degraded.
const (
	FieldName  = "name"
	FieldLogin = "login"
	FieldPhone = "phone"
)

// Record is one generated persona. It is never persisted.
type Record struct {
	DisplayName    string         `json:"display_name"`
	Login          string         `json:"login"`
	NationalID     string         `json:"national_id"`
	PhoneFormatted string         `json:"phone_formatted"`
	PhoneRaw       string         `json:"phone_raw"`
	Gender         refdata.Gender `json:"gender,omitempty"`
	// Degraded lists the fields built from a fallback value.
	Degraded []string `json:"degraded,omitempty"`
}

// IsDegraded reports whether field carries a fallback value.
func (r Record) IsDegraded(field string) bool {
	return slices.Contains(r.Degraded, field)
}
