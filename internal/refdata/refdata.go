// Package refdata is the reference-data store behind persona generation.
// It holds three read-only tables (names tagged by gender, adjectives and
// area codes) in a local SQLite file and serves uniformly random single-row
// lookups. Lookups never fail: storage problems degrade to fixed fallback
// values reported through Lookup.
package refdata

import (
	"errors"
	"fmt"
	"strings"
)

// Fallback values returned by degraded lookups.
const (
	UnknownName      = "Nome Desconhecido"
	DefaultAdjective = "oficial"
	AreaCodeFailure  = "??"
)

// Lookup failure kinds. A degraded Lookup's Reason wraps exactly one of these.
var (
	ErrUnavailable = errors.New("reference store unavailable")
	ErrQuery       = errors.New("reference query failed")
	ErrEmpty       = errors.New("no matching reference row")
)

// ErrInvalidGender is returned by ParseGender for unrecognised input.
var ErrInvalidGender = errors.New("invalid gender")

// Lookup is the result of a random reference lookup. When Degraded is set,
// Value holds the documented fallback and Reason explains why.
type Lookup struct {
	Value    string
	Degraded bool
	Reason   error
}

// Gender tags a name entry. The zero value matches any gender.
type Gender string

const (
	GenderAny    Gender = ""
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ParseGender accepts M/F in either case, a few long forms, and "" or "any".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "*":
		return GenderAny, nil
	case "m", "male", "masculino":
		return GenderMale, nil
	case "f", "female", "feminino":
		return GenderFemale, nil
	}
	return GenderAny, fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

func (g Gender) String() string {
	if g == GenderAny {
		return "any"
	}
	return string(g)
}

// Next cycles any -> M -> F -> any.
func (g Gender) Next() Gender {
	switch g {
	case GenderAny:
		return GenderMale
	case GenderMale:
		return GenderFemale
	}
	return GenderAny
}

// NameEntry is one row of the names table.
type NameEntry struct {
	Name   string
	Gender Gender
}

// Counts reports table sizes.
type Counts struct {
	Male       int `json:"male"`
	Female     int `json:"female"`
	Adjectives int `json:"adjectives"`
	AreaCodes  int `json:"area_codes"`
}

// Names returns the total number of name rows.
func (c Counts) Names() int {
	return c.Male + c.Female
}

func isAreaCode(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
