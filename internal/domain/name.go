package domain

import (
	"cmp"
	"errors"
	"strings"
)

// ErrBlankName is returned when a line holds no name tokens.
var ErrBlankName = errors.New("blank name")

// Name is a person's full name split into its ordering components.
//
// A Name is a value: it is built once by ParseName and only compared or
// formatted afterwards.
type Name struct {
	FirstName string
	// MiddleNames holds every token between the first and last, space-joined.
	// Empty when the line has fewer than three tokens.
	MiddleNames string
	LastName    string
}

// ParseName splits a line into first, middle and last names.
//
// Tokens are separated by runs of whitespace (see NormalizeHumanName), so
// repeated or surrounding spaces never produce empty tokens. A single-token
// line yields the same token as first and last name.
func ParseName(line string) (Name, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Name{}, ErrBlankName
	}

	n := Name{
		FirstName: tokens[0],
		LastName:  tokens[len(tokens)-1],
	}
	if len(tokens) > 2 {
		n.MiddleNames = strings.Join(tokens[1:len(tokens)-1], " ")
	}
	return n, nil
}

// String renders the name as "First [Middle...] Last".
func (n Name) String() string {
	if n.MiddleNames == "" {
		return n.FirstName + " " + n.LastName
	}
	return n.FirstName + " " + n.MiddleNames + " " + n.LastName
}

// CompareNames orders names by last name, then first name, then middle names,
// using ordinal (byte-wise) string comparison at every level.
func CompareNames(a, b Name) int {
	return cmp.Or(
		strings.Compare(a.LastName, b.LastName),
		strings.Compare(a.FirstName, b.FirstName),
		strings.Compare(a.MiddleNames, b.MiddleNames),
	)
}
