package domain

import "time"

// NameList is a sorted set of names stored through the API.
type NameList struct {
	ID NameListID
	// Label is an optional caller-supplied description; nil means unset.
	Label *string
	// Names are kept in sorted order.
	Names []Name

	CreatedAt time.Time
}
