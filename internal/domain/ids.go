package domain

// NameListID is an internal identifier for a stored name list (a UUID string).
type NameListID string
