package namelists

type CreateNameListInput struct {
	// Names are raw lines; blank entries are dropped and the rest parsed and sorted.
	Names []string
	// Label is optional; nil or blank means unset.
	Label *string
}
