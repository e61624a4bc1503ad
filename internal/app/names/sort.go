package names

import (
	"slices"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
)

// ParseLines drops empty and whitespace-only lines and parses the rest,
// preserving input order.
func ParseLines(lines []string) []domain.Name {
	out := make([]domain.Name, 0, len(lines))
	for _, line := range lines {
		if domain.IsBlank(line) {
			continue
		}
		n, err := domain.ParseName(line)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SortNames returns a new slice ordered by domain.CompareNames.
// The sort is stable and the input slice is left untouched.
func SortNames(ns []domain.Name) []domain.Name {
	return SortBy(ns, func(n domain.Name) domain.Name { return n })
}

// SortBy returns a copy of items stably ordered by the name each item carries.
// Items whose names compare equal keep their relative input order.
func SortBy[T any](items []T, name func(T) domain.Name) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return domain.CompareNames(name(a), name(b))
	})
	return out
}

// FormatNames renders each name in "First [Middle...] Last" form.
func FormatNames(ns []domain.Name) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.String())
	}
	return out
}
