package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want Name
	}{
		{"Janet Parsons", Name{FirstName: "Janet", LastName: "Parsons"}},
		{"Adonis Julius Archer", Name{FirstName: "Adonis", MiddleNames: "Julius", LastName: "Archer"}},
		{"Hunter Uriah Mathew Clarke", Name{FirstName: "Hunter", MiddleNames: "Uriah Mathew", LastName: "Clarke"}},
		{"Cher", Name{FirstName: "Cher", LastName: "Cher"}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()

			got, err := ParseName(tc.line)
			if err != nil {
				t.Fatalf("ParseName(%q) err=%v", tc.line, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseName(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestParseName_CollapsesIrregularWhitespace(t *testing.T) {
	t.Parallel()

	cases := map[string]Name{
		"Hunter  Uriah   Clarke":     {FirstName: "Hunter", MiddleNames: "Uriah", LastName: "Clarke"},
		" Janet Parsons ":            {FirstName: "Janet", LastName: "Parsons"},
		"Hunter Uriah  Mathew Clarke": {FirstName: "Hunter", MiddleNames: "Uriah Mathew", LastName: "Clarke"},
		"Leo\tGardner":               {FirstName: "Leo", LastName: "Gardner"},
	}
	for line, want := range cases {
		got, err := ParseName(line)
		if err != nil {
			t.Fatalf("ParseName(%q) err=%v", line, err)
		}
		if got != want {
			t.Fatalf("ParseName(%q)=%+v, want %+v", line, got, want)
		}
		if got.String() != NormalizeHumanName(line) {
			t.Fatalf("ParseName(%q).String()=%q, want %q", line, got.String(), NormalizeHumanName(line))
		}
	}
}

func TestParseName_BlankLine(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", " ", "\t  "} {
		if _, err := ParseName(line); !errors.Is(err, ErrBlankName) {
			t.Fatalf("ParseName(%q) err=%v, want %v", line, err, ErrBlankName)
		}
	}
}

func TestName_StringRoundTrip(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Janet Parsons",
		"Adonis Julius Archer",
		"Hunter Uriah Mathew Clarke",
		"Frankie Conner Ritter",
	}
	for _, line := range lines {
		n, err := ParseName(line)
		if err != nil {
			t.Fatalf("ParseName(%q) err=%v", line, err)
		}
		if got := n.String(); got != line {
			t.Fatalf("round trip %q -> %q", line, got)
		}
	}
}

func TestCompareNames(t *testing.T) {
	t.Parallel()

	mustParse := func(s string) Name {
		t.Helper()
		n, err := ParseName(s)
		if err != nil {
			t.Fatalf("ParseName(%q) err=%v", s, err)
		}
		return n
	}

	cases := []struct {
		a, b string
		want int
	}{
		{"Marin Alvarez", "Adonis Julius Archer", -1},
		{"Vaughn Lewis", "London Lindsey", -1},
		{"Adam Smith", "Zoe Smith", -1},
		{"Ann Beth Smith", "Ann Smith", 1},
		{"Ann Beth Smith", "Ann Carol Smith", -1},
		{"Ann Smith", "Ann Smith", 0},
		// Ordinal comparison puts upper case before lower case.
		{"ann Zed", "ann apple", -1},
	}
	for _, tc := range cases {
		if got := CompareNames(mustParse(tc.a), mustParse(tc.b)); got != tc.want {
			t.Fatalf("CompareNames(%q, %q)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
