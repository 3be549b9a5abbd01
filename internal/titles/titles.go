// Package titles folds a decade of inconsistent officer titles into the
// canonical position names used by the current system.
package titles

import "sort"

// Normalizer maps every historically observed title to its canonical form
// and knows which canonical titles are retired (no longer fillable, kept
// for historical views). The tables are hand-maintained and exhaustive;
// unknown titles are a policy decision for a human, never a fuzzy match.
type Normalizer struct {
	canonical map[string]string
	retired   map[string]struct{}
}

// Resolve returns the canonical title for a raw legacy title. The boolean
// is false when the title has never been mapped.
func (n *Normalizer) Resolve(raw string) (string, bool) {
	c, ok := n.canonical[raw]
	return c, ok
}

// IsRetired reports whether a canonical title is retired.
func (n *Normalizer) IsRetired(canonical string) bool {
	_, ok := n.retired[canonical]
	return ok
}

// Canonical returns the sorted set of canonical titles.
func (n *Normalizer) Canonical() []string {
	seen := map[string]struct{}{}
	for _, c := range n.canonical {
		seen[c] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Legacy returns the sorted set of mapped legacy titles.
func (n *Normalizer) Legacy() []string {
	out := make([]string, 0, len(n.canonical))
	for raw := range n.canonical {
		out = append(out, raw)
	}
	sort.Strings(out)
	return out
}

// Default returns the normalization tables for the organization's full
// 2015-2025 history. Every synonym, abbreviation, and "X" vs "X Head"
// variant ever seen in the legacy data appears here.
func Default() *Normalizer {
	return &Normalizer{
		canonical: map[string]string{
			// Primary officers (exist in current system)
			"President":      "President",
			"Vice President": "Vice President",
			"Treasurer":      "Treasurer",
			"Secretary":      "Secretary",

			// Committee heads (exist in current system)
			"Mentoring Head":   "Mentoring Head",
			"Mentoring":        "Mentoring Head",
			"Career Mentoring": "Mentoring Head",
			"Mentoring Hours":  "Mentoring Head",

			"Public Relations Head": "Public Relations Head",
			"Public Relations":      "Public Relations Head",
			"PR":                    "Public Relations Head",

			"Projects Head": "Projects Head",
			"Projects":      "Projects Head",

			"Talks Head": "Talks Head",
			"Talks":      "Talks Head",

			"Career Development Head": "Career Development Head",
			"Career Development":      "Career Development Head",

			"Marketing Head": "Marketing Head",
			"Marketing":      "Marketing Head",

			"Events":      "Events",
			"Events Head": "Events",

			"Laboratory Operations":      "Laboratory Operations",
			"Laboratory Operations Head": "Laboratory Operations",
			"Lab Operations":             "Laboratory Operations",
			"Lab Operations Head":        "Laboratory Operations",
			"Lab Ops":                    "Laboratory Operations",

			"Tech Head":       "Tech Head",
			"Technology":      "Tech Head",
			"Technology Head": "Tech Head",

			// Retired positions (no longer in current org)
			"Tech Head Apprentice": "Tech Head Apprentice",

			"Historian":      "Historian",
			"Historian Head": "Historian",

			"Branding Head": "Branding Head",

			"Outreach":              "Student Outreach Head",
			"Student Outreach":      "Student Outreach Head",
			"Student Outreach Head": "Student Outreach Head",

			"Review Sessions": "Review Sessions Head",

			"Spring Fling": "Spring Fling Head",

			"Winter Ball":     "Winterball Head",
			"Winterball Head": "Winterball Head",
		},
		retired: map[string]struct{}{
			"Tech Head Apprentice":  {},
			"Historian":             {},
			"Branding Head":         {},
			"Student Outreach Head": {},
			"Review Sessions Head":  {},
			"Spring Fling Head":     {},
			"Winterball Head":       {},
		},
	}
}
