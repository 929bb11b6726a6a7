package report

import (
	"sort"

	"plagscan/internal/checker"
)

// palette holds the distinct highlight colors assigned to reference
// documents; more documents than colors wrap around.
var palette = []string{
	"#FF5733", // red-orange
	"#33A8FF", // blue
	"#33FF57", // green
	"#FF33A8", // pink
	"#A833FF", // purple
	"#FFD433", // yellow
	"#33FFD4", // teal
	"#FF8333", // orange
	"#8333FF", // indigo
	"#33FF83", // mint
}

// DocumentColors assigns a display color to each reference document seen
// in the matches. Documents are sorted first so assignment is
// deterministic across runs.
func DocumentColors(matches []checker.Match) map[string]string {
	docs := referenceDocuments(matches)
	colors := make(map[string]string, len(docs))
	for i, doc := range docs {
		colors[doc] = palette[i%len(palette)]
	}
	return colors
}

func referenceDocuments(matches []checker.Match) []string {
	seen := map[string]struct{}{}
	for _, m := range matches {
		seen[m.ReferenceDocument] = struct{}{}
	}
	docs := make([]string, 0, len(seen))
	for doc := range seen {
		docs = append(docs, doc)
	}
	sort.Strings(docs)
	return docs
}
