package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagscan/internal/checker"
)

func sampleMatches() []checker.Match {
	return []checker.Match{
		{
			InputSentence:     "The quick brown fox jumps over the lazy dog. ",
			InputStart:        0,
			InputEnd:          45,
			ReferenceSentence: "The quick brown fox jumps over the lazy dog.",
			ReferenceStart:    12,
			ReferenceEnd:      56,
			ReferenceDocument: "refs/doc one.txt",
			SimilarityScore:   0.9512,
		},
		{
			InputSentence:     "Entirely lifted closing line.",
			InputStart:        45,
			InputEnd:          74,
			ReferenceSentence: "Entirely lifted closing line.",
			ReferenceStart:    0,
			ReferenceEnd:      29,
			ReferenceDocument: "refs/doc-two.md",
			SimilarityScore:   1.0,
		},
	}
}

func TestFormatMatch(t *testing.T) {
	got := FormatMatch(sampleMatches()[0])
	want := "Input Sentence:     The quick brown fox jumps over the lazy dog. \n" +
		"Input Position:     0-45\n" +
		"Reference Sentence: The quick brown fox jumps over the lazy dog.\n" +
		"Reference Position: 12-56\n" +
		"Reference Document: refs/doc one.txt\n" +
		"Similarity Score:   0.9512\n"
	if got != want {
		t.Fatalf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTextNumbersBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := WriteText(path, sampleMatches()); err != nil {
		t.Fatalf("write text: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, "Match #1\n") || !strings.Contains(text, "Match #2\n") {
		t.Fatalf("blocks not numbered:\n%s", text)
	}
	if !strings.Contains(text, "Similarity Score:   1.0000") {
		t.Fatalf("score not formatted to 4 decimals:\n%s", text)
	}
}

func TestWriteAndReadJSONRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	matches := sampleMatches()
	if err := WriteJSON(path, matches); err != nil {
		t.Fatalf("write json: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	for _, key := range []string{
		"input_sentence", "input_start_pos", "input_end_pos",
		"reference_sentence", "reference_start_pos", "reference_end_pos",
		"reference_document", "similarity_score",
	} {
		if !strings.Contains(string(raw), `"`+key+`"`) {
			t.Fatalf("json output missing key %q:\n%s", key, raw)
		}
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if len(got) != len(matches) {
		t.Fatalf("roundtrip lost matches: %d != %d", len(got), len(matches))
	}
	for i := range matches {
		if got[i] != matches[i] {
			t.Fatalf("match %d changed in roundtrip: %+v != %+v", i, got[i], matches[i])
		}
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := WriteJSON(path, nil); err != nil {
		t.Fatalf("write json: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("empty result must serialize as [], got %q", raw)
	}
}

func TestReadJSONRejectsCorruptOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := `[{"input_sentence":"abc","input_start_pos":0,"input_end_pos":99,
		"reference_sentence":"abc","reference_start_pos":0,"reference_end_pos":3,
		"reference_document":"r","similarity_score":0.9}]`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ReadJSON(path); err == nil {
		t.Fatalf("expected validation error for corrupt offsets")
	}
}

func TestSanitizeDocID(t *testing.T) {
	if got := SanitizeDocID("refs/doc one.txt"); got != "refs_doc_one_txt" {
		t.Fatalf("sanitized id %q", got)
	}
	if got := SanitizeDocID("simple"); got != "simple" {
		t.Fatalf("alphanumeric id altered: %q", got)
	}
}

func TestOpacityMapping(t *testing.T) {
	cases := []struct{ score, want float64 }{
		{0, 0.3},
		{0.5, 0.65},
		{1, 1.0},
	}
	for _, tc := range cases {
		if got := Opacity(tc.score); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("opacity(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestDocumentColorsDeterministicAndDistinct(t *testing.T) {
	matches := sampleMatches()
	first := DocumentColors(matches)
	second := DocumentColors(matches)
	if len(first) != 2 {
		t.Fatalf("expected 2 colored documents, got %v", first)
	}
	for doc, color := range first {
		if second[doc] != color {
			t.Fatalf("color assignment not deterministic for %s", doc)
		}
	}
	if first["refs/doc one.txt"] == first["refs/doc-two.md"] {
		t.Fatalf("documents share a color: %v", first)
	}
}

func TestRenderHTMLHighlightsMatches(t *testing.T) {
	content := "The quick brown fox jumps over the lazy dog. Entirely lifted closing line."
	start := strings.Index(content, "Entirely")
	matches := []checker.Match{
		{
			InputSentence:     "Entirely lifted closing line.",
			InputStart:        start,
			InputEnd:          start + len("Entirely lifted closing line."),
			ReferenceSentence: "Entirely lifted closing line.",
			ReferenceStart:    0,
			ReferenceEnd:      29,
			ReferenceDocument: "refs/doc-two.md",
			SimilarityScore:   1.0,
		},
	}

	html, err := renderHTML(content, "essay.txt", matches)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`class="plagiarized plag-doc-refs_doc_two_md"`,
		`data-similarity="1.00"`,
		`style="opacity: 1.00"`,
		"The quick brown fox",
		".plag-doc-refs_doc_two_md { background-color:",
		`data-doc="refs_doc_two_md"`,
		"essay - Plagiarism Report",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html report missing %q", want)
		}
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	content := "Text with <script>alert(1)</script> inside & more."
	html, err := renderHTML(content, "doc.txt", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("content not escaped")
	}
	if !strings.Contains(html, "alert(1)") {
		t.Fatalf("content dropped instead of escaped")
	}
}

func TestHighlightSegmentsPlainTextPassThrough(t *testing.T) {
	got := string(highlightSegments("Nothing to see here.", nil))
	if got != "Nothing to see here." {
		t.Fatalf("plain content altered: %q", got)
	}
}

func TestCleanTextStripsInlineMarkup(t *testing.T) {
	if got := cleanText("before <PC>tagged</PC> after"); got != "before tagged after" {
		t.Fatalf("markup not stripped: %q", got)
	}
	if got := cleanText("a < b and c > d"); got != "a < b and c > d" {
		t.Fatalf("plain comparisons mangled: %q", got)
	}
}
