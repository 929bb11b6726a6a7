package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "embed"

	"plagscan/internal/checker"
	"plagscan/internal/segment"
)

//go:embed assets/report.html.tmpl
var htmlTemplate string

//go:embed assets/report.css
var reportCSS string

//go:embed assets/report.js
var reportJS string

var (
	docIDPattern  = regexp.MustCompile(`[^a-zA-Z0-9]`)
	markupPattern = regexp.MustCompile(`</?[a-zA-Z0-9]{1,15}>`)
)

// SanitizeDocID turns a reference document identifier into a CSS-safe
// token by replacing every non-alphanumeric character with '_'.
func SanitizeDocID(doc string) string {
	return docIDPattern.ReplaceAllString(doc, "_")
}

// Opacity maps an average similarity score onto highlight opacity.
func Opacity(avgScore float64) float64 {
	return min(0.3+avgScore*0.7, 1.0)
}

// cleanText strips short inline markup tags such as <PC> and </PC> from
// displayed text.
func cleanText(s string) string {
	return markupPattern.ReplaceAllString(s, "")
}

type docEntry struct {
	ID    string
	Name  string
	Color string
}

type htmlData struct {
	Title      string
	Subtitle   string
	Content    template.HTML
	Docs       []docEntry
	InlinedCSS template.CSS
	InlinedJS  template.JS
}

// WriteHTML renders the examined document with every match highlighted
// and saves a standalone report with inlined CSS and JS.
func WriteHTML(path, content, inputPath string, matches []checker.Match) error {
	html, err := renderHTML(content, inputPath, matches)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write html report: %w", err)
	}
	return nil
}

func renderHTML(content, inputPath string, matches []checker.Match) (string, error) {
	colors := DocumentColors(matches)

	docs := make([]docEntry, 0, len(colors))
	for _, doc := range referenceDocuments(matches) {
		docs = append(docs, docEntry{
			ID:    SanitizeDocID(doc),
			Name:  filepath.Base(doc),
			Color: colors[doc],
		})
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	data := htmlData{
		Title:      stem,
		Subtitle:   stem,
		Content:    highlightSegments(content, matches),
		Docs:       docs,
		InlinedCSS: template.CSS(documentCSS(docs) + "\n" + reportCSS),
		InlinedJS:  template.JS(reportJS),
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return b.String(), nil
}

// highlightSegments rebuilds the document as HTML: plain segments pass
// through escaped, matched segments are wrapped in highlighted spans
// tagged with their reference documents and average similarity.
func highlightSegments(content string, matches []checker.Match) template.HTML {
	var b strings.Builder
	for _, seg := range segment.Split(content, matches) {
		text := template.HTMLEscapeString(cleanText(seg.Text))
		if len(seg.Matches) == 0 {
			b.WriteString(text)
			continue
		}

		classes := make([]string, 0, len(seg.Matches))
		refs := make([]string, 0, len(seg.Matches))
		sum := 0.0
		for _, m := range seg.Matches {
			classes = append(classes, "plag-doc-"+SanitizeDocID(m.ReferenceDocument))
			refs = append(refs, m.ReferenceDocument)
			sum += m.SimilarityScore
		}
		avg := sum / float64(len(seg.Matches))

		fmt.Fprintf(&b,
			`<span class="plagiarized %s" data-references="%s" data-similarity="%.2f" style="opacity: %.2f">%s</span>`,
			strings.Join(classes, " "),
			template.HTMLEscapeString(strings.Join(refs, ", ")),
			avg,
			Opacity(avg),
			text,
		)
	}
	return template.HTML(b.String())
}

// documentCSS emits one background-color rule per reference document.
func documentCSS(docs []docEntry) string {
	rules := make([]string, 0, len(docs))
	for _, d := range docs {
		rules = append(rules, fmt.Sprintf(".plag-doc-%s { background-color: %s; }", d.ID, d.Color))
	}
	return strings.Join(rules, "\n")
}
