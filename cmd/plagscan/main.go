// Command plagscan compares an examined document against reference
// documents sentence by sentence and reports near-duplicates as JSON,
// plain text, and an interactive HTML page.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"plagscan/internal/checker"
	"plagscan/internal/ingest"
	"plagscan/internal/logging"
	"plagscan/internal/report"
	"plagscan/internal/similarity"
	"plagscan/internal/store"
	"plagscan/internal/workspace"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "plagscan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	wsRoot, err := workspace.EnsureDefault()
	if err != nil {
		return fmt.Errorf("workspace initialization failed: %w", err)
	}
	settings, err := workspace.LoadSettings(wsRoot)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("plagscan", flag.ContinueOnError)
	threshold := fs.Float64("threshold", settings.SimilarityThreshold, "similarity threshold in (0,1]")
	minLength := fs.Int("min-length", settings.MinSentenceLength, "minimum sentence length in characters")
	metricName := fs.String("metric", settings.DefaultMetric,
		"similarity metric: jaccard, cosine, sorensen_dice, overlap, tversky, jaro, jaro_winkler")
	jsonOut := fs.String("output", "results.json", "JSON output file")
	textOut := fs.String("text-output", "", "plain-text output file (empty to skip)")
	htmlOut := fs.String("html-output", "", "HTML report output file (default <workspace>/reports/<input>.html)")
	dbPath := fs.String("db", workspace.DatabasePath(wsRoot), "sqlite results database (empty to skip)")
	quiet := fs.Bool("quiet", false, "suppress per-match console output")
	logLevel := fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: plagscan [flags] <examined-file> <reference-file> [reference-file...]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("need an examined file and at least one reference file")
	}

	log := logging.New(os.Stderr, *logLevel)

	metric, err := similarity.Parse(*metricName)
	if err != nil {
		return err
	}

	examinedPath := fs.Arg(0)
	referencePaths := fs.Args()[1:]

	if *htmlOut == "" {
		stem := strings.TrimSuffix(filepath.Base(examinedPath), filepath.Ext(examinedPath))
		*htmlOut = filepath.Join(workspace.ReportsDir(wsRoot), stem+".html")
	}

	examined, err := ingest.Load(examinedPath)
	if err != nil {
		return fmt.Errorf("load examined document: %w", err)
	}
	refDocs, err := ingest.LoadAll(referencePaths)
	if err != nil {
		return fmt.Errorf("load reference documents: %w", err)
	}
	log.Info().
		Str("examined", examinedPath).
		Int("references", len(refDocs)).
		Str("metric", metric.String()).
		Float64("threshold", *threshold).
		Msg("starting check")

	references := make([]checker.Document, 0, len(refDocs))
	for _, doc := range refDocs {
		references = append(references, checker.Document{ID: doc.ID, Text: doc.Text})
	}

	opts := checker.Options{
		Threshold: *threshold,
		MinLength: *minLength,
		Metric:    metric,
	}
	if !*quiet {
		opts.Report = func(m checker.Match) {
			fmt.Println(report.FormatMatch(m))
		}
	}

	matches, err := checker.Check(examined.Text, references, opts)
	if err != nil {
		return err
	}
	log.Info().Int("matches", len(matches)).Msg("check complete")

	if *jsonOut != "" {
		if err := report.WriteJSON(*jsonOut, matches); err != nil {
			return err
		}
		log.Info().Str("path", *jsonOut).Msg("JSON results saved")
	}
	if *textOut != "" {
		if err := report.WriteText(*textOut, matches); err != nil {
			return err
		}
		log.Info().Str("path", *textOut).Msg("text results saved")
	}
	if err := report.WriteHTML(*htmlOut, examined.Text, examinedPath, matches); err != nil {
		return err
	}
	log.Info().Str("path", *htmlOut).Msg("HTML report saved")
	if *dbPath != "" {
		runID, err := store.PersistRun(*dbPath, store.Run{
			ExaminedDocument: examinedPath,
			Metric:           metric.String(),
			Threshold:        *threshold,
			MinLength:        *minLength,
		}, matches)
		if err != nil {
			return err
		}
		log.Info().Int64("run_id", runID).Str("db", *dbPath).Msg("run recorded")
	}

	return nil
}
