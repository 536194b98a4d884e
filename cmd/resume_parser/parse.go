package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/config"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/ingestion"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/observability"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/parsing"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resume documents into structured JSON records",
	Long:  "Parse one or more resume documents (.txt or .pdf) into structured JSON records. Output is validated against the resume_record schema when available.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseOutDir      string
	parseConfigPath  string
	parseVerbose     bool
	parseConcurrency int
)

const defaultConcurrency = 4

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", ".", "Output directory for parsed records")
	parseCmd.Flags().StringVarP(&parseConfigPath, "config", "c", "", "Path to JSON config with custom patterns")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print extraction summaries")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", 0, "Max documents parsed in parallel (default 4)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	parser, cfg, err := buildParser()
	if err != nil {
		return err
	}

	if parseOutDir == "." && cfg.Out != "" {
		parseOutDir = cfg.Out
	}
	if err := os.MkdirAll(parseOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	limit := parseConcurrency
	if limit <= 0 {
		limit = cfg.Concurrency
	}
	if limit <= 0 {
		limit = defaultConcurrency
	}

	verbose := parseVerbose || cfg.Verbose
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "resume_record.schema.json"))

	// The engine is a pure function, so documents fan out safely.
	var g errgroup.Group
	g.SetLimit(limit)
	for _, path := range args {
		path := path
		g.Go(func() error {
			return parseOne(parser, path, schemaPath, verbose)
		})
	}
	return g.Wait()
}

// buildParser assembles tier libraries (with any configured custom patterns)
// and the Parser itself.
func buildParser() (*parsing.Parser, *config.Config, error) {
	cfg := &config.Config{}
	if parseConfigPath != "" {
		loaded, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	primary := patterns.Primary()
	robust := patterns.Robust()
	for _, lib := range []*patterns.Library{primary, robust} {
		if err := cfg.ApplyTo(lib); err != nil {
			return nil, nil, fmt.Errorf("failed to apply custom patterns: %w", err)
		}
	}

	parser := parsing.NewParser(
		parsing.WithLibraries(primary, robust),
		parsing.WithSwapPolicy(cfg.SwapEnabled()),
	)
	return parser, cfg, nil
}

func parseOne(parser *parsing.Parser, path, schemaPath string, verbose bool) error {
	text, metadata, err := ingestion.ReadDocument(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	record, tier := parser.Parse(text)

	// Validate the record before anything is written.
	if schemaPath != "" {
		if err := schemas.ValidateRecord(schemaPath, record); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("%s: output does not validate against schema: %w", path, err)
			}
			// Schema loading issues degrade to a warning.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate %s against schema: %v\n", path, err)
		}
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: failed to marshal JSON: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(parseOutDir, base+".resume.json")
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("%s: failed to write output: %w", path, err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMetadata(path, metadata.DocumentID, metadata.Chars, metadata.Lines, metadata.Words)
		printer.PrintResumeRecord(record, tier)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed %s (%s tier) -> %s\n", path, tier, outPath)
	return nil
}
