package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Emit a sample resume record as JSON",
	Long:  "Emit a populated sample record in the exact shape produced by parse, for template previews and downstream integration testing. Use --empty for the zero-data shape.",
	RunE:  runSample,
}

var sampleEmpty bool

func init() {
	sampleCmd.Flags().BoolVar(&sampleEmpty, "empty", false, "Emit the empty record shape instead of sample data")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(_ *cobra.Command, _ []string) error {
	record := types.SampleRecord()
	if sampleEmpty {
		record = types.NewResumeRecord()
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
