package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/invoicefile"
	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

var (
	sampleFormat string
	sampleOutput string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a sample invoice file",
	Long: `Writes a one-item sample invoice in JSON, TOML or YAML. Use it as a
starting point for your own invoice records.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", "toml", "file format: json, toml or yaml")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	format := invoicefile.Format(sampleFormat)
	if !isKnownFormat(format) {
		return fmt.Errorf("%w: unknown format %q (want json, toml or yaml)", domain.ErrInvalidInput, sampleFormat)
	}

	t := now()
	inv := invoicefile.Sample(domainDate(t.Year(), int(t.Month()), t.Day()))

	if sampleOutput == "" {
		return invoicefile.Encode(cmd.OutOrStdout(), inv, format)
	}

	f, err := os.OpenFile(sampleOutput, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create sample: %w", err)
	}
	if err := invoicefile.Encode(f, inv, format); err != nil {
		_ = f.Close()
		_ = os.Remove(sampleOutput)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", sampleOutput)
	return nil
}

func isKnownFormat(format invoicefile.Format) bool {
	for _, f := range invoicefile.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
