package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driving"
)

var (
	renderOutput string
	renderDate   string
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <invoice-file>",
	Short: "Render an invoice to PDF",
	Long: `Reads an invoice record and writes the rendered PDF.

The output defaults to the input path with a .pdf extension. Use -o - to
write the PDF to stdout. The file is replaced atomically; a failed render
leaves no partial file behind.

With --watch the invoice is rendered again every time the file changes,
until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output path, or - for stdout")
	renderCmd.Flags().StringVar(&renderDate, "date", "", "issue date (YYYY-MM-DD), overrides the file")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render when the invoice file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := renderOutput
	if output == "" {
		output = defaultOutputPath(input)
	}

	if !renderWatch {
		return renderOnce(cmd, input, output)
	}
	if output == "-" {
		return fmt.Errorf("%w: --watch cannot write to stdout", domain.ErrInvalidInput)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchFile(ctx, input, func() error {
		if err := renderOnce(cmd, input, output); err != nil {
			cmd.PrintErrf("Render failed: %v\n", err)
		}
		return nil
	})
}

func renderOnce(cmd *cobra.Command, input, output string) error {
	svc, err := renderService()
	if err != nil {
		return err
	}
	inv, err := loadInvoice(input, renderDate)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var result *driving.RenderResult
	if output == "-" {
		result, err = svc.Render(ctx, inv, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		cmd.PrintErrf("Rendered invoice %s (%d bytes)\n", inv.Number, result.Bytes)
		return nil
	}

	result, err = svc.RenderToFile(ctx, inv, output)
	if err != nil {
		return err
	}
	cmd.Printf("Wrote %s (%d bytes), grand total %s\n", output, result.Bytes, result.Totals.GrandTotal.StringFixed(0))
	return nil
}

// defaultOutputPath swaps the input extension for .pdf.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}
