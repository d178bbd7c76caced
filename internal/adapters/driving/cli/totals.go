package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

var totalsJSON bool

var totalsCmd = &cobra.Command{
	Use:   "totals <invoice-file>",
	Short: "Compute invoice totals without rendering",
	Long: `Prints the subtotal, each tax line, the grand total and the grand total
in words, exactly as they would appear on the rendered document.`,
	Args: cobra.ExactArgs(1),
	RunE: runTotals,
}

func init() {
	totalsCmd.Flags().BoolVar(&totalsJSON, "json", false, "output totals as JSON")
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
	svc, err := totalsService()
	if err != nil {
		return err
	}
	inv, err := loadInvoice(args[0], "")
	if err != nil {
		return err
	}

	totals, err := svc.ComputeTotals(inv.Items)
	if err != nil {
		return err
	}

	if totalsJSON {
		data, err := json.MarshalIndent(totals, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal totals: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printTotals(cmd, inv, totals)
	return nil
}

func printTotals(cmd *cobra.Command, inv *domain.Invoice, totals *domain.TotalsSummary) {
	st := newOutputStyles(cmd.OutOrStdout())

	cmd.Println(st.Title.Render("Invoice " + inv.Number))
	cmd.Println("  " + st.Muted.Render(fmt.Sprintf("%d items", len(inv.Items))))
	row := func(label, value string, style func(...string) string) {
		cmd.Printf("  %s %s\n", st.Label.Render(fmt.Sprintf("%-20s", label)), style(fmt.Sprintf("%12s", value)))
	}
	row("Subtotal", totals.Subtotal.StringFixed(0), st.Value.Render)
	for _, tax := range totals.Taxes {
		row(tax.Component.DisplayLabel(), tax.Amount.StringFixed(0), st.Value.Render)
	}
	row("Grand Total", totals.GrandTotal.StringFixed(0), st.Total.Render)
	cmd.Println()
	cmd.Printf("  %s\n", st.Muted.Render(totals.GrandTotalWords))
}
