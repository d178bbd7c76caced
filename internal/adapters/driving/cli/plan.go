package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

var (
	planJSON bool
	planDate string
)

var planCmd = &cobra.Command{
	Use:   "plan <invoice-file>",
	Short: "Print the draw instructions for an invoice",
	Long: `Lays out the invoice and prints every draw instruction in drawing order,
without producing a PDF. Useful for checking positions after changing the
layout configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planJSON, "json", false, "output instructions as JSON")
	planCmd.Flags().StringVar(&planDate, "date", "", "issue date (YYYY-MM-DD), overrides the file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	svc, err := renderService()
	if err != nil {
		return err
	}
	inv, err := loadInvoice(args[0], planDate)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	plan, err := svc.Plan(ctx, inv)
	if err != nil {
		return err
	}

	if planJSON {
		data, err := json.MarshalIndent(plan.Instructions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal instructions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i, in := range plan.Instructions {
		cmd.Printf("%3d  %s\n", i+1, describeInstruction(in))
	}
	return nil
}

func describeInstruction(in domain.DrawInstruction) string {
	switch in.Kind {
	case domain.DrawLine:
		return fmt.Sprintf("line   (%g,%g)-(%g,%g)", in.X, in.Y, in.X2, in.Y2)
	case domain.DrawImage:
		return fmt.Sprintf("image  (%g,%g) w=%g %s", in.X, in.Y, in.Width, in.Content)
	default:
		var attrs []string
		if in.Width > 0 {
			attrs = append(attrs, fmt.Sprintf("w=%g", in.Width))
		}
		if in.Style.Align != "" {
			attrs = append(attrs, string(in.Style.Align))
		}
		if in.Style.Bold {
			attrs = append(attrs, "bold")
		}
		suffix := ""
		if len(attrs) > 0 {
			suffix = " [" + strings.Join(attrs, " ") + "]"
		}
		return fmt.Sprintf("text   (%g,%g) %q%s", in.X, in.Y, in.Content, suffix)
	}
}
