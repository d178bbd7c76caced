package cli

import (
	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the render configuration",
	Long: `Shows the configuration used for rendering: issuer details, tax
components, words locale and the main layout anchors.

Values come from config.toml in the configuration directory, layered over
the built-in defaults.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := configService()
		if err != nil {
			return err
		}
		cmd.Println(svc.Path())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Validates a value and writes it to config.toml.

Keys:
  issuer.name, issuer.address, issuer.city_line, issuer.contact,
  issuer.email, issuer.gst_number, issuer.pan_number, issuer.logo_path
  words.locale, footer.text
  layout.margin, layout.row_height, layout.table_top, layout.customer_top,
  layout.footer_y (numbers, in points)
  layout.columns.item, layout.columns.code, layout.columns.rate,
  layout.columns.quantity (numbers, in points)

Tax components are an array of tables; edit them in the file.`,
	Example: `  invoicer config set issuer.name "Acme Traders"
  invoicer config set layout.margin 40`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := configService()
	if err != nil {
		return err
	}
	cfg, err := svc.Get()
	if err != nil {
		return err
	}

	st := newOutputStyles(cmd.OutOrStdout())
	field := func(name, value string) {
		if value == "" {
			value = st.Muted.Render("(not set)")
		}
		cmd.Printf("  %-12s %s\n", name+":", value)
	}

	cmd.Println(st.Title.Render("Current Configuration"))
	cmd.Printf("File: %s\n", svc.Path())
	cmd.Println()

	cmd.Println("[Issuer]")
	field("Name", cfg.Issuer.Name)
	field("Address", cfg.Issuer.Address)
	field("City", cfg.Issuer.CityLine)
	field("Contact", cfg.Issuer.Contact)
	field("Email", cfg.Issuer.Email)
	field("GST", cfg.Issuer.GSTNumber)
	field("PAN", cfg.Issuer.PANNumber)
	field("Logo", cfg.Issuer.LogoPath)
	cmd.Println()

	cmd.Println("[Taxes]")
	if len(cfg.TaxComponents) == 0 {
		cmd.Println("  " + st.Muted.Render("(none)"))
	}
	for _, tax := range cfg.TaxComponents {
		cmd.Printf("  %s\n", tax.DisplayLabel())
	}
	cmd.Println()

	cmd.Println("[Document]")
	field("Locale", cfg.WordsLocale)
	field("Footer", cfg.FooterText)
	printLayout(cmd, cfg.Layout)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := configService()
	if err != nil {
		return err
	}
	if err := svc.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func printLayout(cmd *cobra.Command, l domain.Layout) {
	cmd.Println()
	cmd.Println("[Layout]")
	cmd.Printf("  Page:        %s (%gx%g pt)\n", l.Page.Name, l.Page.Width, l.Page.Height)
	cmd.Printf("  Margin:      %g\n", l.Margin)
	cmd.Printf("  Table top:   %g\n", l.TableTop)
	cmd.Printf("  Row height:  %g\n", l.RowHeight)
	cmd.Printf("  Columns:     item=%g code=%g rate=%g quantity=%g\n",
		l.ItemColumn.X, l.CodeColumn.X, l.RateColumn.X, l.QuantityColumn.X)
}
