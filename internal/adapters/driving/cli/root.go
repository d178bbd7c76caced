// Package cli implements the invoicer command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driving"
	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services are the driving ports the commands call.
type Services struct {
	Render driving.RenderService
	Totals driving.TotalsService
	Config driving.ConfigService
	Reader driven.InvoiceReader
}

// ServicesBuilder wires Services once flags are parsed.
type ServicesBuilder func(configDir string) (*Services, error)

var (
	appServices   *Services
	buildServices ServicesBuilder
)

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Render invoices to PDF",
	Long: `invoicer computes totals and taxes for an invoice record and lays it out
as a one-page A4 PDF.

Invoice records are JSON, TOML or YAML files. Issuer details, tax
components and layout are read from ~/.invoicer/config.toml.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.invoicer)")
}

// SetServicesBuilder registers the function that wires services.
func SetServicesBuilder(b ServicesBuilder) {
	buildServices = b
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if appServices != nil || cmd == versionCmd {
		return nil
	}
	if buildServices == nil {
		return errors.New("services not configured")
	}

	s, err := buildServices(configDir)
	if err != nil {
		return err
	}
	appServices = s
	return nil
}

func renderService() (driving.RenderService, error) {
	if appServices == nil || appServices.Render == nil {
		return nil, errors.New("render service not configured")
	}
	return appServices.Render, nil
}

func totalsService() (driving.TotalsService, error) {
	if appServices == nil || appServices.Totals == nil {
		return nil, errors.New("totals service not configured")
	}
	return appServices.Totals, nil
}

func configService() (driving.ConfigService, error) {
	if appServices == nil || appServices.Config == nil {
		return nil, errors.New("config service not configured")
	}
	return appServices.Config, nil
}

func invoiceReader() (driven.InvoiceReader, error) {
	if appServices == nil || appServices.Reader == nil {
		return nil, errors.New("invoice reader not configured")
	}
	return appServices.Reader, nil
}
