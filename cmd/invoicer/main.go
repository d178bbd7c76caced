// Command invoicer renders invoice records to PDF.
package main

import (
	"os"

	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/config/file"
	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/invoicefile"
	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/render/pdf"
	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driving/cli"
	"github.com/eshwarmore1993/invoice-generator/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	cli.SetVersion(version)
	cli.SetServicesBuilder(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the adapters for one run.
func buildServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}

	configService := services.NewConfigService(store)
	cfg, err := configService.Get()
	if err != nil {
		return nil, err
	}

	factory := pdf.NewFactory(pdf.Options{
		Title:    "Invoice",
		Author:   cfg.Issuer.Name,
		Compress: true,
	})
	assembler, err := services.NewDocumentAssembler(*cfg, factory)
	if err != nil {
		return nil, err
	}

	formatter, err := services.NewFormatter(cfg.WordsLocale)
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Render: assembler,
		Totals: services.NewTotalsCalculator(formatter, cfg.TaxComponents),
		Config: configService,
		Reader: invoicefile.NewReader(),
	}, nil
}
