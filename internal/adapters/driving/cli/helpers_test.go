package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/config/memory"
	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/invoicefile"
	"github.com/eshwarmore1993/invoice-generator/internal/adapters/driven/render/recorder"
	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/services"
)

var testToday = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

// setupTestServices wires the commands to in-memory config and a recording
// renderer, and pins the clock.
func setupTestServices() func() {
	store := memory.NewConfigStore()
	configSvc := services.NewConfigService(store)
	cfg, err := configSvc.Get()
	if err != nil {
		panic(err)
	}
	assembler, err := services.NewDocumentAssembler(*cfg, recorder.Factory(nil))
	if err != nil {
		panic(err)
	}
	formatter, err := services.NewFormatter(cfg.WordsLocale)
	if err != nil {
		panic(err)
	}

	appServices = &Services{
		Render: assembler,
		Totals: services.NewTotalsCalculator(formatter, cfg.TaxComponents),
		Config: configSvc,
		Reader: invoicefile.NewReader(),
	}
	now = func() time.Time { return testToday }

	return func() {
		appServices = nil
		now = time.Now
		resetFlags()
	}
}

// resetFlags restores flag variables, which cobra keeps between Execute calls.
func resetFlags() {
	verbose = false
	configDir = ""
	renderOutput = ""
	renderDate = ""
	renderWatch = false
	totalsJSON = false
	planJSON = false
	planDate = ""
	sampleFormat = "toml"
	sampleOutput = ""
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeSampleInvoice writes the sample invoice without a date in format.
func writeSampleInvoice(t *testing.T, format invoicefile.Format) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoice."+string(format))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, invoicefile.Encode(f, invoicefile.Sample(time.Time{}), format))
	return path
}

func writeInvoice(t *testing.T, inv *domain.Invoice) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoice.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, invoicefile.Encode(f, inv, invoicefile.FormatJSON))
	return path
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
