package invoicefile

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// Encode writes inv to w in the given format.
// Amounts are written as strings so that they round-trip exactly.
func Encode(w io.Writer, inv *domain.Invoice, format Format) error {
	f := fromDomain(inv)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidInput, format)
	}
}

// Sample returns a one-item invoice dated date, with the purchase order,
// delivery point and ship-to tax ID of the standard document.
func Sample(date time.Time) *domain.Invoice {
	return &domain.Invoice{
		Number:    "1234",
		IssueDate: date,
		ShipTo: domain.Party{
			Name:        "John Doe",
			AddressLine: "1234 Main Street",
			City:        "San Francisco",
			State:       "CA",
			Country:     "US",
			TaxID:       "DHADJHDJSAHDAJSDHAS",
		},
		Meta: domain.InvoiceMeta{
			PurchaseOrder: "12",
			DeliveredTo:   "Pune",
		},
		Items: []domain.LineItem{
			{
				Description: "Biomass Briquetts",
				Code:        "44011010",
				UnitRate:    decimal.NewFromInt(4800),
				Quantity:    decimal.RequireFromString("18.87"),
			},
		},
	}
}
