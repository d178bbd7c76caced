package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxComponent is one named percentage applied to the subtotal.
type TaxComponent struct {
	// Label is the short name, e.g. "SGST".
	Label string `json:"label"`

	// Rate is the fraction applied, e.g. 0.025 for 2.5%.
	Rate decimal.Decimal `json:"rate"`
}

// DisplayLabel returns the label with its percentage, e.g. "SGST (2.5%)".
func (t TaxComponent) DisplayLabel() string {
	return fmt.Sprintf("%s (%s%%)", t.Label, t.Rate.Shift(2).String())
}

// TaxLine is a tax component with its rounded amount.
type TaxLine struct {
	Component TaxComponent    `json:"component"`
	Amount    decimal.Decimal `json:"amount"`
}

// TotalsSummary is derived from the line items on every render.
// GrandTotal always equals the rounded sum of Subtotal and every tax amount.
type TotalsSummary struct {
	// Subtotal is the unrounded sum of all line amounts.
	Subtotal decimal.Decimal `json:"subtotal"`

	// Taxes holds one line per configured component, in configuration order.
	Taxes []TaxLine `json:"taxes"`

	// GrandTotal is the rounded payable amount.
	GrandTotal decimal.Decimal `json:"grand_total"`

	// GrandTotalWords is GrandTotal spelled out in the configured locale.
	GrandTotalWords string `json:"grand_total_words"`
}

// TaxTotal returns the sum of all tax amounts.
func (s *TotalsSummary) TaxTotal() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.Taxes {
		total = total.Add(t.Amount)
	}
	return total
}
