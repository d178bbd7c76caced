package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driving"
	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

// Ensure TotalsCalculator implements the interface.
var _ driving.TotalsService = (*TotalsCalculator)(nil)

// TotalsCalculator derives the summary block from the line items.
type TotalsCalculator struct {
	formatter *Formatter
	taxes     []domain.TaxComponent
}

// NewTotalsCalculator creates a calculator applying taxes in order.
func NewTotalsCalculator(formatter *Formatter, taxes []domain.TaxComponent) *TotalsCalculator {
	return &TotalsCalculator{
		formatter: formatter,
		taxes:     append([]domain.TaxComponent(nil), taxes...),
	}
}

// ComputeTotals sums the items and applies every tax component.
//
// The subtotal keeps full precision. Each tax is rounded on its own from the
// subtotal, and the grand total is the rounded sum of the subtotal and the
// rounded taxes. An empty list yields zero everywhere.
func (c *TotalsCalculator) ComputeTotals(items []domain.LineItem) (*domain.TotalsSummary, error) {
	subtotal := decimal.Zero
	for i := range items {
		if err := items[i].Validate(i); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(items[i].Amount())
	}

	summary := &domain.TotalsSummary{
		Subtotal: subtotal,
		Taxes:    make([]domain.TaxLine, 0, len(c.taxes)),
	}

	grand := subtotal
	for _, tax := range c.taxes {
		if tax.Rate.IsNegative() {
			return nil, &domain.InvalidInvoiceError{Field: "tax_components." + tax.Label, Reason: "must not be negative"}
		}
		amount := RoundAmount(subtotal.Mul(tax.Rate))
		summary.Taxes = append(summary.Taxes, domain.TaxLine{Component: tax, Amount: amount})
		grand = grand.Add(amount)
	}
	summary.GrandTotal = RoundAmount(grand)

	words, err := c.formatter.AmountInWordsDecimal(summary.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("grand total in words: %w", err)
	}
	summary.GrandTotalWords = words

	logger.Debug("totals: %d items, subtotal=%s, grand total=%s", len(items), subtotal, summary.GrandTotal)
	return summary, nil
}
