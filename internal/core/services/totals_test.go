package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(description, rate, quantity string) domain.LineItem {
	return domain.LineItem{
		Description: description,
		Code:        "44011010",
		UnitRate:    dec(rate),
		Quantity:    dec(quantity),
	}
}

func newTestCalculator(t *testing.T, taxes []domain.TaxComponent) *TotalsCalculator {
	t.Helper()
	return NewTotalsCalculator(newTestFormatter(t, "en-IN"), taxes)
}

func TestComputeTotals_SingleItem(t *testing.T) {
	calc := newTestCalculator(t, domain.DefaultTaxComponents())

	totals, err := calc.ComputeTotals([]domain.LineItem{item("Biomass Briquetts", "4800", "18.87")})

	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec("90576")), totals.Subtotal.String())
	require.Len(t, totals.Taxes, 2)
	assert.Equal(t, "SGST", totals.Taxes[0].Component.Label)
	assert.Equal(t, "CGST", totals.Taxes[1].Component.Label)
	assert.True(t, totals.Taxes[0].Amount.Equal(dec("2264")))
	assert.True(t, totals.Taxes[1].Amount.Equal(dec("2264")))
	assert.True(t, totals.GrandTotal.Equal(dec("95104")))
	assert.Equal(t, "Ninety Five Thousand One Hundred Four Rupees Only", totals.GrandTotalWords)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	calc := newTestCalculator(t, domain.DefaultTaxComponents())

	totals, err := calc.ComputeTotals(nil)

	require.NoError(t, err)
	assert.True(t, totals.Subtotal.IsZero())
	require.Len(t, totals.Taxes, 2)
	for _, tax := range totals.Taxes {
		assert.True(t, tax.Amount.IsZero())
	}
	assert.True(t, totals.GrandTotal.IsZero())
	assert.Equal(t, "Zero Rupees Only", totals.GrandTotalWords)
}

func TestComputeTotals_SubtotalKeepsPrecision(t *testing.T) {
	calc := newTestCalculator(t, domain.DefaultTaxComponents())

	totals, err := calc.ComputeTotals([]domain.LineItem{
		item("Sawdust", "10.5", "3"),
		item("Husk", "0.25", "0.5"),
	})

	require.NoError(t, err)
	// 31.5 + 0.125
	assert.True(t, totals.Subtotal.Equal(dec("31.625")), totals.Subtotal.String())
	// 31.625 * 0.025 = 0.790625 per component
	assert.True(t, totals.Taxes[0].Amount.Equal(dec("1")))
	// 31.625 + 2 = 33.625
	assert.True(t, totals.GrandTotal.Equal(dec("34")))
}

func TestComputeTotals_TaxesRoundedIndependently(t *testing.T) {
	calc := newTestCalculator(t, domain.DefaultTaxComponents())

	totals, err := calc.ComputeTotals([]domain.LineItem{item("Pellets", "100.2", "1")})

	require.NoError(t, err)
	// 2.505 rounds up on each component; a combined 5.01 would round down.
	assert.True(t, totals.Taxes[0].Amount.Equal(dec("3")))
	assert.True(t, totals.Taxes[1].Amount.Equal(dec("3")))
	assert.True(t, totals.TaxTotal().Equal(dec("6")))
	assert.True(t, totals.GrandTotal.Equal(dec("106")))
}

func TestComputeTotals_GrandTotalIsWhole(t *testing.T) {
	calc := newTestCalculator(t, []domain.TaxComponent{{Label: "IGST", Rate: dec("0.18")}})

	for _, qty := range []string{"0.01", "1.337", "18.87", "999.999"} {
		totals, err := calc.ComputeTotals([]domain.LineItem{item("Coal", "123.45", qty)})
		require.NoError(t, err)
		assert.True(t, totals.GrandTotal.Equal(totals.GrandTotal.Truncate(0)), qty)
		assert.True(t, totals.GrandTotal.Equal(RoundAmount(totals.Subtotal.Add(totals.TaxTotal()))), qty)
	}
}

func TestComputeTotals_NoTaxComponents(t *testing.T) {
	calc := newTestCalculator(t, nil)

	totals, err := calc.ComputeTotals([]domain.LineItem{item("Briquettes", "1", "1")})

	require.NoError(t, err)
	assert.Empty(t, totals.Taxes)
	assert.True(t, totals.GrandTotal.Equal(dec("1")))
	assert.Equal(t, "One Rupee Only", totals.GrandTotalWords)
}

func TestComputeTotals_InvalidItems(t *testing.T) {
	calc := newTestCalculator(t, domain.DefaultTaxComponents())

	tests := []struct {
		name  string
		items []domain.LineItem
		field string
	}{
		{"negative quantity", []domain.LineItem{item("Coal", "10", "-1")}, "items[0].quantity"},
		{"negative rate", []domain.LineItem{item("Coal", "10", "1"), item("Ash", "-5", "1")}, "items[1].unit_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := calc.ComputeTotals(tt.items)

			assert.Nil(t, totals)
			require.ErrorIs(t, err, domain.ErrInvalidInvoice)
			var invErr *domain.InvalidInvoiceError
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, tt.field, invErr.Field)
		})
	}
}

func TestComputeTotals_NegativeTaxRate(t *testing.T) {
	calc := newTestCalculator(t, []domain.TaxComponent{{Label: "Rebate", Rate: dec("-0.1")}})

	_, err := calc.ComputeTotals([]domain.LineItem{item("Coal", "10", "1")})

	assert.ErrorIs(t, err, domain.ErrInvalidInvoice)
}

func TestNewTotalsCalculator_CopiesTaxes(t *testing.T) {
	taxes := domain.DefaultTaxComponents()
	calc := newTestCalculator(t, taxes)
	taxes[0].Rate = dec("0.5")

	totals, err := calc.ComputeTotals([]domain.LineItem{item("Coal", "100", "1")})

	require.NoError(t, err)
	assert.True(t, totals.Taxes[0].Amount.Equal(dec("3")))
}
