package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		Number:    "1234",
		IssueDate: time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		ShipTo: domain.Party{
			Name:        "John Doe",
			AddressLine: "1234 Main Street",
			City:        "San Francisco",
			State:       "CA",
			Country:     "US",
		},
		Items: []domain.LineItem{item("Biomass Briquetts", "4800", "18.87")},
	}
}

func newTestLayout(t *testing.T, cfg domain.Config) (*LayoutEngine, *TotalsCalculator) {
	t.Helper()
	f := newTestFormatter(t, cfg.WordsLocale)
	return NewLayoutEngine(cfg, f), NewTotalsCalculator(f, cfg.TaxComponents)
}

func layoutFor(t *testing.T, cfg domain.Config, inv *domain.Invoice) []domain.DrawInstruction {
	t.Helper()
	engine, calc := newTestLayout(t, cfg)
	totals, err := calc.ComputeTotals(inv.Items)
	require.NoError(t, err)
	return engine.Layout(inv, totals)
}

// find returns the first text instruction with the given content.
func find(t *testing.T, instrs []domain.DrawInstruction, content string) domain.DrawInstruction {
	t.Helper()
	for _, in := range instrs {
		if in.Kind == domain.DrawText && in.Content == content {
			return in
		}
	}
	t.Fatalf("no text instruction %q", content)
	return domain.DrawInstruction{}
}

func countText(instrs []domain.DrawInstruction, content string) int {
	n := 0
	for _, in := range instrs {
		if in.Kind == domain.DrawText && in.Content == content {
			n++
		}
	}
	return n
}

func rulesAt(instrs []domain.DrawInstruction, y float64) int {
	n := 0
	for _, in := range instrs {
		if in.Kind == domain.DrawLine && in.Y == y && in.Y2 == y {
			n++
		}
	}
	return n
}

func TestSummaryRowsFor(t *testing.T) {
	engine, _ := newTestLayout(t, domain.DefaultConfig())

	tests := []struct {
		name      string
		items     int
		taxes     int
		subtotal  float64
		taxRows   []float64
		grand     float64
		wordsRowY float64
	}{
		{"no items two taxes", 0, 2, 360, []float64{380, 405}, 430, 455},
		{"three items one tax", 3, 1, 450, []float64{470}, 495, 520},
		{"three items two taxes", 3, 2, 450, []float64{470, 495}, 520, 545},
		{"one item no taxes", 1, 0, 390, []float64{}, 415, 440},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := engine.SummaryRowsFor(tt.items, tt.taxes)
			assert.Equal(t, tt.subtotal, rows.Subtotal)
			assert.Equal(t, tt.taxRows, rows.Taxes)
			assert.Equal(t, tt.grand, rows.GrandTotal)
			assert.Equal(t, tt.wordsRowY, rows.Words)
		})
	}
}

func TestItemRowY(t *testing.T) {
	engine, _ := newTestLayout(t, domain.DefaultConfig())

	assert.Equal(t, 360.0, engine.ItemRowY(0))
	assert.Equal(t, 390.0, engine.ItemRowY(1))
	assert.Equal(t, 420.0, engine.ItemRowY(2))
}

func TestLayout_SingleItemDocument(t *testing.T) {
	instrs := layoutFor(t, domain.DefaultConfig(), testInvoice())

	desc := find(t, instrs, "Biomass Briquetts")
	assert.Equal(t, 50.0, desc.X)
	assert.Equal(t, 360.0, desc.Y)

	code := find(t, instrs, "44011010")
	assert.Equal(t, 150.0, code.X)
	assert.Equal(t, 360.0, code.Y)

	rate := find(t, instrs, "4800")
	assert.Equal(t, 280.0, rate.X)
	assert.Equal(t, 90.0, rate.Width)
	assert.Equal(t, domain.AlignRight, rate.Style.Align)

	qty := find(t, instrs, "18.87")
	assert.Equal(t, 370.0, qty.X)

	subtotal := find(t, instrs, "Total")
	assert.Equal(t, 390.0, subtotal.Y)
	assert.Equal(t, 2, countText(instrs, "90576"), "item amount and subtotal")

	assert.Equal(t, 410.0, find(t, instrs, "SGST (2.5%)").Y)
	assert.Equal(t, 435.0, find(t, instrs, "CGST (2.5%)").Y)

	grand := find(t, instrs, "Grand Total")
	assert.Equal(t, 460.0, grand.Y)
	assert.True(t, grand.Style.Bold)
	grandValue := find(t, instrs, "95104")
	assert.Equal(t, 460.0, grandValue.Y)
	assert.True(t, grandValue.Style.Bold)

	words := find(t, instrs, "Rs In words: Ninety Five Thousand One Hundred Four Rupees Only")
	assert.Equal(t, 485.0, words.Y)
	assert.Equal(t, 50.0, words.X)

	assert.Equal(t, 1, rulesAt(instrs, 350), "header rule")
	assert.Equal(t, 1, rulesAt(instrs, 380), "item rule")
	assert.Equal(t, 1, rulesAt(instrs, 480), "grand total rule")
}

func TestLayout_GrandTotalOffsetWithOneTax(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.TaxComponents = []domain.TaxComponent{{Label: "IGST", Rate: dec("0.05")}}
	inv := testInvoice()
	inv.Items = []domain.LineItem{
		item("Briquettes", "1", "1"),
		item("Pellets", "1", "1"),
		item("Husk", "1", "1"),
	}

	instrs := layoutFor(t, cfg, inv)

	subtotalY := find(t, instrs, "Total").Y
	assert.Equal(t, 450.0, subtotalY)
	assert.Equal(t, subtotalY+20, find(t, instrs, "IGST (5%)").Y)
	assert.Equal(t, subtotalY+20+25, find(t, instrs, "Grand Total").Y)
}

func TestLayout_ItemRowsHaveRules(t *testing.T) {
	inv := testInvoice()
	inv.Items = []domain.LineItem{
		item("Briquettes", "10", "1"),
		item("Pellets", "20", "2"),
		item("Husk", "30", "3"),
	}
	instrs := layoutFor(t, domain.DefaultConfig(), inv)

	for i, y := range []float64{360, 390, 420} {
		assert.Equal(t, y, find(t, instrs, inv.Items[i].Description).Y)
		assert.Equal(t, 1, rulesAt(instrs, y+20), "rule under row %d", i)
	}
}

func TestLayout_SummaryRowsLeaveSlotsEmpty(t *testing.T) {
	engine, calc := newTestLayout(t, domain.DefaultConfig())
	inv := testInvoice()
	totals, err := calc.ComputeTotals(inv.Items)
	require.NoError(t, err)

	instrs := engine.Table(inv.Items, totals)

	rows := engine.SummaryRowsFor(len(inv.Items), len(totals.Taxes))
	for _, in := range instrs {
		if in.Kind != domain.DrawText || in.Y != rows.Subtotal {
			continue
		}
		assert.NotEqual(t, 50.0, in.X, "item slot should be empty on the subtotal row")
		assert.NotEqual(t, 150.0, in.X, "code slot should be empty on the subtotal row")
		assert.NotEqual(t, 370.0, in.X, "quantity slot should be empty on the subtotal row")
	}
}

func TestLayout_EmptyDescriptionLeavesItemSlotEmpty(t *testing.T) {
	inv := testInvoice()
	inv.Items = []domain.LineItem{item("", "4800", "18.87")}

	instrs := layoutFor(t, domain.DefaultConfig(), inv)

	var row []domain.DrawInstruction
	for _, in := range instrs {
		if in.Kind == domain.DrawText && in.Y == 360 {
			row = append(row, in)
		}
	}
	require.Len(t, row, 4)
	for _, in := range row {
		assert.NotEqual(t, 50.0, in.X)
		assert.NotEmpty(t, in.Content)
	}
	assert.Equal(t, "44011010", row[0].Content)
	assert.Equal(t, "4800", row[1].Content)
	assert.Equal(t, "18.87", row[2].Content)
	assert.Equal(t, "90576", row[3].Content)
	assert.Equal(t, 1, rulesAt(instrs, 380))
}

func TestLayout_CustomerBlock(t *testing.T) {
	inv := testInvoice()
	inv.Meta.PurchaseOrder = "PO-77"
	engine, _ := newTestLayout(t, domain.DefaultConfig())

	instrs := engine.CustomerBlock(inv)

	title := find(t, instrs, "Invoice")
	assert.Equal(t, 160.0, title.Y)
	assert.Equal(t, 20.0, title.Style.Size)

	number := find(t, instrs, "1234")
	assert.Equal(t, 400.0, number.X)
	assert.Equal(t, 200.0, number.Y)
	assert.True(t, number.Style.Bold)

	assert.Equal(t, 215.0, find(t, instrs, "2025/3/7").Y)
	assert.Equal(t, 230.0, find(t, instrs, "PO-77").Y)
	// Labels for empty meta values are still printed.
	assert.Equal(t, 245.0, find(t, instrs, "DC No:").Y)

	name := find(t, instrs, "John Doe")
	assert.Equal(t, 200.0, name.Y)
	assert.True(t, name.Style.Bold)
	assert.Equal(t, 215.0, find(t, instrs, "1234 Main Street").Y)
	assert.Equal(t, 230.0, find(t, instrs, "San Francisco, CA, US").Y)

	assert.Equal(t, 1, rulesAt(instrs, 185))
	assert.Equal(t, 1, rulesAt(instrs, 307))
}

func TestLayout_ZeroDateIsOmitted(t *testing.T) {
	inv := testInvoice()
	inv.IssueDate = time.Time{}
	engine, _ := newTestLayout(t, domain.DefaultConfig())

	instrs := engine.CustomerBlock(inv)

	for _, in := range instrs {
		if in.X == 400 {
			assert.NotEqual(t, 215.0, in.Y)
		}
	}
}

func TestLayout_Header(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Issuer.LogoPath = "logo.png"
	cfg.Issuer.Email = ""
	engine, _ := newTestLayout(t, cfg)

	instrs := engine.Header()

	require.NotEmpty(t, instrs)
	assert.Equal(t, domain.DrawImage, instrs[0].Kind)
	assert.Equal(t, "logo.png", instrs[0].Content)
	assert.Equal(t, 50.0, instrs[0].Width)

	name := instrs[1]
	assert.Equal(t, "Biobriqqs Inc.", name.Content)
	assert.Equal(t, 110.0, name.X)
	assert.Equal(t, 57.0, name.Y)

	gst := find(t, instrs, "GST No. ABCDJSHSHSHSHSHSS23S")
	assert.Equal(t, domain.AlignRight, gst.Style.Align)
	assert.Equal(t, 200.0, gst.X)
	// Blank email keeps its slot.
	assert.Equal(t, 50.0+5*15, gst.Y)

	for _, in := range instrs {
		assert.NotContains(t, in.Content, "Email.")
	}
}

func TestLayout_HeaderWithoutLogo(t *testing.T) {
	engine, _ := newTestLayout(t, domain.DefaultConfig())

	for _, in := range engine.Header() {
		assert.NotEqual(t, domain.DrawImage, in.Kind)
	}
}

func TestLayout_Footer(t *testing.T) {
	cfg := domain.DefaultConfig()
	engine, _ := newTestLayout(t, cfg)

	footer := engine.Footer()
	require.Len(t, footer, 1)
	assert.Equal(t, cfg.FooterText, footer[0].Content)
	assert.Equal(t, 780.0, footer[0].Y)
	assert.Equal(t, domain.AlignCenter, footer[0].Style.Align)

	cfg.FooterText = ""
	engine, _ = newTestLayout(t, cfg)
	assert.Empty(t, engine.Footer())
}

func TestLayout_Deterministic(t *testing.T) {
	cfg := domain.DefaultConfig()
	inv := testInvoice()

	first := layoutFor(t, cfg, inv)
	second := layoutFor(t, cfg, inv)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("layout differs between runs (-first +second):\n%s", diff)
	}
}

func TestLayout_Ordering(t *testing.T) {
	instrs := layoutFor(t, domain.DefaultConfig(), testInvoice())

	idx := func(content string) int {
		for i, in := range instrs {
			if in.Content == content {
				return i
			}
		}
		return -1
	}

	assert.Less(t, idx("Biobriqqs Inc."), idx("Invoice"))
	assert.Less(t, idx("Invoice"), idx("Item"))
	assert.Less(t, idx("Item"), idx("Grand Total"))
	assert.Equal(t, len(instrs)-1, idx(domain.DefaultConfig().FooterText))
}
