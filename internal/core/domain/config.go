package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config is everything a render needs besides the invoice itself.
// It is built once at the boundary and passed in; nothing in the core keeps
// package-level formatting state.
type Config struct {
	// Issuer is the identity block printed in the header.
	Issuer Issuer

	// TaxComponents are applied to the subtotal in order.
	TaxComponents []TaxComponent

	// WordsLocale selects the amount-in-words language and grouping,
	// e.g. "en-IN".
	WordsLocale string

	// FooterText is centred at the bottom of the page.
	FooterText string

	// Layout holds every fixed coordinate of the document.
	Layout Layout
}

// Issuer is the business issuing the invoice.
type Issuer struct {
	Name      string
	Address   string
	CityLine  string
	Contact   string
	Email     string
	GSTNumber string
	PANNumber string

	// LogoPath is an image file placed in the top-left corner. Optional.
	LogoPath string
}

// Column is a table column anchor. A zero Width means the text starts at X;
// otherwise it is aligned inside [X, X+Width].
type Column struct {
	X     float64
	Width float64
	Align Align
}

// Labels are the fixed captions printed on the document.
type Labels struct {
	Title         string
	InvoiceNumber string
	InvoiceDate   string
	PurchaseOrder string
	DeliveryNote  string
	VendorCode    string
	VehicleNumber string
	DeliveredTo   string
	ItemHeader    string
	CodeHeader    string
	RateHeader    string
	QtyHeader     string
	AmountHeader  string
	Subtotal      string
	GrandTotal    string
	ContactPrefix string
	EmailPrefix   string
	GSTPrefix     string
	PANPrefix     string
}

// Layout holds the fixed page geometry in points.
// Summary rows use named offsets rather than the item row step.
type Layout struct {
	Page   PageSize
	Margin float64

	// Header.
	Font          string
	TitleSize     float64
	BodySize      float64
	TextColor     string
	RuleColor     string
	RuleWidth     float64
	RuleStartX    float64
	RuleEndX      float64
	LogoX         float64
	LogoY         float64
	LogoWidth     float64
	IssuerNameX   float64
	IssuerNameY   float64
	IssuerBlockX  float64
	IssuerBlockY  float64
	IssuerLineGap float64

	// Customer and meta block.
	TitleX          float64
	TitleY          float64
	TitleRuleY      float64
	CustomerTop     float64
	CustomerLineGap float64
	PartyX          float64
	MetaLabelX      float64
	MetaValueX      float64
	CustomerRuleY   float64

	// Table.
	TableTop         float64
	RowHeight        float64
	RowRuleOffset    float64
	ItemColumn       Column
	CodeColumn       Column
	RateColumn       Column
	QuantityColumn   Column
	AmountColumn     Column
	FirstTaxOffset   float64
	TaxStep          float64
	GrandTotalOffset float64
	WordsOffset      float64

	// GrandTotalRuleOffset places a rule below the grand total row.
	GrandTotalRuleOffset float64

	// Footer.
	FooterX     float64
	FooterY     float64
	FooterWidth float64

	Labels Labels
}

// DefaultLabels returns the captions of the standard document.
func DefaultLabels() Labels {
	return Labels{
		Title:         "Invoice",
		InvoiceNumber: "Invoice Number:",
		InvoiceDate:   "Invoice Date:",
		PurchaseOrder: "PO No:",
		DeliveryNote:  "DC No:",
		VendorCode:    "Vendor Code:",
		VehicleNumber: "Vehicle No:",
		DeliveredTo:   "Delivered To:",
		ItemHeader:    "Item",
		CodeHeader:    "HSN Code",
		RateHeader:    "Rate",
		QtyHeader:     "Quantity(Ton)",
		AmountHeader:  "Amount (Rs)",
		Subtotal:      "Total",
		GrandTotal:    "Grand Total",
		ContactPrefix: "Contact No. ",
		EmailPrefix:   "Email. ",
		GSTPrefix:     "GST No. ",
		PANPrefix:     "PAN No. ",
	}
}

// DefaultLayout returns the A4 geometry of the standard document.
func DefaultLayout() Layout {
	const margin = 50
	page := A4
	return Layout{
		Page:          page,
		Margin:        margin,
		Font:          "Helvetica",
		TitleSize:     20,
		BodySize:      10,
		TextColor:     "#444444",
		RuleColor:     "#aaaaaa",
		RuleWidth:     1,
		RuleStartX:    margin,
		RuleEndX:      550,
		LogoX:         margin,
		LogoY:         45,
		LogoWidth:     50,
		IssuerNameX:   110,
		IssuerNameY:   57,
		IssuerBlockX:  200,
		IssuerBlockY:  50,
		IssuerLineGap: 15,

		TitleX:          margin,
		TitleY:          160,
		TitleRuleY:      185,
		CustomerTop:     200,
		CustomerLineGap: 15,
		PartyX:          margin,
		MetaLabelX:      300,
		MetaValueX:      400,
		CustomerRuleY:   307,

		TableTop:             330,
		RowHeight:            30,
		RowRuleOffset:        20,
		ItemColumn:           Column{X: margin},
		CodeColumn:           Column{X: 150},
		RateColumn:           Column{X: 280, Width: 90, Align: AlignRight},
		QuantityColumn:       Column{X: 370, Width: 90, Align: AlignRight},
		AmountColumn:         Column{X: 0, Width: page.Width - margin, Align: AlignRight},
		FirstTaxOffset:       20,
		TaxStep:              25,
		GrandTotalOffset:     25,
		WordsOffset:          25,
		GrandTotalRuleOffset: 20,

		FooterX:     margin,
		FooterY:     780,
		FooterWidth: 500,

		Labels: DefaultLabels(),
	}
}

// MetaRowCount is the number of label rows in the meta block.
const MetaRowCount = 7

// SetMargin moves every anchor that sits on the page margin. The right edge
// of the rules and the footer moves inward by as much as the left edge moves
// right, so the content stays centred.
func (l *Layout) SetMargin(margin float64) {
	delta := margin - l.Margin
	l.Margin = margin
	l.RuleStartX = margin
	l.RuleEndX -= delta
	l.LogoX = margin
	l.IssuerNameX += delta
	l.TitleX = margin
	l.PartyX = margin
	l.ItemColumn.X = margin
	l.FooterX = margin
	l.FooterWidth = l.RuleEndX - margin
	l.AmountColumn.Width = l.Page.Width - margin - l.AmountColumn.X
}

// SetCustomerTop moves the customer block to top. The title above it and the
// rule and table below it move with it, keeping their spacing.
func (l *Layout) SetCustomerTop(top float64) {
	delta := top - l.CustomerTop
	l.CustomerTop = top
	l.TitleY += delta
	l.TitleRuleY += delta
	l.CustomerRuleY += delta
	l.TableTop += delta
}

// Validate rejects geometry whose blocks would overlap.
func (l Layout) Validate() error {
	lastMetaRow := l.CustomerTop + float64(MetaRowCount-1)*l.CustomerLineGap
	switch {
	case l.RowHeight <= 0:
		return fmt.Errorf("%w: layout row height must be positive", ErrInvalidInput)
	case l.Margin < 0 || 2*l.Margin >= l.Page.Width:
		return fmt.Errorf("%w: layout margin %g does not fit the page", ErrInvalidInput, l.Margin)
	case l.TitleRuleY >= l.CustomerTop:
		return fmt.Errorf("%w: customer block at %g overlaps the title rule at %g", ErrInvalidInput, l.CustomerTop, l.TitleRuleY)
	case lastMetaRow >= l.CustomerRuleY:
		return fmt.Errorf("%w: meta rows end at %g, past the customer rule at %g", ErrInvalidInput, lastMetaRow, l.CustomerRuleY)
	case l.CustomerRuleY >= l.TableTop:
		return fmt.Errorf("%w: table top %g is above the customer rule at %g", ErrInvalidInput, l.TableTop, l.CustomerRuleY)
	}
	return nil
}

// DefaultTaxComponents returns the two half-rate components of a 5% GST.
func DefaultTaxComponents() []TaxComponent {
	half := decimal.RequireFromString("0.025")
	return []TaxComponent{
		{Label: "SGST", Rate: half},
		{Label: "CGST", Rate: half},
	}
}

// DefaultConfig returns the configuration of the standard document.
func DefaultConfig() Config {
	return Config{
		Issuer: Issuer{
			Name:      "Biobriqqs Inc.",
			Address:   "123 Main Street",
			CityLine:  "New York, NY, 10025",
			Contact:   "7769940521",
			Email:     "xyz@gmail.com",
			GSTNumber: "ABCDJSHSHSHSHSHSS23S",
			PANNumber: "CJOPM6026A",
		},
		TaxComponents: DefaultTaxComponents(),
		WordsLocale:   "en-IN",
		FooterText:    "Payment is due within 15 days of delivery. Thank you for your business.",
		Layout:        DefaultLayout(),
	}
}

// Validate checks the configuration for values that would break a render.
func (c Config) Validate() error {
	if c.WordsLocale == "" {
		return fmt.Errorf("%w: words locale is required", ErrInvalidInput)
	}
	for i, t := range c.TaxComponents {
		if t.Label == "" {
			return fmt.Errorf("%w: tax component %d has no label", ErrInvalidInput, i)
		}
		if t.Rate.IsNegative() {
			return fmt.Errorf("%w: tax component %q has a negative rate", ErrInvalidInput, t.Label)
		}
	}
	return c.Layout.Validate()
}
