package services

import (
	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// LayoutEngine positions every row of the document.
//
// It never recomputes totals: values come from the TotalsSummary it is given.
// The same invoice, totals and configuration always produce the same
// instruction sequence.
type LayoutEngine struct {
	layout    domain.Layout
	issuer    domain.Issuer
	footer    string
	formatter *Formatter
}

// NewLayoutEngine creates a layout engine for one configuration.
func NewLayoutEngine(cfg domain.Config, formatter *Formatter) *LayoutEngine {
	return &LayoutEngine{
		layout:    cfg.Layout,
		issuer:    cfg.Issuer,
		footer:    cfg.FooterText,
		formatter: formatter,
	}
}

// SummaryRows holds the y positions of the summary block.
type SummaryRows struct {
	Subtotal   float64
	Taxes      []float64
	GrandTotal float64
	Words      float64
}

// ItemRowY returns the y position of item row index (0-based).
func (e *LayoutEngine) ItemRowY(index int) float64 {
	return e.layout.TableTop + float64(index+1)*e.layout.RowHeight
}

// SummaryRowsFor places the summary block below itemCount item rows.
// The first tax row sits FirstTaxOffset below the subtotal, further tax rows
// TaxStep apart, then the grand total and words rows at their own offsets.
func (e *LayoutEngine) SummaryRowsFor(itemCount, taxCount int) SummaryRows {
	l := e.layout
	rows := SummaryRows{
		Subtotal: e.ItemRowY(itemCount),
		Taxes:    make([]float64, taxCount),
	}

	y := rows.Subtotal
	for i := range rows.Taxes {
		if i == 0 {
			y += l.FirstTaxOffset
		} else {
			y += l.TaxStep
		}
		rows.Taxes[i] = y
	}
	rows.GrandTotal = y + l.GrandTotalOffset
	rows.Words = rows.GrandTotal + l.WordsOffset
	return rows
}

// Layout returns the instructions for the whole page in drawing order:
// header, customer and meta block, table, footer.
func (e *LayoutEngine) Layout(inv *domain.Invoice, totals *domain.TotalsSummary) []domain.DrawInstruction {
	header := e.Header()
	customer := e.CustomerBlock(inv)
	table := e.Table(inv.Items, totals)
	footer := e.Footer()

	out := make([]domain.DrawInstruction, 0, len(header)+len(customer)+len(table)+len(footer))
	out = append(out, header...)
	out = append(out, customer...)
	out = append(out, table...)
	return append(out, footer...)
}

// Header lays out the logo and the issuer identity block.
func (e *LayoutEngine) Header() []domain.DrawInstruction {
	l := e.layout
	var out []domain.DrawInstruction

	if e.issuer.LogoPath != "" {
		out = append(out, domain.DrawInstruction{
			Kind:    domain.DrawImage,
			X:       l.LogoX,
			Y:       l.LogoY,
			Width:   l.LogoWidth,
			Content: e.issuer.LogoPath,
		})
	}
	if e.issuer.Name != "" {
		out = append(out, e.text(l.IssuerNameX, l.IssuerNameY, e.issuer.Name, e.titleStyle()))
	}

	lines := []string{
		e.issuer.Name,
		e.issuer.Address,
		e.issuer.CityLine,
		prefixed(l.Labels.ContactPrefix, e.issuer.Contact),
		prefixed(l.Labels.EmailPrefix, e.issuer.Email),
		prefixed(l.Labels.GSTPrefix, e.issuer.GSTNumber),
		prefixed(l.Labels.PANPrefix, e.issuer.PANNumber),
	}
	width := l.Page.Width - l.Margin - l.IssuerBlockX
	style := e.bodyStyle()
	style.Align = domain.AlignRight
	for i, line := range lines {
		if line == "" {
			continue
		}
		y := l.IssuerBlockY + float64(i)*l.IssuerLineGap
		out = append(out, e.box(l.IssuerBlockX, y, width, line, style))
	}
	return out
}

// CustomerBlock lays out the title, the ship-to party and the meta pairs.
func (e *LayoutEngine) CustomerBlock(inv *domain.Invoice) []domain.DrawInstruction {
	l := e.layout
	body := e.bodyStyle()
	bold := e.boldStyle()

	out := []domain.DrawInstruction{
		e.text(l.TitleX, l.TitleY, l.Labels.Title, e.titleStyle()),
		e.rule(l.TitleRuleY),
	}

	date := ""
	if !inv.IssueDate.IsZero() {
		date = e.formatter.FormatDate(inv.IssueDate)
	}
	meta := []struct {
		label, value string
		bold         bool
	}{
		{l.Labels.InvoiceNumber, inv.Number, true},
		{l.Labels.InvoiceDate, date, false},
		{l.Labels.PurchaseOrder, inv.Meta.PurchaseOrder, false},
		{l.Labels.DeliveryNote, inv.Meta.DeliveryChallan, false},
		{l.Labels.VendorCode, inv.Meta.VendorCode, false},
		{l.Labels.VehicleNumber, inv.Meta.VehicleNumber, false},
		{l.Labels.DeliveredTo, inv.Meta.DeliveredTo, false},
	}
	for i, m := range meta {
		y := l.CustomerTop + float64(i)*l.CustomerLineGap
		out = append(out, e.text(l.MetaLabelX, y, m.label, body))
		if m.value == "" {
			continue
		}
		style := body
		if m.bold {
			style = bold
		}
		out = append(out, e.text(l.MetaValueX, y, m.value, style))
	}

	party := []string{inv.ShipTo.Name, inv.ShipTo.AddressLine, inv.ShipTo.CityLine(), inv.ShipTo.TaxID}
	for i, line := range party {
		if line == "" {
			continue
		}
		style := body
		if i == 0 {
			style = bold
		}
		out = append(out, e.text(l.PartyX, l.CustomerTop+float64(i)*l.CustomerLineGap, line, style))
	}

	return append(out, e.rule(l.CustomerRuleY))
}

// Table lays out the header row, one row per item with a rule under each,
// and the summary block.
func (e *LayoutEngine) Table(items []domain.LineItem, totals *domain.TotalsSummary) []domain.DrawInstruction {
	l := e.layout
	f := e.formatter
	body := e.bodyStyle()
	bold := e.boldStyle()

	out := e.row(l.TableTop, l.Labels.ItemHeader, l.Labels.CodeHeader, l.Labels.RateHeader,
		l.Labels.QtyHeader, l.Labels.AmountHeader, bold)
	out = append(out, e.rule(l.TableTop+l.RowRuleOffset))

	for i, item := range items {
		y := e.ItemRowY(i)
		out = append(out, e.row(y, item.Description, item.Code, f.FormatCurrency(item.UnitRate),
			f.FormatQuantity(item.Quantity), f.FormatCurrency(item.Amount()), body)...)
		out = append(out, e.rule(y+l.RowRuleOffset))
	}

	rows := e.SummaryRowsFor(len(items), len(totals.Taxes))
	out = append(out, e.row(rows.Subtotal, "", "", l.Labels.Subtotal, "", f.FormatCurrency(totals.Subtotal), body)...)
	for i, tax := range totals.Taxes {
		out = append(out, e.row(rows.Taxes[i], "", "", tax.Component.DisplayLabel(), "", f.FormatCurrency(tax.Amount), body)...)
	}
	out = append(out, e.row(rows.GrandTotal, "", "", l.Labels.GrandTotal, "", f.FormatCurrency(totals.GrandTotal), bold)...)
	if l.GrandTotalRuleOffset > 0 {
		out = append(out, e.rule(rows.GrandTotal+l.GrandTotalRuleOffset))
	}
	out = append(out, e.row(rows.Words, f.WordsRow(totals.GrandTotalWords), "", "", "", "", bold)...)
	return out
}

// Footer lays out the centred footer line.
func (e *LayoutEngine) Footer() []domain.DrawInstruction {
	if e.footer == "" {
		return nil
	}
	l := e.layout
	style := e.bodyStyle()
	style.Align = domain.AlignCenter
	return []domain.DrawInstruction{e.box(l.FooterX, l.FooterY, l.FooterWidth, e.footer, style)}
}

// row places the five text slots of a table row at y.
// Empty slots emit nothing; the other columns keep their fixed anchors.
func (e *LayoutEngine) row(y float64, item, code, rate, quantity, amount string, style domain.Style) []domain.DrawInstruction {
	l := e.layout
	slots := []struct {
		col  domain.Column
		text string
	}{
		{l.ItemColumn, item},
		{l.CodeColumn, code},
		{l.RateColumn, rate},
		{l.QuantityColumn, quantity},
		{l.AmountColumn, amount},
	}

	out := make([]domain.DrawInstruction, 0, len(slots))
	for _, s := range slots {
		if s.text == "" {
			continue
		}
		if s.col.Width == 0 {
			out = append(out, e.text(s.col.X, y, s.text, style))
			continue
		}
		st := style
		st.Align = s.col.Align
		out = append(out, e.box(s.col.X, y, s.col.Width, s.text, st))
	}
	return out
}

func (e *LayoutEngine) text(x, y float64, content string, style domain.Style) domain.DrawInstruction {
	return domain.DrawInstruction{Kind: domain.DrawText, X: x, Y: y, Content: content, Style: style}
}

func (e *LayoutEngine) box(x, y, width float64, content string, style domain.Style) domain.DrawInstruction {
	return domain.DrawInstruction{Kind: domain.DrawText, X: x, Y: y, Width: width, Content: content, Style: style}
}

func (e *LayoutEngine) rule(y float64) domain.DrawInstruction {
	return domain.DrawInstruction{
		Kind:  domain.DrawLine,
		X:     e.layout.RuleStartX,
		Y:     y,
		X2:    e.layout.RuleEndX,
		Y2:    y,
		Style: domain.Style{Color: e.layout.RuleColor, LineWidth: e.layout.RuleWidth},
	}
}

func (e *LayoutEngine) bodyStyle() domain.Style {
	return domain.Style{Font: e.layout.Font, Size: e.layout.BodySize, Color: e.layout.TextColor}
}

func (e *LayoutEngine) boldStyle() domain.Style {
	s := e.bodyStyle()
	s.Bold = true
	return s
}

func (e *LayoutEngine) titleStyle() domain.Style {
	s := e.bodyStyle()
	s.Size = e.layout.TitleSize
	return s
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
