package driving

import (
	"context"
	"io"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// RenderService turns invoices into documents.
type RenderService interface {
	// Plan computes totals and the full draw-instruction sequence without
	// touching any renderer or sink.
	Plan(ctx context.Context, inv *domain.Invoice) (*Plan, error)

	// Render produces one complete document and writes it to w.
	// Nothing is written to w unless the whole document was produced.
	Render(ctx context.Context, inv *domain.Invoice, w io.Writer) (*RenderResult, error)

	// RenderToFile renders into path, replacing it atomically.
	// On failure no file is left at path.
	RenderToFile(ctx context.Context, inv *domain.Invoice, path string) (*RenderResult, error)
}

// TotalsService derives the summary of an invoice without laying it out.
type TotalsService interface {
	// ComputeTotals returns subtotal, tax lines, grand total and its words.
	ComputeTotals(items []domain.LineItem) (*domain.TotalsSummary, error)
}

// Plan is the output of the layout stage.
type Plan struct {
	// Totals is the summary the layout consumed.
	Totals *domain.TotalsSummary

	// Instructions are in drawing order: header, customer block, table, footer.
	Instructions []domain.DrawInstruction
}

// RenderResult describes a finished render.
type RenderResult struct {
	// Totals is the summary printed on the document.
	Totals *domain.TotalsSummary

	// Instructions is the number of draw instructions replayed.
	Instructions int

	// Bytes is the size of the written document.
	Bytes int64
}
