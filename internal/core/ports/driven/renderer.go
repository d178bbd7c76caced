package driven

import (
	"io"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// DocumentRenderer is the external document-rendering engine.
// Drawing calls do not return errors; an implementation records the first
// failure and reports it from WriteTo.
type DocumentRenderer interface {
	// Text places text with its top-left corner at (x, y).
	Text(x, y float64, text string, style domain.Style)

	// TextBox places text inside a box of the given width starting at x,
	// aligned according to style.Align.
	TextBox(x, y, width float64, text string, style domain.Style)

	// Line strokes a straight line between two points.
	Line(x1, y1, x2, y2 float64, style domain.Style)

	// Image places the image file at path with its top-left corner at (x, y),
	// scaled to width.
	Image(path string, x, y, width float64)

	// WriteTo streams the finished document to w.
	// It returns the first error recorded while drawing, if any.
	WriteTo(w io.Writer) (int64, error)
}

// RendererFactory creates a DocumentRenderer for one document.
// Renderers are never shared between renders.
type RendererFactory func(page domain.PageSize) DocumentRenderer
