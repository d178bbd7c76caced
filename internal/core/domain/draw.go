package domain

// DrawKind identifies the type of a draw instruction.
type DrawKind string

// Available draw kinds.
const (
	// DrawText places text at a point, optionally inside a box of Width.
	DrawText DrawKind = "text"

	// DrawLine strokes a straight line from (X, Y) to (X2, Y2).
	DrawLine DrawKind = "line"

	// DrawImage places the image at Content with its top-left at (X, Y),
	// scaled to Width.
	DrawImage DrawKind = "image"
)

// Align is the horizontal alignment of text inside its box.
type Align string

// Available alignments.
const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Style carries the visual attributes of an instruction.
// Text uses Font, Bold, Size, Color and Align; lines use Color and LineWidth.
type Style struct {
	Font      string  `json:"font,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Align     Align   `json:"align,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
}

// DrawInstruction is one position-addressed rendering command.
// Instructions are values: a render builds its own slice and hands it to
// the rendering collaborator once.
type DrawInstruction struct {
	Kind DrawKind `json:"kind"`

	// X and Y are the anchor in points from the top-left page corner.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// X2 and Y2 are the end point of a line.
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// Width is the text box width or the image width. Zero means unbounded
	// text starting at X.
	Width float64 `json:"width,omitempty"`

	// Content is the text to draw or the image path.
	Content string `json:"content,omitempty"`

	Style Style `json:"style"`
}

// PageSize is a page in points (1/72 inch).
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// A4 is 210mm x 297mm.
var A4 = PageSize{Name: "A4", Width: 595.28, Height: 841.89}
