package pdf

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// imageScale is the pixel density of embedded images relative to points.
const imageScale = 3

// Options are document-level settings applied to every renderer.
type Options struct {
	// Title and Author go into the document information dictionary.
	Title  string
	Author string

	// CreationDate is written into the document. The zero value is replaced
	// by a fixed date so that output does not depend on the clock.
	CreationDate time.Time

	// Compress enables stream compression.
	Compress bool
}

// epoch is the creation date used when Options.CreationDate is zero.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer draws onto a single fpdf page.
// Drawing errors are kept by fpdf and returned from WriteTo.
type Renderer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	images    map[string]string
}

// New creates a renderer with one blank page of the given size.
func New(page domain.PageSize, opts Options) *Renderer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})

	created := opts.CreationDate
	if created.IsZero() {
		created = epoch
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(opts.Compress)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}

	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	return &Renderer{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		images:    make(map[string]string),
	}
}

// NewFactory returns a RendererFactory creating PDF renderers with opts.
func NewFactory(opts Options) driven.RendererFactory {
	return func(page domain.PageSize) driven.DocumentRenderer {
		return New(page, opts)
	}
}

// Err returns the first drawing error, if any.
func (r *Renderer) Err() error {
	return r.pdf.Error()
}

// Text places text with its top-left corner at (x, y).
func (r *Renderer) Text(x, y float64, text string, style domain.Style) {
	if !r.applyFont(style) {
		return
	}
	s := r.translate(text)
	r.cell(x, y, r.pdf.GetStringWidth(s), s, "L", style)
}

// TextBox places text inside [x, x+width], aligned by style.Align.
func (r *Renderer) TextBox(x, y, width float64, text string, style domain.Style) {
	if !r.applyFont(style) {
		return
	}
	r.cell(x, y, width, r.translate(text), alignStr(style.Align), style)
}

// Line strokes a line between two points.
func (r *Renderer) Line(x1, y1, x2, y2 float64, style domain.Style) {
	if r.pdf.Err() {
		return
	}
	red, green, blue, ok := r.color(style.Color)
	if !ok {
		return
	}
	r.pdf.SetDrawColor(red, green, blue)
	if style.LineWidth > 0 {
		r.pdf.SetLineWidth(style.LineWidth)
	}
	r.pdf.Line(x1, y1, x2, y2)
}

// Image places the image at path scaled to width, keeping its aspect ratio.
// The image is decoded, downscaled and re-encoded as PNG before embedding.
func (r *Renderer) Image(path string, x, y, width float64) {
	if r.pdf.Err() {
		return
	}
	name, ok := r.images[path]
	if !ok {
		var err error
		name, err = r.registerImage(path, width)
		if err != nil {
			r.pdf.SetError(fmt.Errorf("image %s: %w", path, err))
			return
		}
		r.images[path] = name
	}
	r.pdf.ImageOptions(name, x, y, width, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// WriteTo closes the document and writes it to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	if err := r.pdf.Error(); err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	err := r.pdf.Output(cw)
	return cw.n, err
}

func (r *Renderer) registerImage(path string, width float64) (string, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}

	img := src
	if target := int(width * imageScale); target > 0 && src.Bounds().Dx() > target {
		img = imaging.Resize(src, target, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}

	name := fmt.Sprintf("img%d", len(r.images))
	r.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	logger.Debug("pdf: embedded %s as %s (%d bytes)", path, name, buf.Len())
	return name, nil
}

func (r *Renderer) applyFont(style domain.Style) bool {
	if r.pdf.Err() {
		return false
	}
	red, green, blue, ok := r.color(style.Color)
	if !ok {
		return false
	}
	family := style.Font
	if family == "" {
		family = "Helvetica"
	}
	fontStyle := ""
	if style.Bold {
		fontStyle = "B"
	}
	r.pdf.SetFont(family, fontStyle, style.Size)
	r.pdf.SetTextColor(red, green, blue)
	return !r.pdf.Err()
}

// cell writes one line of text whose top edge is at y.
func (r *Renderer) cell(x, y, width float64, text, align string, style domain.Style) {
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(width, style.Size, text, "", 0, align+"T", false, 0, "")
}

// color parses a #rrggbb colour. An empty string is black.
func (r *Renderer) color(hex string) (int, int, int, bool) {
	if hex == "" {
		return 0, 0, 0, true
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		r.pdf.SetError(fmt.Errorf("colour %q: %w", hex, err))
		return 0, 0, 0, false
	}
	red, green, blue := c.RGB255()
	return int(red), int(green), int(blue), true
}

func alignStr(a domain.Align) string {
	switch a {
	case domain.AlignRight:
		return "R"
	case domain.AlignCenter:
		return "C"
	default:
		return "L"
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
