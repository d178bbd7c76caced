// Package recorder provides a DocumentRenderer that records drawing calls
// instead of producing a document. WriteTo emits the calls as JSON lines,
// which makes a render diffable as text.
package recorder

import (
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Call is one recorded drawing call.
type Call struct {
	Method string       `json:"method"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	X2     float64      `json:"x2,omitempty"`
	Y2     float64      `json:"y2,omitempty"`
	Width  float64      `json:"width,omitempty"`
	Text   string       `json:"text,omitempty"`
	Style  domain.Style `json:"style"`
}

// Renderer records calls in order.
type Renderer struct {
	mu    sync.Mutex
	page  domain.PageSize
	calls []Call
	err   error
}

// New creates a recorder for a page.
func New(page domain.PageSize) *Renderer {
	return &Renderer{page: page}
}

// Factory returns a RendererFactory producing recorders. Every renderer it
// creates is passed to onCreate when non-nil, so tests can inspect it.
func Factory(onCreate func(*Renderer)) driven.RendererFactory {
	return func(page domain.PageSize) driven.DocumentRenderer {
		r := New(page)
		if onCreate != nil {
			onCreate(r)
		}
		return r
	}
}

// FailWith makes WriteTo return err, as a real engine does after a failed
// drawing call.
func (r *Renderer) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Page returns the page size the renderer was created for.
func (r *Renderer) Page() domain.PageSize {
	return r.page
}

// Calls returns a copy of the recorded calls.
func (r *Renderer) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

func (r *Renderer) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Text records a Text call.
func (r *Renderer) Text(x, y float64, text string, style domain.Style) {
	r.record(Call{Method: "text", X: x, Y: y, Text: text, Style: style})
}

// TextBox records a TextBox call.
func (r *Renderer) TextBox(x, y, width float64, text string, style domain.Style) {
	r.record(Call{Method: "textbox", X: x, Y: y, Width: width, Text: text, Style: style})
}

// Line records a Line call.
func (r *Renderer) Line(x1, y1, x2, y2 float64, style domain.Style) {
	r.record(Call{Method: "line", X: x1, Y: y1, X2: x2, Y2: y2, Style: style})
}

// Image records an Image call. The file is not opened.
func (r *Renderer) Image(path string, x, y, width float64) {
	r.record(Call{Method: "image", X: x, Y: y, Width: width, Text: path})
}

// WriteTo writes one JSON object per call.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}

	cw := &countingWriter{w: w}
	enc := json.NewEncoder(cw)
	for _, c := range r.calls {
		if err := enc.Encode(c); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ErrInjected is a convenience error for FailWith.
var ErrInjected = errors.New("injected render failure")

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
