package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driving"
	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

// Ensure DocumentAssembler implements the interface.
var _ driving.RenderService = (*DocumentAssembler)(nil)

// DocumentAssembler runs the render pipeline:
// validate, compute totals, lay out, replay into a renderer, write the sink.
//
// It holds no per-render state and is safe for concurrent use; each render
// gets its own totals, instruction slice and renderer.
type DocumentAssembler struct {
	page       domain.PageSize
	calculator *TotalsCalculator
	layout     *LayoutEngine
	newRender  driven.RendererFactory
}

// NewDocumentAssembler creates an assembler for one configuration.
// factory may be nil when only Plan is needed.
func NewDocumentAssembler(cfg domain.Config, factory driven.RendererFactory) (*DocumentAssembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	formatter, err := NewFormatter(cfg.WordsLocale)
	if err != nil {
		return nil, err
	}
	return &DocumentAssembler{
		page:       cfg.Layout.Page,
		calculator: NewTotalsCalculator(formatter, cfg.TaxComponents),
		layout:     NewLayoutEngine(cfg, formatter),
		newRender:  factory,
	}, nil
}

// Plan validates the invoice and returns its totals and instructions.
func (a *DocumentAssembler) Plan(ctx context.Context, inv *domain.Invoice) (*driving.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	totals, err := a.calculator.ComputeTotals(inv.Items)
	if err != nil {
		return nil, err
	}

	instructions := a.layout.Layout(inv, totals)
	logger.Debug("plan: invoice %s, %d instructions", inv.Number, len(instructions))

	return &driving.Plan{Totals: totals, Instructions: instructions}, nil
}

// Render produces the document in memory and only then writes it to w,
// so a failed render writes nothing.
func (a *DocumentAssembler) Render(ctx context.Context, inv *domain.Invoice, w io.Writer) (*driving.RenderResult, error) {
	if a.newRender == nil {
		return nil, domain.ErrNotImplemented
	}

	renderID := uuid.NewString()
	logger.Section("Render")
	logger.Debug("render %s: started", renderID)
	defer logger.Timed("render " + renderID)()

	plan, err := a.Plan(ctx, inv)
	if err != nil {
		logger.Warn("render %s: %v", renderID, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer := a.newRender(a.page)
	replay(renderer, plan.Instructions)

	var buf bytes.Buffer
	if _, err := renderer.WriteTo(&buf); err != nil {
		return nil, &domain.RenderIOError{Op: "render", Err: err}
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return nil, &domain.RenderIOError{Op: "write", Err: err}
	}

	logger.Info("render %s: invoice %s, %d bytes", renderID, inv.Number, n)
	return &driving.RenderResult{
		Totals:       plan.Totals,
		Instructions: len(plan.Instructions),
		Bytes:        n,
	}, nil
}

// RenderToFile renders into a temporary file next to path and renames it
// into place. The temporary file is removed on every failure path.
func (a *DocumentAssembler) RenderToFile(ctx context.Context, inv *domain.Invoice, path string) (*driving.RenderResult, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, &domain.RenderIOError{Op: "create", Err: err}
	}

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	result, err := a.Render(ctx, inv, tmp)
	if err != nil {
		return nil, err
	}
	if err := tmp.Sync(); err != nil {
		return nil, &domain.RenderIOError{Op: "sync", Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		return nil, &domain.RenderIOError{Op: "chmod", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &domain.RenderIOError{Op: "close", Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return nil, &domain.RenderIOError{Op: "rename", Err: fmt.Errorf("%s: %w", path, err)}
	}
	committed = true

	return result, nil
}

// replay hands the instructions to the renderer in order.
func replay(r driven.DocumentRenderer, instructions []domain.DrawInstruction) {
	for _, in := range instructions {
		switch in.Kind {
		case domain.DrawText:
			if in.Width > 0 {
				r.TextBox(in.X, in.Y, in.Width, in.Content, in.Style)
			} else {
				r.Text(in.X, in.Y, in.Content, in.Style)
			}
		case domain.DrawLine:
			r.Line(in.X, in.Y, in.X2, in.Y2, in.Style)
		case domain.DrawImage:
			r.Image(in.Content, in.X, in.Y, in.Width)
		}
	}
}
