package pdf

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

func drawSample(r *Renderer) {
	body := domain.Style{Font: "Helvetica", Size: 10, Color: "#444444"}
	bold := body
	bold.Bold = true
	right := body
	right.Align = domain.AlignRight

	r.Text(50, 160, "Invoice", domain.Style{Font: "Helvetica", Size: 20, Color: "#444444"})
	r.Line(50, 185, 550, 185, domain.Style{Color: "#aaaaaa", LineWidth: 1})
	r.Text(50, 360, "Biomass Briquetts", body)
	r.TextBox(280, 360, 90, "4800", right)
	r.TextBox(0, 460, 545.28, "95104", bold)
	r.Text(50, 485, "Rs In words: Ninety Five Thousand One Hundred Four Rupees Only", bold)
}

func render(t *testing.T, opts Options, draw func(*Renderer)) []byte {
	t.Helper()
	r := New(domain.A4, opts)
	draw(r)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	return buf.Bytes()
}

func TestRenderer_ProducesPDF(t *testing.T) {
	out := render(t, Options{Title: "Invoice 1234"}, drawSample)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestRenderer_Deterministic(t *testing.T) {
	opts := Options{Title: "Invoice 1234", Author: "Biobriqqs Inc.", Compress: true}

	first := render(t, opts, drawSample)
	second := render(t, opts, drawSample)

	assert.Equal(t, first, second)
}

func TestRenderer_CreationDate(t *testing.T) {
	a := render(t, Options{}, drawSample)
	b := render(t, Options{CreationDate: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)}, drawSample)

	assert.Contains(t, string(a), "D:2000")
	assert.Contains(t, string(b), "D:2025")
}

func TestRenderer_InvalidColour(t *testing.T) {
	r := New(domain.A4, Options{})
	r.Text(50, 50, "x", domain.Style{Size: 10, Color: "not-a-colour"})
	r.Text(50, 70, "y", domain.Style{Size: 10})

	require.Error(t, r.Err())

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderer_MissingImage(t *testing.T) {
	r := New(domain.A4, Options{})
	r.Image(filepath.Join(t.TempDir(), "missing.png"), 50, 45, 50)

	_, err := r.WriteTo(&bytes.Buffer{})

	assert.ErrorContains(t, err, "missing.png")
}

func TestRenderer_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	src := imaging.New(400, 200, color.NRGBA{R: 200, G: 80, B: 20, A: 255})
	require.NoError(t, imaging.Save(src, path))

	plain := render(t, Options{}, drawSample)
	out := render(t, Options{}, func(r *Renderer) {
		r.Image(path, 50, 45, 50)
		r.Image(path, 50, 700, 50)
		assert.Len(t, r.images, 1, "image registered once")
		drawSample(r)
	})

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), len(plain))
}

func TestRenderer_ImageSmallerThanTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.png")
	require.NoError(t, imaging.Save(image.NewNRGBA(image.Rect(0, 0, 10, 10)), path))

	out := render(t, Options{}, func(r *Renderer) {
		r.Image(path, 0, 0, 50)
	})

	assert.NotEmpty(t, out)
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory(Options{})

	first := factory(domain.A4)
	second := factory(domain.A4)

	require.NotNil(t, first)
	assert.NotSame(t, first, second)
}

func TestAlignStr(t *testing.T) {
	assert.Equal(t, "L", alignStr(domain.AlignLeft))
	assert.Equal(t, "R", alignStr(domain.AlignRight))
	assert.Equal(t, "C", alignStr(domain.AlignCenter))
}
