package invoicefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
	"github.com/eshwarmore1993/invoice-generator/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.InvoiceReader = (*Reader)(nil)

// Format is an on-disk invoice encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported invoice file %q (want .json, .toml, .yaml or .yml)",
			domain.ErrInvalidInput, filepath.Base(path))
	}
}

// Reader loads invoices from disk.
type Reader struct{}

// NewReader creates a new invoice file reader.
func NewReader() *Reader {
	return &Reader{}
}

// SupportedExtensions returns the file extensions Read accepts.
func (r *Reader) SupportedExtensions() []string {
	return []string{".json", ".toml", ".yaml", ".yml"}
}

// Read decodes the invoice at path.
func (r *Reader) Read(path string) (*domain.Invoice, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice: %w", err)
	}
	logger.Debug("invoicefile: reading %s as %s (%d bytes)", path, format, len(data))
	return Decode(data, format)
}

// Decode parses an invoice in the given format.
// Malformed input returns an error matching domain.ErrInvalidInvoice.
func Decode(data []byte, format Format) (*domain.Invoice, error) {
	raw := data
	if format != FormatJSON {
		normalised, err := toJSON(data, format)
		if err != nil {
			return nil, &domain.InvalidInvoiceError{Field: string(format), Reason: "is malformed: " + err.Error()}
		}
		raw = normalised
	}

	var f fileInvoice
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, &domain.InvalidInvoiceError{Field: string(format), Reason: "is malformed: " + err.Error()}
	}
	return f.toDomain()
}

// toJSON decodes TOML or YAML into generic values and re-encodes them as
// JSON so that every format goes through the same decimal-aware decoder.
func toJSON(data []byte, format Format) ([]byte, error) {
	var doc map[string]any
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return json.Marshal(doc)
}
