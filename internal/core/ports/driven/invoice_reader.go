package driven

import "github.com/eshwarmore1993/invoice-generator/internal/core/domain"

// InvoiceReader loads an invoice record from a file.
// Implementations choose the decoding from the file extension.
type InvoiceReader interface {
	// Read decodes the invoice at path.
	// Malformed records return an error matching domain.ErrInvalidInvoice.
	Read(path string) (*domain.Invoice, error)

	// SupportedExtensions returns the file extensions Read accepts.
	SupportedExtensions() []string
}
