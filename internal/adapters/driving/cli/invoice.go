package cli

import (
	"fmt"
	"time"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// issueDateLayout is the --date flag format.
const issueDateLayout = "2006-01-02"

// now is the clock used for invoices without an issue date.
var now = time.Now

// loadInvoice reads an invoice file and settles its issue date.
// An explicit date wins over the file; a file without a date gets today's.
func loadInvoice(path, date string) (*domain.Invoice, error) {
	reader, err := invoiceReader()
	if err != nil {
		return nil, err
	}

	inv, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	switch {
	case date != "":
		d, err := time.Parse(issueDateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: --date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		inv.IssueDate = d
	case inv.IssueDate.IsZero():
		t := now()
		inv.IssueDate = domainDate(t.Year(), int(t.Month()), t.Day())
	}
	return inv, nil
}

// domainDate is a calendar date at midnight UTC.
func domainDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
