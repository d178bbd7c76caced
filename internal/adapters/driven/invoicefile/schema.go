package invoicefile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// dateLayout is the on-disk form of issue_date.
const dateLayout = "2006-01-02"

type fileInvoice struct {
	Number    string     `json:"number" toml:"number" yaml:"number"`
	IssueDate string     `json:"issue_date,omitempty" toml:"issue_date,omitempty" yaml:"issue_date,omitempty"`
	ShipTo    fileParty  `json:"ship_to" toml:"ship_to" yaml:"ship_to"`
	Meta      fileMeta   `json:"meta" toml:"meta" yaml:"meta"`
	Items     []fileItem `json:"items" toml:"items" yaml:"items"`
}

type fileParty struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	AddressLine string `json:"address_line,omitempty" toml:"address_line,omitempty" yaml:"address_line,omitempty"`
	City        string `json:"city,omitempty" toml:"city,omitempty" yaml:"city,omitempty"`
	State       string `json:"state,omitempty" toml:"state,omitempty" yaml:"state,omitempty"`
	Country     string `json:"country,omitempty" toml:"country,omitempty" yaml:"country,omitempty"`
	TaxID       string `json:"tax_id,omitempty" toml:"tax_id,omitempty" yaml:"tax_id,omitempty"`
}

type fileMeta struct {
	PurchaseOrder   string `json:"purchase_order,omitempty" toml:"purchase_order,omitempty" yaml:"purchase_order,omitempty"`
	DeliveryChallan string `json:"delivery_challan,omitempty" toml:"delivery_challan,omitempty" yaml:"delivery_challan,omitempty"`
	VendorCode      string `json:"vendor_code,omitempty" toml:"vendor_code,omitempty" yaml:"vendor_code,omitempty"`
	VehicleNumber   string `json:"vehicle_number,omitempty" toml:"vehicle_number,omitempty" yaml:"vehicle_number,omitempty"`
	DeliveredTo     string `json:"delivered_to,omitempty" toml:"delivered_to,omitempty" yaml:"delivered_to,omitempty"`
}

type fileItem struct {
	Description string          `json:"description" toml:"description" yaml:"description"`
	Code        string          `json:"code,omitempty" toml:"code,omitempty" yaml:"code,omitempty"`
	UnitRate    decimal.Decimal `json:"unit_rate" toml:"unit_rate" yaml:"unit_rate"`
	Quantity    decimal.Decimal `json:"quantity" toml:"quantity" yaml:"quantity"`
}

func (f *fileInvoice) toDomain() (*domain.Invoice, error) {
	inv := &domain.Invoice{
		Number: f.Number,
		ShipTo: domain.Party(f.ShipTo),
		Meta:   domain.InvoiceMeta(f.Meta),
		Items:  make([]domain.LineItem, len(f.Items)),
	}
	if f.IssueDate != "" {
		date, err := parseDate(f.IssueDate)
		if err != nil {
			return nil, &domain.InvalidInvoiceError{Field: "issue_date", Reason: "must be YYYY-MM-DD"}
		}
		inv.IssueDate = date
	}
	for i, it := range f.Items {
		inv.Items[i] = domain.LineItem(it)
	}
	return inv, nil
}

func fromDomain(inv *domain.Invoice) *fileInvoice {
	f := &fileInvoice{
		Number: inv.Number,
		ShipTo: fileParty(inv.ShipTo),
		Meta:   fileMeta(inv.Meta),
		Items:  make([]fileItem, len(inv.Items)),
	}
	if !inv.IssueDate.IsZero() {
		f.IssueDate = inv.IssueDate.Format(dateLayout)
	}
	for i, it := range inv.Items {
		f.Items[i] = fileItem(it)
	}
	return f
}

// parseDate accepts YYYY-MM-DD and RFC 3339 timestamps. The YAML decoder
// turns unquoted dates into timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
