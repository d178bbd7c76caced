package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the record rendered into a document.
// It is supplied by the caller per render and never stored.
type Invoice struct {
	// Number identifies the document. Uniqueness is the caller's concern.
	Number string `json:"number"`

	// IssueDate is printed in the meta block. It must be supplied by the
	// caller; the core never samples the wall clock.
	IssueDate time.Time `json:"issue_date"`

	// ShipTo is the party the goods are delivered to.
	ShipTo Party `json:"ship_to"`

	// Meta holds the optional dispatch references printed next to the party.
	Meta InvoiceMeta `json:"meta"`

	// Items are the billable rows, in display order.
	Items []LineItem `json:"items"`
}

// Party is a name and postal address.
type Party struct {
	Name        string `json:"name"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`

	// TaxID is the party's tax registration number, printed below the address.
	TaxID string `json:"tax_id,omitempty"`
}

// CityLine joins city, state and country the way the address block prints them.
// Empty parts are left out.
func (p Party) CityLine() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.State, p.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// InvoiceMeta carries dispatch references. All fields are optional.
type InvoiceMeta struct {
	PurchaseOrder   string `json:"purchase_order,omitempty"`
	DeliveryChallan string `json:"delivery_challan,omitempty"`
	VendorCode      string `json:"vendor_code,omitempty"`
	VehicleNumber   string `json:"vehicle_number,omitempty"`
	DeliveredTo     string `json:"delivered_to,omitempty"`
}

// LineItem is one billable row.
type LineItem struct {
	// Description is the item name shown in the first column.
	Description string `json:"description"`

	// Code is the classification code (HSN) shown in the second column.
	Code string `json:"code"`

	// UnitRate is the price per unit. Must not be negative.
	UnitRate decimal.Decimal `json:"unit_rate"`

	// Quantity is the billed quantity. Must not be negative.
	Quantity decimal.Decimal `json:"quantity"`
}

// Amount returns UnitRate × Quantity in full precision.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitRate.Mul(li.Quantity)
}

// Validate checks the item amounts.
// The returned error matches ErrInvalidInvoice.
func (li LineItem) Validate(index int) error {
	field := fmt.Sprintf("items[%d]", index)
	if li.UnitRate.IsNegative() {
		return &InvalidInvoiceError{Field: field + ".unit_rate", Reason: "must not be negative"}
	}
	if li.Quantity.IsNegative() {
		return &InvalidInvoiceError{Field: field + ".quantity", Reason: "must not be negative"}
	}
	return nil
}

// Validate checks the fields the layout needs.
// An empty item list is valid and renders zero totals.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return &InvalidInvoiceError{Field: "invoice", Reason: "is nil"}
	}
	if strings.TrimSpace(inv.Number) == "" {
		return &InvalidInvoiceError{Field: "number", Reason: "is required"}
	}
	if strings.TrimSpace(inv.ShipTo.Name) == "" {
		return &InvalidInvoiceError{Field: "ship_to.name", Reason: "is required"}
	}
	for i := range inv.Items {
		if err := inv.Items[i].Validate(i); err != nil {
			return err
		}
	}
	return nil
}
