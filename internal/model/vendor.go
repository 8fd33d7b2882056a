package model

import "time"

// VendorStatus marks whether a vendor is still in use.
type VendorStatus string

const (
	// VendorActive is the default status for new vendors.
	VendorActive VendorStatus = "active"
	// VendorInactive hides a vendor from day-to-day pickers without
	// losing its transaction history.
	VendorInactive VendorStatus = "inactive"
)

// Vendor represents a supplier or contractor the business trades with.
// Spend totals are not stored here; they are recomputed from the
// transaction list on read.
type Vendor struct {
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  string       `json:"category,omitempty"`
	Contact   string       `json:"contact,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Email     string       `json:"email,omitempty"`
	Address   string       `json:"address,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Status    VendorStatus `json:"status"`
}
