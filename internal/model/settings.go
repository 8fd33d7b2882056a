package model

// Category kinds for custom category lists.
const (
	CategoryKindVendor      = "vendor"
	CategoryKindTransaction = "transaction"
	CategoryKindProject     = "project"
)

// Settings is the single application-wide configuration blob.
type Settings struct {
	CustomCategories map[string][]string `json:"customCategories"`
	CompanyName      string              `json:"companyName"`
	BusinessType     string              `json:"businessType"`
	Currency         string              `json:"currency"`
	DateFormat       string              `json:"dateFormat"`
	Theme            string              `json:"theme"`
	ContactsAccess   bool                `json:"contactsAccess"`
}

// DefaultSettings returns the settings a fresh ledger starts with.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:  "Your Business",
		BusinessType: "construction",
		Currency:     "INR",
		DateFormat:   "2006-01-02",
		Theme:        "light",
		CustomCategories: map[string][]string{
			CategoryKindVendor:      {},
			CategoryKindTransaction: {},
			CategoryKindProject:     {},
		},
	}
}
