package domain

// CategoryType classifies a category by the kind of transaction it applies to.
type CategoryType string

const (
	CategoryIncome   CategoryType = "INCOME"
	CategoryExpense  CategoryType = "EXPENSE"
	CategoryTransfer CategoryType = "TRANSFER"
)

// Valid reports whether the category type is one of the known values.
func (c CategoryType) Valid() bool {
	switch c {
	case CategoryIncome, CategoryExpense, CategoryTransfer:
		return true
	}
	return false
}

// Category represents a user-defined transaction category.
// Identity is immutable; name, emoji and type may be edited in place.
//
// Transactions and Budgets embed value copies of a Category rather than
// referencing it by ID, so that editing or deleting a category never
// rewrites history (snapshot embedding).
type Category struct {
	CategoryID string       `json:"id"` // Primary Key (UUID)
	Name       string       `json:"name"`
	Emoji      string       `json:"emoji"`
	Type       CategoryType `json:"type"`
	AuditFields
}
