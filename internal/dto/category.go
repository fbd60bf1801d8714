package dto

// CreateCategoryRequest defines the payload for creating a new category.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Emoji string `json:"emoji"`
	Type  string `json:"type" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
}

// UpdateCategoryRequest defines the payload for editing a category in place.
// Identity (the ID) is immutable; only name, emoji and type may change.
type UpdateCategoryRequest struct {
	CategoryID string  `json:"id" validate:"required"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Emoji      *string `json:"emoji,omitempty"`
	Type       *string `json:"type,omitempty" validate:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
}
