package models

// Typed request payloads, one per mutating operation. Validation rules
// live on the structs; handlers run them through a shared validator.

// CreatePokemonInput carries the fields for a new Pokemon. ImageURL is
// optional; when present an Image row is created in the same transaction.
type CreatePokemonInput struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	Type          string `json:"type" validate:"required,min=1,max=100"`
	TypeSecondary string `json:"type_secondary" validate:"omitempty,max=100"`
	Region        string `json:"region" validate:"omitempty,max=100"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	Description   string `json:"description" validate:"omitempty,max=500"`
	ImageURL      string `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdatePokemonInput is a full replace of the mutable Pokemon fields.
type UpdatePokemonInput struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	Type          string `json:"type" validate:"required,min=1,max=100"`
	TypeSecondary string `json:"type_secondary" validate:"omitempty,max=100"`
	Region        string `json:"region" validate:"omitempty,max=100"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	Description   string `json:"description" validate:"omitempty,max=500"`
}

// ImageInput carries the fields for creating or replacing an Image.
type ImageInput struct {
	URL     string `json:"url" validate:"required,url,max=500"`
	Caption string `json:"caption" validate:"omitempty,max=255"`
}

// ReviewInput carries the fields for creating or replacing a Review.
type ReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Title  string `json:"title" validate:"omitempty,max=255"`
	Body   string `json:"body" validate:"omitempty,max=1000"`
}

// ListInput carries the fields for creating or replacing a List.
type ListInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// RegisterInput is the payload for /auth/register. The password only
// exists here; the User model never serializes it back out.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the credential payload for /auth/login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
