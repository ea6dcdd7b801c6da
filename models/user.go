package models

// User represents a registered user.
//
// Email is unique among live users (case-sensitive exact match). Deleting a
// user does not cascade to orders that reference it; order lines are
// snapshots, not live joins.
type User struct {
	Meta
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"required,gte=18,lte=120"`
}

// ReplaceUserRequest is the payload for PUT /users/:id. All fields are
// required; the record is fully overwritten.
type ReplaceUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"required,gte=18,lte=120"`
}

// PatchUserRequest is the payload for PATCH /users/:id. Only non-nil fields
// are applied.
type PatchUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
	Age   *int    `json:"age" binding:"omitempty,gte=18,lte=120"`
}

// UserFilters holds the list query filters for users.
type UserFilters struct {
	Name  string // case-insensitive substring match
	Email string // exact match
}
