// internal/domain/models/user.go
package models

// User is a back-office account. Only users with IsAdmin may mutate content.
//
// NOTE:
//   - PasswordHash is part of the stored record (the sqlite backend keeps
//     records as JSON), so a User must never be written to an API response.
//     Use the session user or a dedicated view type instead.
type User struct {
	ID           int64  `bson:"_id" json:"id"`
	Username     string `bson:"username" json:"username"`
	UsernameCI   string `bson:"username_ci" json:"usernameCi"` // folded for case-insensitive lookup
	PasswordHash string `bson:"password_hash" json:"passwordHash"`
	IsAdmin      bool   `bson:"is_admin" json:"isAdmin"`
}
