package dto

import "github.com/vitrine-app/storefront/internal/model"

// UserSummary is the public projection returned after registration.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserProfile is the richer projection returned on login.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}

func NewUserSummary(u *model.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Name: u.Name}
}

func NewUserProfile(u *model.User) UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}
