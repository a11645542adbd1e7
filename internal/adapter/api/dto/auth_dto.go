package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/member"
)

// RegisterRequest carries the member registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// LoginRequest carries the credentials of a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the token to refresh
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// MemberResponse is the read view of a member; the password hash never leaves
// the server
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries a signed JWT and the member it belongs to
type TokenResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

// ToMemberResponse converts a domain member into its response form
func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
