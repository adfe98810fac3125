package dto

import "tipcloud/internal/core/domain"

// SignUpRequest is the request body for account creation.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128" sanitize:"-"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// RegisterDJRequest is the request body for DJ profile registration.
type RegisterDJRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	Genre         string  `json:"genre" binding:"required,max=50"`
	Bio           string  `json:"bio" binding:"required,min=10,max=1000"`
	SoundCloudURL string  `json:"soundcloud_url" binding:"required,safe_url"`
	WalletAddress string  `json:"wallet_address" binding:"required,min=10,max=128,wallet_address"`
	ImageURL      *string `json:"image_url,omitempty" binding:"omitempty,safe_url"`
}

// DJDetailResponse is a DJ profile with its tip totals.
type DJDetailResponse struct {
	DJ    domain.DJProfile `json:"dj"`
	Stats domain.TipStats  `json:"stats"`
}

// SendTipRequest is the request body for a tip submission.
type SendTipRequest struct {
	DJID       string `json:"dj_id" binding:"required,safe_id"`
	AmountSats int64  `json:"amount_sats" binding:"required,gt=0"`
	Memo       string `json:"memo" binding:"omitempty,memo"`
}

// TipOptionsResponse describes the amounts offered in the tip dialog.
type TipOptionsResponse struct {
	Presets []int64 `json:"presets"`
	Default int64   `json:"default"`
	MaxMemo int     `json:"max_memo_bytes"`
}
