package domain

import "time"

// DJProfile is a DJ listed in the directory.
type DJProfile struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	Name          string    `json:"name"`
	Genre         string    `json:"genre"`
	Bio           string    `json:"bio"`
	SoundCloudURL string    `json:"soundcloud_url"`
	WalletAddress string    `json:"wallet_address"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Followers     int64     `json:"followers"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DJSort selects the directory ordering.
type DJSort string

const (
	DJSortNewest     DJSort = "newest"
	DJSortName       DJSort = "name"
	DJSortPopularity DJSort = "popularity"
)

// IsValid reports whether s is a known ordering.
func (s DJSort) IsValid() bool {
	switch s {
	case DJSortNewest, DJSortName, DJSortPopularity:
		return true
	}
	return false
}
