package models

import "time"

// Club представляет спортивный клуб.
type Club struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
