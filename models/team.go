package models

import "time"

type Team struct {
	ID        int       `json:"id"`
	ClubID    int       `json:"club_id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category,omitempty"` // например "senior", "u18"
	CreatedAt time.Time `json:"created_at"`
}
