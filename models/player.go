package models

import "time"

type Player struct {
	ID        int     `json:"id"`
	TeamID    *int    `json:"team_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Number    *int    `json:"number,omitempty"`
	Position  *string `json:"position,omitempty"`

	PhotoKey *string `json:"-"`
	PhotoURL *string `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
