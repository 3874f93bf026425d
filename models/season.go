package models

import "time"

type Season struct {
	ID        int       `json:"id"`
	ClubID    int       `json:"club_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}
