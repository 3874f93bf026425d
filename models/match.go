package models

import "time"

// Счёт в Match авторитетный, меняется только сервисами (голы и ручная
// корректировка).
type Match struct {
	ID         int `json:"id"`
	SeasonID   int `json:"seasonId"`
	HomeTeamID int `json:"homeTeamId"`
	AwayTeamID int `json:"awayTeamId"`

	HomeScore  int  `json:"homeScore"`
	AwayScore  int  `json:"awayScore"`
	IsFinished bool `json:"isFinished"`

	// Блокировка подачи событий, независимая для каждой стороны.
	HomeEventsLocked bool `json:"homeEventsLocked"`
	AwayEventsLocked bool `json:"awayEventsLocked"`

	// Живая калибровка: epoch-миллисекунды начала/конца таймов.
	RealTimeFirstHalfStart  *int64 `json:"realTimeFirstHalfStart,omitempty"`
	RealTimeFirstHalfEnd    *int64 `json:"realTimeFirstHalfEnd,omitempty"`
	RealTimeSecondHalfStart *int64 `json:"realTimeSecondHalfStart,omitempty"`
	RealTimeSecondHalfEnd   *int64 `json:"realTimeSecondHalfEnd,omitempty"`

	// Видео-калибровка: секунды от начала записи.
	FirstHalfVideoStart  *int `json:"firstHalfVideoStart,omitempty"`
	SecondHalfVideoStart *int `json:"secondHalfVideoStart,omitempty"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
