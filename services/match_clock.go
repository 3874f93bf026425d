package services

import "github.com/Dosada05/handball-club-system/models"

// FirstHalfBoundarySeconds - игровая секунда конца первого тайма, nil
// пока граница неизвестна (тогда гейтинг второго тайма пропускается).
// Живая калибровка (epoch ms) важнее видеосмещений.
func FirstHalfBoundarySeconds(match *models.Match) *int {
	// Живой режим: оба тайма начаты.
	if match.RealTimeFirstHalfStart != nil && match.RealTimeSecondHalfStart != nil {
		return nonNegativeSeconds(*match.RealTimeSecondHalfStart - *match.RealTimeFirstHalfStart)
	}

	// Живой режим: первый тайм начат и закончен, второй ещё не начат.
	if match.RealTimeFirstHalfStart != nil && match.RealTimeFirstHalfEnd != nil {
		return nonNegativeSeconds(*match.RealTimeFirstHalfEnd - *match.RealTimeFirstHalfStart)
	}

	// Видео-режим: известны смещения обоих таймов.
	if match.FirstHalfVideoStart != nil && match.SecondHalfVideoStart != nil {
		boundary := *match.SecondHalfVideoStart - *match.FirstHalfVideoStart
		if boundary < 0 {
			boundary = 0
		}
		return &boundary
	}

	return nil
}

// HasStarted - матч считается начатым при живой отметке старта первого
// тайма или известном видеосмещении первого тайма.
func HasStarted(match *models.Match) bool {
	return match.RealTimeFirstHalfStart != nil || match.FirstHalfVideoStart != nil
}

// HasSecondHalfStarted - симметрично для второго тайма.
func HasSecondHalfStarted(match *models.Match) bool {
	return match.RealTimeSecondHalfStart != nil || match.SecondHalfVideoStart != nil
}

func nonNegativeSeconds(millis int64) *int {
	seconds := int(millis / 1000)
	if seconds < 0 {
		seconds = 0
	}
	return &seconds
}
