package services

import (
	"sync"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/storage"
)

// --- Общие хелперы ---

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MatchLocker выдаёт мьютекс на матч. Чтение матча, проверки и запись
// события со счётом должны выполняться под одним замком, иначе
// параллельные голы теряют инкременты счёта.
type MatchLocker struct {
	locks sync.Map // matchID -> *sync.Mutex
}

func NewMatchLocker() *MatchLocker {
	return &MatchLocker{}
}

func (l *MatchLocker) Lock(matchID int) *sync.Mutex {
	actual, _ := l.locks.LoadOrStore(matchID, &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	return mu
}

// Forget выбрасывает замок удалённого матча, иначе карта растёт вечно.
// Звать только после удаления строки матча: опоздавшие к старому замку
// упрутся в not found в репозитории.
func (l *MatchLocker) Forget(matchID int) {
	l.locks.Delete(matchID)
}

// --- Хелперы для подстановки публичных URL из ключей хранилища ---

func populateClubLogoURL(club *models.Club, uploader storage.FileUploader) {
	if club != nil && club.LogoKey != nil && *club.LogoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*club.LogoKey); url != "" {
			club.LogoURL = &url
		}
	}
}

func populatePlayerPhotoURL(player *models.Player, uploader storage.FileUploader) {
	if player != nil && player.PhotoKey != nil && *player.PhotoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*player.PhotoKey); url != "" {
			player.PhotoURL = &url
		}
	}
}
