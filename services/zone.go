package services

import (
	"strings"

	"github.com/Dosada05/handball-club-system/models"
)

// ResolveZone выводит код зоны броска из дистанции и позиции. Клиент зону
// не задаёт, она пересчитывается при каждом изменении distance/position.
// Без дистанции зоны нет; семиметровый без позиции даёт "7m"; остальные
// дистанции без позиции зоны не дают; иначе "6m-LW".
func ResolveZone(distance, position *string) *string {
	if distance == nil || *distance == "" {
		return nil
	}

	lowered := strings.ToLower(*distance)

	if position == nil || *position == "" {
		if strings.EqualFold(*distance, models.DistanceSevenMeters) {
			return &lowered
		}
		return nil
	}

	zone := lowered + "-" + *position
	return &zone
}
