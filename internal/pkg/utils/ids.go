package utils

import (
	"regexp"
	"strconv"
)

var wayIDPattern = regexp.MustCompile(`\d+`)

// ParseWayIDs извлекает идентификаторы участков из произвольного текста
// ("12,13", "[12 13]", "12;13"). Порядок сохраняется, дубликаты удаляются.
func ParseWayIDs(text string) []int64 {
	matches := wayIDPattern.FindAllString(text, -1)
	ids := make([]int64, 0, len(matches))
	seen := make(map[int64]struct{}, len(matches))

	for _, m := range matches {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil || id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
