package domain

import "strings"

// Суффиксы, которыми операторы помечают дубли объектов в календаре.
var duplicateSuffixes = []string{"ДУБЛЬ", "ДУБЛ", "ДУБЛЕ", "ДУБ", "DUBL", "DOUBLE"}

// BaseAddress возвращает название объекта без суффикса дубля.
// "Кедровая 9 ДУБЛЬ" и "Кедровая 9" считаются одним объектом.
func BaseAddress(address string) string {
	clean := strings.TrimSpace(address)
	upper := strings.ToUpper(clean)
	for _, suffix := range duplicateSuffixes {
		if idx := strings.Index(upper, " "+suffix); idx >= 0 {
			return strings.TrimSpace(clean[:idx])
		}
		if strings.HasSuffix(upper, suffix) {
			return strings.TrimSpace(clean[:len(clean)-len(suffix)])
		}
	}
	return clean
}

// IsDuplicateAddress сообщает, помечен ли объект как дубль.
func IsDuplicateAddress(address string) bool {
	return BaseAddress(address) != strings.TrimSpace(address)
}
