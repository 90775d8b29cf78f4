package utils

import "strings"

// ParseSlotList splits a comma-separated list of slot labels, trimming
// whitespace and dropping empty segments. Order is preserved and duplicates
// are kept as submitted.
func ParseSlotList(slotsCsv string) []string {
	segments := strings.Split(slotsCsv, ",")
	slots := make([]string, 0, len(segments))
	for _, segment := range segments {
		slot := strings.TrimSpace(segment)
		if slot == "" {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
