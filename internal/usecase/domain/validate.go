package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// isValidDate requires the YYYY-MM-DD shape and a real calendar date, so
// "2024-02-30" is rejected.
func isValidDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func isValidTime(value string) bool {
	if !timePattern.MatchString(value) {
		return false
	}
	hour, _ := strconv.Atoi(value[:2])
	minute, _ := strconv.Atoi(value[3:])
	return hour < 24 && minute < 60
}

func isValidYear(year int) bool { return year >= 2000 && year <= 2100 }

func isValidMonth(month int) bool { return month >= 1 && month <= 12 }

// sanitizeMemberNames trims entries, drops empties and removes
// case-insensitive duplicates, keeping first occurrences in order.
func sanitizeMemberNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	sanitized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sanitized = append(sanitized, name)
	}
	return sanitized
}
