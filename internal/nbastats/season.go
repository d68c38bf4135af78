package nbastats

import (
	"fmt"
	"strconv"
	"time"
)

// FormatSeason renders a season identifier from its start year, e.g.
// 2024 -> "2024-25".
func FormatSeason(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// ValidSeason reports whether s is a well-formed season identifier:
// a four-digit start year, a dash, and the two-digit following year.
func ValidSeason(s string) bool {
	if len(s) != 7 || s[4] != '-' {
		return false
	}
	start, err := strconv.Atoi(s[:4])
	if err != nil {
		return false
	}
	suffix, err := strconv.Atoi(s[5:])
	if err != nil {
		return false
	}
	return suffix == (start+1)%100
}

// CurrentSeason returns the season in progress at t, or the most
// recently completed one during the off-season. New seasons tip off in
// October.
func CurrentSeason(t time.Time) string {
	return FormatSeason(seasonStartYear(t))
}

// LastSeasons returns the n seasons ending with the current one,
// oldest first.
func LastSeasons(n int, t time.Time) []string {
	end := seasonStartYear(t)
	seasons := make([]string, 0, n)
	for y := end - n + 1; y <= end; y++ {
		seasons = append(seasons, FormatSeason(y))
	}
	return seasons
}

func seasonStartYear(t time.Time) int {
	if t.Month() >= time.October {
		return t.Year()
	}
	return t.Year() - 1
}
