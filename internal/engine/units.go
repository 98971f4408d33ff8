package engine

import "github.com/tartampluch/go-datewheel/internal/config"

// Hours returns the hour column: 0..23.
func Hours() []NumberEntry {
	return numberEntries(config.HoursPerDay)
}

// Minutes returns the minute column: 0..59.
func Minutes() []NumberEntry {
	return numberEntries(config.MinutesPerHour)
}

func numberEntries(n int) []NumberEntry {
	out := make([]NumberEntry, n)
	for i := range out {
		out[i] = newNumberEntry(i)
	}
	return out
}
