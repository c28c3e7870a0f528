package storage

import "quickmart-api/models"

const (
	keySavedLocations = "savedLocations"
	keyRecentSearches = "recentSearches"
	keyFullAddresses  = "fullAddresses"

	// Both lists keep only the five most recent entries.
	maxRecents = 5
)

// SavedLocations returns the cached address display strings, newest first.
func (s *Store) SavedLocations() []string {
	var locations []string
	s.getJSON(keySavedLocations, &locations)
	return locations
}

// AddSavedLocation pushes a display string to the front of the saved list,
// dropping any exact-match duplicate and capping the list at five.
func (s *Store) AddSavedLocation(location string) []string {
	locations := prepend(s.SavedLocations(), location)
	s.setJSON(keySavedLocations, locations)
	return locations
}

// RecentSearches returns the cached search strings, newest first.
func (s *Store) RecentSearches() []string {
	var searches []string
	s.getJSON(keyRecentSearches, &searches)
	return searches
}

// AddRecentSearch records a free-text search, newest first, deduplicated,
// capped at five.
func (s *Store) AddRecentSearch(query string) []string {
	searches := prepend(s.RecentSearches(), query)
	s.setJSON(keyRecentSearches, searches)
	return searches
}

// FullAddresses returns the display-string → details map. Empty when the
// entry is missing or unreadable.
func (s *Store) FullAddresses() map[string]models.AddressDetails {
	details := make(map[string]models.AddressDetails)
	s.getJSON(keyFullAddresses, &details)
	return details
}

// AddressDetails looks up the full record behind a display string.
func (s *Store) AddressDetails(display string) (models.AddressDetails, bool) {
	details := s.FullAddresses()
	d, ok := details[display]
	return d, ok
}

// SaveAddressDetails stores the full record for a display string.
func (s *Store) SaveAddressDetails(display string, d models.AddressDetails) {
	details := s.FullAddresses()
	details[display] = d
	s.setJSON(keyFullAddresses, details)
}

func prepend(list []string, value string) []string {
	out := []string{value}
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) > maxRecents {
		out = out[:maxRecents]
	}
	return out
}
