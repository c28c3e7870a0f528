package models

// Coordinates is a resolved latitude/longitude pair handed over by the
// location picker. The API never geocodes; it only stores what it is given.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressDetails is the full delivery-address record keyed by its display
// string in the key-value store (the "fullAddresses" entry).
type AddressDetails struct {
	Type         string      `json:"type"` // Home, Work or Other
	Address      string      `json:"address"`
	FlatNumber   string      `json:"flatNumber"`
	Landmark     string      `json:"landmark"`
	Instruction  string      `json:"instruction"`
	ContactName  string      `json:"contactName"`
	ContactPhone string      `json:"contactPhone"`
	Coordinates  Coordinates `json:"coordinates"`
	Timestamp    int64       `json:"timestamp"`
}
