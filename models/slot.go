package models

// Slot is an ephemeral candidate bookable interval on a specific date. It is
// never persisted; Start and End carry the textual time-of-day exactly as
// declared in the weekly template so clients see the owner's own encoding.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailabilityResult is what the availability resolver returns for one
// (spa, date) query. Message distinguishes "no schedule configured" from an
// explicit closure when Slots is empty.
type DayAvailabilityResult struct {
	Slots   []Slot `json:"available_slots"`
	Day     string `json:"day"`
	Message string `json:"message,omitempty"`
}
