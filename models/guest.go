package models

type Guest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Nationality    string   `json:"nationality,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
	BookingHistory []string `json:"bookingHistory"`
}
