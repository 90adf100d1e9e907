package models

// User represents a user entry offered in the rule form
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
}

// Device represents a device entry offered in the rule form
type Device struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// EmailStatus values accepted by the rules API
const (
	EmailStatusYes = "Yes"
	EmailStatusNo  = "No"
)

// Rule represents a rule record as returned by the rules API. The
// userName/deviceName fields are snapshots taken at creation time, not a
// live join against the user/device collections.
type Rule struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	DeviceID    string `json:"deviceId"`
	DeviceName  string `json:"deviceName"`
	ImageURL    string `json:"imageUrl,omitempty"`
	EmailStatus string `json:"emailStatus"`
	DateCreated string `json:"dateCreated"`
	TimeCreated string `json:"timeCreated,omitempty"`
	DateUpdated string `json:"dateUpdated"`
	TimeUpdated string `json:"timeUpdated,omitempty"`
}

// Expand with more models as needed
