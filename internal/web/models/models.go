package models

// AddRuleRequest is the JSON body of POST /rules/create
type AddRuleRequest struct {
	DeviceID    string  `json:"deviceId" binding:"required"`
	DeviceName  string  `json:"deviceName" binding:"required"`
	ImageURL    *string `json:"imageUrl"`
	UserID      string  `json:"userId" binding:"required"`
	UserName    string  `json:"userName" binding:"required"`
	EmailStatus string  `json:"emailStatus" binding:"required"`
	DateCreated string  `json:"dateCreated"`
	TimeCreated string  `json:"timeCreated"`
	DateUpdated string  `json:"dateUpdated"`
	TimeUpdated string  `json:"timeUpdated"`
}
