package models

import "gorm.io/gorm"

type PickupRequest struct {
	gorm.Model
	Name            string `json:"name"`
	Address         string `json:"address"`
	Mobile          int64  `json:"mobile"`
	WasteType       string `json:"wasteType"`
	Quantity        int    `json:"quantity"`
	FrequencyPickup string `json:"frequencyPickup"`
}
