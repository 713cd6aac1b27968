// internal/models/collectionschedule.go
package models

import (
	"gorm.io/gorm"
)

type CollectionSchedule struct {
	gorm.Model
	DriverName     string `json:"driverName"`
	WasteType      string `json:"wasteType"`
	CollectionDate string `json:"collectionDate"`
	Location       string `json:"location"`
	TruckImage     []byte `json:"truckImage"`
}
