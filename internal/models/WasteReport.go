package models

import (
	"gorm.io/gorm"
)

type WasteReport struct {
	gorm.Model
	WasteTitle    string `json:"wasteTitle"`
	Date          string `json:"date"`
	WasteType     string `json:"wasteType"`
	WasteWeight   int    `json:"wasteWeight"`
	WasteLocation string `json:"wasteLocation"`
	Description   string `json:"description"`
	Reword        int    `json:"reword"`
	CustomerName  string `json:"customerName"`
	WasteImage    []byte `json:"wasteImage"`
}
