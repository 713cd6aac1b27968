package models

// Detection is the payload posted by the frontend object detector.
// It is logged only, never stored.
type Detection struct {
	ObjectType string  `json:"objectType"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}
