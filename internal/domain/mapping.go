package domain

import "time"

// Mapping links a doctor to a patient. Mappings are shared and carry no owner.
type Mapping struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	CreatedAt time.Time
}

// MappingSummary is a mapping joined with the display names of both sides.
type MappingSummary struct {
	ID          int64
	PatientName string
	DoctorName  string
	CreatedAt   time.Time
}
