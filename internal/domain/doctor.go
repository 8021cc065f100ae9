package domain

import "time"

// Doctor is a record owned by the user that created it.
type Doctor struct {
	ID             int64
	Name           string
	Specialization string
	Contact        *string
	Email          *string
	OwnerID        int64
	CreatedAt      time.Time
}

// DoctorPatch carries a partial update; nil fields keep their stored value.
type DoctorPatch struct {
	Name           *string
	Specialization *string
	Contact        *string
	Email          *string
}
