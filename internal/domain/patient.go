package domain

import "time"

// Patient is a record owned by the user that created it.
type Patient struct {
	ID        int64
	Name      string
	Age       int
	Gender    *string
	Contact   *string
	Address   *string
	OwnerID   int64
	CreatedAt time.Time
}

// PatientPatch carries a partial update; nil fields keep their stored value.
type PatientPatch struct {
	Name    *string
	Age     *int
	Gender  *string
	Contact *string
	Address *string
}
