package repository

import "github.com/spec-kit/healthcare-service/internal/domain"

// DoctorRepository persists doctors scoped to their creator.
type DoctorRepository = OwnedRepository[domain.Doctor, domain.DoctorPatch]

var doctorTable = OwnedTable[domain.Doctor, domain.DoctorPatch]{
	Name:    "doctors",
	Columns: []string{"name", "specialization", "contact", "email"},
	Values: func(d *domain.Doctor) []any {
		return []any{d.Name, d.Specialization, d.Contact, d.Email}
	},
	Patch: func(d domain.DoctorPatch) []any {
		return []any{d.Name, d.Specialization, d.Contact, d.Email}
	},
	Scan: func(row rowScanner) (*domain.Doctor, error) {
		var d domain.Doctor
		if err := row.Scan(
			&d.ID,
			&d.Name,
			&d.Specialization,
			&d.Contact,
			&d.Email,
			&d.OwnerID,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		return &d, nil
	},
}

// NewDoctorRepository returns a Postgres-backed implementation.
func NewDoctorRepository(db DBTX) DoctorRepository {
	return NewOwnedRepository(db, doctorTable)
}
