package repository

import "github.com/spec-kit/healthcare-service/internal/domain"

// PatientRepository persists patients scoped to their creator.
type PatientRepository = OwnedRepository[domain.Patient, domain.PatientPatch]

var patientTable = OwnedTable[domain.Patient, domain.PatientPatch]{
	Name:    "patients",
	Columns: []string{"name", "age", "gender", "contact", "address"},
	Values: func(p *domain.Patient) []any {
		return []any{p.Name, p.Age, p.Gender, p.Contact, p.Address}
	},
	Patch: func(p domain.PatientPatch) []any {
		return []any{p.Name, p.Age, p.Gender, p.Contact, p.Address}
	},
	Scan: func(row rowScanner) (*domain.Patient, error) {
		var p domain.Patient
		if err := row.Scan(
			&p.ID,
			&p.Name,
			&p.Age,
			&p.Gender,
			&p.Contact,
			&p.Address,
			&p.OwnerID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		return &p, nil
	},
}

// NewPatientRepository returns a Postgres-backed implementation.
func NewPatientRepository(db DBTX) PatientRepository {
	return NewOwnedRepository(db, patientTable)
}
