package repository

import (
	"context"
	"database/sql"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

// MappingRepository manages patient-doctor links. Links are not owner scoped.
type MappingRepository interface {
	Create(ctx context.Context, patientID, doctorID int64) (*domain.Mapping, error)
	ListSummaries(ctx context.Context) ([]domain.MappingSummary, error)
	ListDoctorsByPatient(ctx context.Context, patientID int64) ([]domain.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

type mappingRepository struct {
	db DBTX
}

// NewMappingRepository returns a Postgres-backed implementation.
func NewMappingRepository(db DBTX) MappingRepository {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) Create(ctx context.Context, patientID, doctorID int64) (*domain.Mapping, error) {
	const query = `
        INSERT INTO patient_doctor_mapping (patient_id, doctor_id)
        VALUES ($1, $2)
        RETURNING id, patient_id, doctor_id, created_at`

	var m domain.Mapping
	if err := r.db.QueryRowContext(ctx, query, patientID, doctorID).Scan(
		&m.ID,
		&m.PatientID,
		&m.DoctorID,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mappingRepository) ListSummaries(ctx context.Context) ([]domain.MappingSummary, error) {
	const query = `
        SELECT pdm.id, p.name, d.name, pdm.created_at
        FROM patient_doctor_mapping pdm
        JOIN patients p ON pdm.patient_id = p.id
        JOIN doctors d ON pdm.doctor_id = d.id
        ORDER BY pdm.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.MappingSummary, 0)
	for rows.Next() {
		var s domain.MappingSummary
		if err := rows.Scan(&s.ID, &s.PatientName, &s.DoctorName, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *mappingRepository) ListDoctorsByPatient(ctx context.Context, patientID int64) ([]domain.Doctor, error) {
	const query = `
        SELECT d.id, d.name, d.specialization, d.contact, d.email
        FROM patient_doctor_mapping pdm
        JOIN doctors d ON pdm.doctor_id = d.id
        WHERE pdm.patient_id = $1
        ORDER BY d.id`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Doctor, 0)
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Contact, &d.Email); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// Delete returns sql.ErrNoRows when the mapping does not exist.
func (r *mappingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM patient_doctor_mapping WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
