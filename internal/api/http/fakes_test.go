package http

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

type memOwned[T any, P any] struct {
	mu      sync.Mutex
	next    int64
	rows    map[int64]T
	owners  map[int64]int64
	setMeta func(rec *T, id, owner int64, at time.Time)
	apply   func(rec *T, patch P)
}

func newMemOwned[T any, P any](setMeta func(*T, int64, int64, time.Time), apply func(*T, P)) *memOwned[T, P] {
	return &memOwned[T, P]{
		rows:    map[int64]T{},
		owners:  map[int64]int64{},
		setMeta: setMeta,
		apply:   apply,
	}
}

func (m *memOwned[T, P]) Create(_ context.Context, ownerID int64, rec *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	r := *rec
	m.setMeta(&r, m.next, ownerID, time.Now().UTC())
	m.rows[m.next] = r
	m.owners[m.next] = ownerID
	return &r, nil
}

func (m *memOwned[T, P]) ListByOwner(_ context.Context, ownerID int64) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.rows))
	for id, owner := range m.owners {
		if owner == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *memOwned[T, P]) GetOwned(_ context.Context, id, ownerID int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || m.owners[id] != ownerID {
		return nil, sql.ErrNoRows
	}
	return &r, nil
}

func (m *memOwned[T, P]) UpdateOwned(_ context.Context, id, ownerID int64, patch P) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || m.owners[id] != ownerID {
		return nil, sql.ErrNoRows
	}
	m.apply(&r, patch)
	m.rows[id] = r
	return &r, nil
}

func (m *memOwned[T, P]) DeleteOwned(_ context.Context, id, ownerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok || m.owners[id] != ownerID {
		return sql.ErrNoRows
	}
	delete(m.rows, id)
	delete(m.owners, id)
	return nil
}

func (m *memOwned[T, P]) lookup(id int64) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	return r, ok
}

func newMemPatients() *memOwned[domain.Patient, domain.PatientPatch] {
	return newMemOwned(
		func(p *domain.Patient, id, owner int64, at time.Time) {
			p.ID, p.OwnerID, p.CreatedAt = id, owner, at
		},
		func(p *domain.Patient, patch domain.PatientPatch) {
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Age != nil {
				p.Age = *patch.Age
			}
			if patch.Gender != nil {
				p.Gender = patch.Gender
			}
			if patch.Contact != nil {
				p.Contact = patch.Contact
			}
			if patch.Address != nil {
				p.Address = patch.Address
			}
		},
	)
}

func newMemDoctors() *memOwned[domain.Doctor, domain.DoctorPatch] {
	return newMemOwned(
		func(d *domain.Doctor, id, owner int64, at time.Time) {
			d.ID, d.OwnerID, d.CreatedAt = id, owner, at
		},
		func(d *domain.Doctor, patch domain.DoctorPatch) {
			if patch.Name != nil {
				d.Name = *patch.Name
			}
			if patch.Specialization != nil {
				d.Specialization = *patch.Specialization
			}
			if patch.Contact != nil {
				d.Contact = patch.Contact
			}
			if patch.Email != nil {
				d.Email = patch.Email
			}
		},
	)
}

type memMappings struct {
	mu       sync.Mutex
	next     int64
	rows     []domain.Mapping
	patients *memOwned[domain.Patient, domain.PatientPatch]
	doctors  *memOwned[domain.Doctor, domain.DoctorPatch]
}

func (m *memMappings) Create(_ context.Context, patientID, doctorID int64) (*domain.Mapping, error) {
	if _, ok := m.patients.lookup(patientID); !ok {
		return nil, &pgconn.PgError{Code: "23503", ConstraintName: "patient_doctor_mapping_patient_id_fkey"}
	}
	if _, ok := m.doctors.lookup(doctorID); !ok {
		return nil, &pgconn.PgError{Code: "23503", ConstraintName: "patient_doctor_mapping_doctor_id_fkey"}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	row := domain.Mapping{ID: m.next, PatientID: patientID, DoctorID: doctorID, CreatedAt: time.Now().UTC()}
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memMappings) ListSummaries(_ context.Context) ([]domain.MappingSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MappingSummary, 0, len(m.rows))
	for _, row := range m.rows {
		p, _ := m.patients.lookup(row.PatientID)
		d, _ := m.doctors.lookup(row.DoctorID)
		out = append(out, domain.MappingSummary{ID: row.ID, PatientName: p.Name, DoctorName: d.Name, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (m *memMappings) ListDoctorsByPatient(_ context.Context, patientID int64) ([]domain.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Doctor, 0)
	for _, row := range m.rows {
		if row.PatientID != patientID {
			continue
		}
		if d, ok := m.doctors.lookup(row.DoctorID); ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memMappings) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type memUsers struct {
	mu      sync.Mutex
	next    int64
	byEmail map[string]domain.User
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[user.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	m.next++
	user.ID = m.next
	user.CreatedAt = time.Now().UTC()
	m.byEmail[user.Email] = *user
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

type memCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *memCounter) IncrementWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *memCounter) Count(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key], nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
