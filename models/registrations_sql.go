package models

import (
	"database/sql"
	"strings"
)

type sqlRegistrationRepo struct{ db *sql.DB }

func NewSQLRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepo{db}
}

// Register is a single conditional insert: UNIQUE (event_id, email) rejects
// the second writer, so concurrent duplicates cannot both land.
func (r *sqlRegistrationRepo) Register(reg *Registration) error {
	res, err := r.db.Exec(
		`INSERT INTO registrations(event_id, student_name, section, sem, email) VALUES (?,?,?,?,?)`,
		reg.EventID, reg.StudentName, reg.Section, reg.Sem, reg.Email)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRegistration
		}
		return err
	}
	reg.ID, err = res.LastInsertId()
	return err
}

// CheckRegistered reports which of eventIDs the given email holds a seat for.
func (r *sqlRegistrationRepo) CheckRegistered(email string, eventIDs []int64) ([]int64, error) {
	if len(eventIDs) == 0 {
		return []int64{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(eventIDs)), ",")
	args := make([]any, 0, len(eventIDs)+1)
	args = append(args, email)
	for _, id := range eventIDs {
		args = append(args, id)
	}

	rows, err := r.db.Query(
		`SELECT event_id FROM registrations WHERE email = ? AND event_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

const registrationJoin = `
	SELECT r.id, r.student_name, r.section, r.sem, r.email, r.registered_at,
	       e.id, e.name, e.date, e.time, e.venue
	FROM registrations r
	INNER JOIN events e ON r.event_id = e.id`

func (r *sqlRegistrationRepo) listJoined(query string, args ...any) ([]Registration, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Registration{}
	for rows.Next() {
		var reg Registration
		if err := rows.Scan(&reg.ID, &reg.StudentName, &reg.Section, &reg.Sem, &reg.Email,
			&reg.RegisteredAt, &reg.EventID, &reg.EventName, &reg.EventDate, &reg.EventTime,
			&reg.EventVenue); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *sqlRegistrationRepo) ListByEvent(eventID int64) ([]Registration, error) {
	return r.listJoined(registrationJoin+` WHERE r.event_id = ? ORDER BY r.registered_at DESC`, eventID)
}

func (r *sqlRegistrationRepo) ListAll() ([]Registration, error) {
	return r.listJoined(registrationJoin + ` ORDER BY r.registered_at DESC`)
}
