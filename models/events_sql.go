package models

import (
	"database/sql"
	"errors"
)

type sqlEventRepo struct{ db *sql.DB }

func NewSQLEventRepository(db *sql.DB) EventRepository { return &sqlEventRepo{db} }

const eventColumns = `id, name, club_name, description, detailed_description, image_url, date, time, venue, status, created_at`

func scanEvent(row interface{ Scan(...any) error }, e *Event) error {
	return row.Scan(&e.ID, &e.Name, &e.ClubName, &e.Description, &e.DetailedDescription,
		&e.ImageURL, &e.Date, &e.Time, &e.Venue, &e.Status, &e.CreatedAt)
}

// GetAll returns events sorted by (date, time); an empty status means no filter.
func (r *sqlEventRepo) GetAll(status string) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY date ASC, time ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var e Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *sqlEventRepo) GetByID(id int64) (Event, error) {
	var e Event
	err := scanEvent(r.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id=?`, id), &e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		return Event{}, err
	}
	return e, nil
}

func (r *sqlEventRepo) Create(e *Event) error {
	if e.Status == "" {
		e.Status = StatusUpcoming
	}
	res, err := r.db.Exec(
		`INSERT INTO events(name, club_name, description, detailed_description, image_url, date, time, venue, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		e.Name, e.ClubName, e.Description, e.DetailedDescription, e.ImageURL, e.Date, e.Time, e.Venue, e.Status)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

// Update overwrites every mutable column including status; there is no
// partial-patch path.
func (r *sqlEventRepo) Update(e *Event) error {
	_, err := r.db.Exec(
		`UPDATE events SET name=?, club_name=?, description=?, detailed_description=?, image_url=?, date=?, time=?, venue=?, status=? WHERE id=?`,
		e.Name, e.ClubName, e.Description, e.DetailedDescription, e.ImageURL, e.Date, e.Time, e.Venue, e.Status, e.ID)
	return err
}

// Delete cascades to registrations and feedback via the FK constraints.
func (r *sqlEventRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM events WHERE id=?`, id)
	return err
}
