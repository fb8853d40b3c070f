package models

import "database/sql"

type sqlFeedbackRepo struct{ db *sql.DB }

func NewSQLFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &sqlFeedbackRepo{db}
}

// Submit inserts unconditionally: feedback has no uniqueness rule, the same
// email may rate an event more than once.
func (r *sqlFeedbackRepo) Submit(f *Feedback) error {
	res, err := r.db.Exec(
		`INSERT INTO feedback(event_id, name, section, email, rating) VALUES (?,?,?,?,?)`,
		f.EventID, f.Name, f.Section, f.Email, f.Rating)
	if err != nil {
		return err
	}
	f.ID, err = res.LastInsertId()
	return err
}

func (r *sqlFeedbackRepo) ListByEvent(eventID int64) ([]Feedback, error) {
	rows, err := r.db.Query(`
		SELECT f.id, f.name, f.section, f.email, f.rating, f.submitted_at, e.id, e.name
		FROM feedback f
		INNER JOIN events e ON f.event_id = e.id
		WHERE f.event_id = ?
		ORDER BY f.submitted_at DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Feedback{}
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Section, &f.Email, &f.Rating,
			&f.SubmittedAt, &f.EventID, &f.EventName); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
