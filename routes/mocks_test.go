package routes_test

import (
	"sort"

	"github.com/navya24shree/Campus-Event-Management-System/models"
)

// In-memory doubles for the repository interfaces. The mock user repo keeps
// plain-text passwords; bcrypt is covered by the utils tests.

type mockUserRepo struct {
	users map[string]models.User // keyed by email
}

func (m *mockUserRepo) Create(u *models.User) error {
	if _, ok := m.users[u.Email]; ok {
		return models.ErrDuplicateEmail
	}
	u.ID = int64(len(m.users) + 1)
	m.users[u.Email] = *u
	return nil
}

func (m *mockUserRepo) ValidateCredentials(email, plain string) (models.User, error) {
	u, ok := m.users[email]
	if !ok || u.Password != plain {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}

type mockEventRepo struct {
	items  map[int64]models.Event
	nextID int64
	regs   *mockRegRepo
	fb     *mockFeedbackRepo
}

func (m *mockEventRepo) GetAll(status string) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range m.items {
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockEventRepo) GetByID(id int64) (models.Event, error) {
	e, ok := m.items[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}
	return e, nil
}

func (m *mockEventRepo) Create(e *models.Event) error {
	m.nextID++
	e.ID = m.nextID
	if e.Status == "" {
		e.Status = models.StatusUpcoming
	}
	m.items[e.ID] = *e
	return nil
}

func (m *mockEventRepo) Update(e *models.Event) error {
	if _, ok := m.items[e.ID]; ok {
		m.items[e.ID] = *e
	}
	return nil
}

// Delete mimics the FK ON DELETE CASCADE the schema provides.
func (m *mockEventRepo) Delete(id int64) error {
	delete(m.items, id)
	if m.regs != nil {
		kept := m.regs.rows[:0]
		for _, r := range m.regs.rows {
			if r.EventID != id {
				kept = append(kept, r)
			}
		}
		m.regs.rows = kept
	}
	if m.fb != nil {
		kept := m.fb.rows[:0]
		for _, f := range m.fb.rows {
			if f.EventID != id {
				kept = append(kept, f)
			}
		}
		m.fb.rows = kept
	}
	return nil
}

type mockRegRepo struct {
	rows   []models.Registration
	nextID int64
	events *mockEventRepo
}

func (m *mockRegRepo) Register(reg *models.Registration) error {
	for _, r := range m.rows {
		if r.EventID == reg.EventID && r.Email == reg.Email {
			return models.ErrDuplicateRegistration
		}
	}
	m.nextID++
	reg.ID = m.nextID
	m.rows = append(m.rows, *reg)
	return nil
}

func (m *mockRegRepo) CheckRegistered(email string, eventIDs []int64) ([]int64, error) {
	out := []int64{}
	for _, id := range eventIDs {
		for _, r := range m.rows {
			if r.EventID == id && r.Email == email {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}

// joined returns rows newest-first with parent event columns filled in,
// like the SQL INNER JOIN ... ORDER BY registered_at DESC.
func (m *mockRegRepo) joined(filter func(models.Registration) bool) []models.Registration {
	out := []models.Registration{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		r := m.rows[i]
		if !filter(r) {
			continue
		}
		if e, ok := m.events.items[r.EventID]; ok {
			r.EventName = e.Name
			r.EventDate = e.Date
			r.EventTime = e.Time
			r.EventVenue = e.Venue
			out = append(out, r)
		}
	}
	return out
}

func (m *mockRegRepo) ListByEvent(eventID int64) ([]models.Registration, error) {
	return m.joined(func(r models.Registration) bool { return r.EventID == eventID }), nil
}

func (m *mockRegRepo) ListAll() ([]models.Registration, error) {
	return m.joined(func(models.Registration) bool { return true }), nil
}

type mockFeedbackRepo struct {
	rows   []models.Feedback
	nextID int64
	events *mockEventRepo
}

func (m *mockFeedbackRepo) Submit(f *models.Feedback) error {
	m.nextID++
	f.ID = m.nextID
	m.rows = append(m.rows, *f)
	return nil
}

func (m *mockFeedbackRepo) ListByEvent(eventID int64) ([]models.Feedback, error) {
	out := []models.Feedback{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		f := m.rows[i]
		if f.EventID != eventID {
			continue
		}
		if e, ok := m.events.items[eventID]; ok {
			f.EventName = e.Name
		}
		out = append(out, f)
	}
	return out, nil
}
