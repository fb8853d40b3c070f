package models

import "errors"

// Roles embedded in the session token.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Event lifecycle flag. Set by admin edits only, never derived from the date.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

var (
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEventNotFound         = errors.New("event not found")
	ErrDuplicateRegistration = errors.New("already registered for this event")
)

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Event struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	ClubName            string `json:"club_name"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
	ImageURL            string `json:"image_url"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Venue               string `json:"venue"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at,omitempty"`
}

// Registration carries joined parent-event columns when produced by the
// admin listings; they stay empty elsewhere.
type Registration struct {
	ID           int64  `json:"id"`
	EventID      int64  `json:"event_id"`
	StudentName  string `json:"student_name"`
	Section      string `json:"section"`
	Sem          string `json:"sem"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at,omitempty"`

	EventName  string `json:"event_name,omitempty"`
	EventDate  string `json:"event_date,omitempty"`
	EventTime  string `json:"event_time,omitempty"`
	EventVenue string `json:"event_venue,omitempty"`
}

type Feedback struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Name        string `json:"name"`
	Section     string `json:"section"`
	Email       string `json:"email"`
	Rating      int    `json:"rating"`
	SubmittedAt string `json:"submitted_at,omitempty"`

	EventName string `json:"event_name,omitempty"`
}

type UserRepository interface {
	Create(u *User) error
	ValidateCredentials(email, plain string) (User, error)
}

type EventRepository interface {
	GetAll(status string) ([]Event, error)
	GetByID(id int64) (Event, error)
	Create(e *Event) error
	Update(e *Event) error
	Delete(id int64) error
}

type RegistrationRepository interface {
	Register(r *Registration) error
	CheckRegistered(email string, eventIDs []int64) ([]int64, error)
	ListByEvent(eventID int64) ([]Registration, error)
	ListAll() ([]Registration, error)
}

type FeedbackRepository interface {
	Submit(f *Feedback) error
	ListByEvent(eventID int64) ([]Feedback, error)
}
