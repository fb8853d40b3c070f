package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_logins_total", Help: "Total successful logins"},
	)
	EventsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_events_created_total", Help: "Total events created"},
	)
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_registrations_total", Help: "Total successful event registrations"},
	)
	DuplicateRegistrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_duplicate_registrations_total", Help: "Total registrations rejected as duplicates"},
	)
	FeedbackSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_feedback_submitted_total", Help: "Total feedback submissions"},
	)
)

func Register() {
	prometheus.MustRegister(Logins, EventsCreated, Registrations, DuplicateRegistrations, FeedbackSubmitted)
}
