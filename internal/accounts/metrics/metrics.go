package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the accounts module. A nil *Metrics is
// valid and records nothing, which keeps tests free of global registration.
type Metrics struct {
	Signups        prometheus.Counter
	Signins        prometheus.Counter
	SigninFailures prometheus.Counter
	ProfileUpdates prometheus.Counter
}

// New creates a new Metrics instance with all accounts module metrics
// registered on the default registry.
func New() *Metrics {
	return &Metrics{
		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eproc_signups_total",
			Help: "Total number of accounts registered",
		}),
		Signins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eproc_signins_total",
			Help: "Total number of successful logins",
		}),
		SigninFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eproc_signin_failures_total",
			Help: "Total number of rejected login attempts",
		}),
		ProfileUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "eproc_profile_updates_total",
			Help: "Total number of profile updates",
		}),
	}
}

// IncrementSignups records a successful registration.
func (m *Metrics) IncrementSignups() {
	if m != nil {
		m.Signups.Inc()
	}
}

// IncrementSignins records a successful login.
func (m *Metrics) IncrementSignins() {
	if m != nil {
		m.Signins.Inc()
	}
}

// IncrementSigninFailures records a login rejected for bad credentials.
func (m *Metrics) IncrementSigninFailures() {
	if m != nil {
		m.SigninFailures.Inc()
	}
}

// IncrementProfileUpdates records a profile update.
func (m *Metrics) IncrementProfileUpdates() {
	if m != nil {
		m.ProfileUpdates.Inc()
	}
}
