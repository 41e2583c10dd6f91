package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the site
type Metrics struct {
	ContactSubmissions *prometheus.CounterVec
	ContactRejections  prometheus.Counter
	PageViews          prometheus.Counter
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ContactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "etherlite_contact_submissions_total",
			Help: "Contact requests accepted, by newsletter opt-in",
		}, []string{"subscribe"}),
		ContactRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "etherlite_contact_rejections_total",
			Help: "Contact requests rejected by field validation",
		}),
		PageViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "etherlite_page_views_total",
			Help: "Landing page renders",
		}),
	}
}

// IncrementContactSubmissions counts one accepted contact request
func (m *Metrics) IncrementContactSubmissions(subscribe bool) {
	m.ContactSubmissions.WithLabelValues(strconv.FormatBool(subscribe)).Inc()
}

// IncrementContactRejections counts one contact request that failed validation
func (m *Metrics) IncrementContactRejections() {
	m.ContactRejections.Inc()
}

// IncrementPageViews counts one landing page render
func (m *Metrics) IncrementPageViews() {
	m.PageViews.Inc()
}
