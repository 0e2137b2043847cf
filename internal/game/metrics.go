package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts pipeline outcomes per fallback tier.
type Metrics struct {
	served     *prometheus.CounterVec
	demoted    *prometheus.CounterVec
	duplicates prometheus.Counter
	safety     prometheus.Counter
}

// NewMetrics registers the pipeline collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so parallel suites do not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		served: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aventura_content_served_total",
			Help: "Content served, labeled by the fallback tier that produced it.",
		}, []string{"tier", "kind"}),
		demoted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aventura_tier_demotions_total",
			Help: "Candidates discarded per tier, labeled by reason.",
		}, []string{"tier", "reason"}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "aventura_duplicates_discarded_total",
			Help: "Candidates discarded because they collided with session content.",
		}),
		safety: factory.NewCounter(prometheus.CounterOpts{
			Name: "aventura_safety_rejections_total",
			Help: "Remote responses rejected by content safety rules.",
		}),
	}
}

func (m *Metrics) recordServed(tier, kind string) {
	if m == nil {
		return
	}
	m.served.WithLabelValues(tier, kind).Inc()
}

func (m *Metrics) recordDemotion(tier, reason string) {
	if m == nil {
		return
	}
	m.demoted.WithLabelValues(tier, reason).Inc()
	switch reason {
	case "duplicate":
		m.duplicates.Inc()
	case "safety":
		m.safety.Inc()
	}
}
