package watcher

import (
	"fmt"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	reg       prometheus.Registerer
	active    prometheus.Gauge
	published *prometheus.CounterVec
	dropped   prometheus.Counter
}

// newMetrics
// build the collectors and register them on reg when it is set. a failed
// registration unregisters whatever was already added.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "notefs_watch_active",
			Help: "Number of active file watchers",
		}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notefs_watch_notifications_total",
			Help: "Total number of notifications published to subscribers",
		}, []string{"op"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notefs_watch_notifications_dropped_total",
			Help: "Total number of notifications lost because a subscriber was absent or full",
		}),
	}

	if reg == nil {
		return m, nil
	}
	m.reg = reg

	var done []prometheus.Collector
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			for _, d := range done {
				reg.Unregister(d)
			}
			return nil, fmt.Errorf("register watch metrics: %w", err)
		}
		done = append(done, c)
	}

	return m, nil
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.active, m.published, m.dropped}
}

// unregister frees the metric names so another registry can use reg.
func (m *metrics) unregister() {
	if m.reg == nil {
		return
	}
	for _, c := range m.collectors() {
		m.reg.Unregister(c)
	}
}

func (m *metrics) publish(op model.Op) {
	m.published.WithLabelValues(op.String()).Inc()
}
