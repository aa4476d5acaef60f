package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the workflow collectors.
type Metrics struct {
	replies *prometheus.CounterVec
	pages   prometheus.Histogram
}

// NewMetrics registers the workflow collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		replies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exampaper_model_replies_total",
				Help: "Model calls by outcome (ok, invalid_structure, parse_error, unavailable).",
			},
			[]string{"outcome"},
		),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "exampaper_rendered_pages",
			Help:    "Pages per rendered exam paper.",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
	}

	for _, c := range []prometheus.Collector{m.replies, m.pages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
