// Package observe provides query observers for porkbun.WithQueryObserver.
//
// Observers only ever see the credential-free view of a request, so their
// output is safe to log or export.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	porkbun "github.com/Oxtaly/porkbun-wrapper"
)

// Logger returns an observer that logs every query at debug level.
func Logger(log *zap.Logger) porkbun.QueryObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return func(q porkbun.Query) {
		log.Debug("porkbun query",
			zap.String("endpoint", q.Endpoint),
			zap.String("url", q.URL),
			zap.Any("body", q.Body),
		)
	}
}

// Metrics counts queries per endpoint. It is safe for concurrent use.
type Metrics struct {
	queriesTotal *prometheus.CounterVec
}

// NewMetrics registers the query counter on reg. A nil reg uses
// prometheus.DefaultRegisterer.
//
// NewMetrics panics if porkbun_queries_total is already registered on reg,
// so call it once per registerer and share the returned Metrics. Pass a
// fresh prometheus.NewRegistry() when more than one Metrics is needed.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		queriesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "porkbun_queries_total",
				Help: "Total number of queries sent to the Porkbun API",
			},
			[]string{"endpoint"},
		),
	}
}

// Observe records q. Pass it to porkbun.WithQueryObserver.
func (m *Metrics) Observe(q porkbun.Query) {
	m.queriesTotal.WithLabelValues(q.Endpoint).Inc()
}

// Chain returns an observer calling each non-nil observer in order.
func Chain(observers ...porkbun.QueryObserver) porkbun.QueryObserver {
	var chain []porkbun.QueryObserver
	for _, o := range observers {
		if o != nil {
			chain = append(chain, o)
		}
	}
	return func(q porkbun.Query) {
		for _, o := range chain {
			o(q)
		}
	}
}
