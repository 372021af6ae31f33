// Package metrics exposes Prometheus metrics for the split service.
package metrics

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every collector the service records to.
type Metrics struct {
	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	settlements   *prometheus.CounterVec
	extractions   *prometheus.CounterVec
	sessionsSwept prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "receiptsplit",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and Connect status code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "receiptsplit",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "receiptsplit",
			Name:      "settlements_total",
			Help:      "Settlement computations by result.",
		}, []string{"result"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "receiptsplit",
			Name:      "receipt_extractions_total",
			Help:      "Receipt images processed by outcome.",
		}, []string{"outcome"}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "receiptsplit",
			Name:      "sessions_expired_total",
			Help:      "Sessions deleted after their TTL elapsed.",
		}),
	}
	reg.MustRegister(m.rpcRequests, m.rpcDuration, m.settlements, m.extractions, m.sessionsSwept)
	return m
}

// Interceptor records call counts and latency for every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// SettlementComputed counts a successful settlement.
func (m *Metrics) SettlementComputed() {
	m.settlements.WithLabelValues("ok").Inc()
}

// SettlementRejected counts a settlement refused by validation.
func (m *Metrics) SettlementRejected(err error) {
	result := "rejected"
	if errors.Is(err, context.Canceled) {
		result = "cancelled"
	}
	m.settlements.WithLabelValues(result).Inc()
}

// ExtractionsCompleted counts a batch of extraction outcomes.
func (m *Metrics) ExtractionsCompleted(succeeded, failed int) {
	m.extractions.WithLabelValues("ok").Add(float64(succeeded))
	m.extractions.WithLabelValues("failed").Add(float64(failed))
}

// SessionsExpired counts sessions removed by the cleanup sweeper.
func (m *Metrics) SessionsExpired(n int64) {
	m.sessionsSwept.Add(float64(n))
}
