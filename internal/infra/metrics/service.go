package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
)

const namespace = "docsproxy"

// Collectors for calls made to the remote document store
type Collectors struct {
	StoreCalls    *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
}

func NewCollectors() *Collectors {
	return &Collectors{
		StoreCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "store_calls_total", Help: "Number of calls to the document store by operation and outcome."},
			[]string{"operation", "outcome"},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "store_call_duration_seconds", Help: "Latency of calls to the document store by operation.", Buckets: prometheus.DefBuckets},
			[]string{"operation"},
		),
	}
}

func (c *Collectors) Register(reg prometheus.Registerer) {
	reg.MustRegister(c.StoreCalls)
	reg.MustRegister(c.StoreDuration)
}

type instrumentedService struct {
	underlying document.Service
	collectors *Collectors
}

// NewInstrumentedService wraps a document.Service, recording every call in the given collectors
func NewInstrumentedService(underlying document.Service, collectors *Collectors) document.Service {
	return &instrumentedService{
		underlying: underlying,
		collectors: collectors,
	}
}

func (s *instrumentedService) Create(ctx context.Context, doc document.Document) (*document.WriteResult, error) {
	defer s.observe("create", time.Now())
	result, err := s.underlying.Create(ctx, doc)
	s.count("create", err)
	return result, err
}

func (s *instrumentedService) List(ctx context.Context) ([]document.Document, error) {
	defer s.observe("list", time.Now())
	result, err := s.underlying.List(ctx)
	s.count("list", err)
	return result, err
}

func (s *instrumentedService) Put(ctx context.Context, id document.Id, rev *document.Rev, doc document.Document) (*document.WriteResult, error) {
	defer s.observe("put", time.Now())
	result, err := s.underlying.Put(ctx, id, rev, doc)
	s.count("put", err)
	return result, err
}

func (s *instrumentedService) Delete(ctx context.Context, id document.Id, rev *document.Rev) (*document.WriteResult, error) {
	defer s.observe("delete", time.Now())
	result, err := s.underlying.Delete(ctx, id, rev)
	s.count("delete", err)
	return result, err
}

func (s *instrumentedService) observe(operation string, start time.Time) {
	s.collectors.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (s *instrumentedService) count(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.collectors.StoreCalls.WithLabelValues(operation, outcome).Inc()
}
