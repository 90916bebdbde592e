package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CacheRefreshesTotal    *prometheus.CounterVec
	CacheDegradationsTotal *prometheus.CounterVec
	CheckerFailuresTotal   *prometheus.CounterVec
	VerificationsTotal     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheRefreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "labelproof_reference_cache_refreshes_total",
			Help: "Total number of reference table cache refreshes",
		}, []string{"table"}),
		CacheDegradationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "labelproof_reference_cache_degradations_total",
			Help: "Total number of cache reads served stale or empty after an upstream failure",
		}, []string{"table"}),
		CheckerFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "labelproof_checker_failures_total",
			Help: "Total number of domain checker failures isolated during aggregation",
		}, []string{"domain"}),
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "labelproof_verifications_total",
			Help: "Total number of completed label verifications by final verdict",
		}, []string{"verdict"}),
	}
}

func (m *Metrics) ObserveCacheRefresh(table string) {
	m.CacheRefreshesTotal.WithLabelValues(table).Inc()
}

func (m *Metrics) ObserveCacheDegradation(table string) {
	m.CacheDegradationsTotal.WithLabelValues(table).Inc()
}

func (m *Metrics) ObserveCheckerFailure(domain string) {
	m.CheckerFailuresTotal.WithLabelValues(domain).Inc()
}

func (m *Metrics) ObserveVerification(verdict string) {
	m.VerificationsTotal.WithLabelValues(verdict).Inc()
}
