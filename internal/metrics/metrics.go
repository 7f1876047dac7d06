package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendstat",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lendstat",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~0.5s
		},
		[]string{"method", "path"},
	)

	dashboardUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendstat",
			Subsystem: "dashboard",
			Name:      "updates_total",
			Help:      "Dashboard update attempts by result (applied or kept).",
		},
		[]string{"result"},
	)

	unresolvedInvestments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lendstat",
			Subsystem: "dashboard",
			Name:      "unresolved_investments_total",
			Help:      "Investments skipped because their principal token is not in the registry.",
		},
	)

	trackedSymbols = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lendstat",
			Subsystem: "dashboard",
			Name:      "symbols",
			Help:      "Number of token symbols in the current aggregation.",
		},
	)

	panelRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "lendstat",
			Subsystem: "dashboard",
			Name:      "panel_rows",
			Help:      "Rows shown in each panel, sentinel and fallback included.",
		},
		[]string{"panel"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		dashboardUpdates,
		unresolvedInvestments,
		trackedSymbols,
		panelRows,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Recorder records dashboard updates. It implements investment.Observer.
type Recorder struct{}

// ObserveUpdate implements investment.Observer.
func (Recorder) ObserveUpdate(d investment.Dashboard, applied bool) {
	if !applied {
		dashboardUpdates.WithLabelValues("kept").Inc()
		return
	}
	dashboardUpdates.WithLabelValues("applied").Inc()
	unresolvedInvestments.Add(float64(d.SkippedInvestments))
	trackedSymbols.Set(float64(d.TokenBalances.Len()))
	panelRows.WithLabelValues(string(domain.FieldLended)).Set(float64(len(d.TotalLended.Entries)))
	panelRows.WithLabelValues(string(domain.FieldEarned)).Set(float64(len(d.TotalEarned.Entries)))
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// canonicalPath keeps label cardinality bounded: only known API routes are reported verbatim.
func canonicalPath(raw string) string {
	switch raw {
	case "/api/v1/dashboard", "/api/v1/dashboard/compute":
		return raw
	default:
		return "other"
	}
}
