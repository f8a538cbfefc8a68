package routing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SystemBuilders/HouseRev/internal/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/hlog"
)

const namespace = "houserev"

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics registers the request metrics and the entity gauges on reg.
// The gauges read stats on every scrape.
func newMetrics(reg prometheus.Registerer, stats func() service.Stats) *metrics {
	factory := promauto.With(reg)

	m := &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	gauges := map[string]func(service.Stats) int{
		"properties": func(s service.Stats) int { return s.Properties },
		"reviews":    func(s service.Stats) int { return s.Reviews },
		"comments":   func(s service.Stats) int { return s.Comments },
		"favorites":  func(s service.Stats) int { return s.Favorites },
	}
	for name, pick := range gauges {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      "Number of " + name + " currently stored.",
		}, func() float64 {
			return float64(pick(stats()))
		})
	}
	return m
}

// observe records one served request. It is the access log callback, so
// it both logs and counts.
func (m *metrics) observe(r *http.Request, status, size int, duration time.Duration) {
	route := routeTemplate(r)
	m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, r.Method).Observe(duration.Seconds())

	hlog.FromRequest(r).
		Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

// routeTemplate keeps label cardinality bounded by using the matched
// template instead of the raw path.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}
