package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware holds the prometheus metrics for the HTTP surface.
type PrometheusMiddleware struct {
	requestCount    *prometheus.CounterVec
	uploadBytes     prometheus.Counter
	programsCreated prometheus.Counter
	programsUpdated prometheus.Counter
}

// NewPrometheusMiddleware creates a PrometheusMiddleware and registers its
// collectors on reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "program_upload_bytes_total",
			Help: "Total bytes accepted at program upload intake.",
		}),
		programsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "program_entries_created_total",
			Help: "Program uploads that created a new catalog entry.",
		}),
		programsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "program_entries_updated_total",
			Help: "Program uploads that replaced an existing catalog entry.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.uploadBytes, m.programsCreated, m.programsUpdated} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveUpload records the outcome of an accepted upload.
func (m *PrometheusMiddleware) ObserveUpload(sizeBytes int64, created bool) {
	m.uploadBytes.Add(float64(sizeBytes))
	if created {
		m.programsCreated.Inc()
	} else {
		m.programsUpdated.Inc()
	}
}

// Handler returns the fiber middleware handler counting requests.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Exclude /metrics from being counted
		if c.Path() == "/metrics" {
			return c.Next()
		}

		err := c.Next()

		// Use the route pattern (e.g. /api/admin/programs/:id) so ids don't
		// explode label cardinality; fall back to the raw path on 404.
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(status),
		).Inc()

		return err
	}
}
