package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Signup counter
	SignupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "account_signup_total",
			Help: "Total number of signup attempts",
		},
	)

	// Login counter
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "account_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Account operation counter
	AccountOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_operations_total",
			Help: "Total number of account operations",
		},
		[]string{"operation"}, // operation can be "profile", "update", "delete", etc.
	)

	// Favourite operation counter
	FavouriteOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_favourite_operations_total",
			Help: "Total number of favourite operations",
		},
		[]string{"operation"}, // operation can be "add", "remove", "list"
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	AccountErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_errors_total",
			Help: "Total number of account errors",
		},
		[]string{"type"}, // type can be "user_not_found", "invalid_password", "db_error" etc.
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// Registered accounts
	RegisteredAccountsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "account_registered_accounts",
			Help: "Number of registered accounts",
		},
	)

	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "account_info",
			Help: "Information about the account service",
		},
		[]string{"version"},
	)
)

func init() {
	// Register counters
	prometheus.MustRegister(SignupCounter)
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(AccountOperationCounter)
	prometheus.MustRegister(FavouriteOperationCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AccountErrorCounter)

	// Register histograms
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	// Register gauges
	prometheus.MustRegister(RegisteredAccountsGauge)
	prometheus.MustRegister(InfoGauge)

	// Set initial service info
	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Execute the request handler
			err := next(c)

			// Record request duration
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			// Record metrics
			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// RecordAccountError records an account error by type
func RecordAccountError(errorType string) {
	AccountErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordAccountOperation records an account operation by type
func RecordAccountOperation(operation string) {
	AccountOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordFavouriteOperation records a favourite operation by type
func RecordFavouriteOperation(operation string) {
	FavouriteOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// UpdateRegisteredAccounts updates the registered accounts gauge
func UpdateRegisteredAccounts(count int) {
	RegisteredAccountsGauge.Set(float64(count))
}
