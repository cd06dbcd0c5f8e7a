package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds prometheus.ObserverVec = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Login attempts by method and result.",
		},
		[]string{"method", "result"},
	)

	UsersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Accounts created through register or Google sign-in.",
		},
	)

	SitesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sites_created_total",
			Help: "Sites created by storage provider.",
		},
		[]string{"provider"},
	)

	SitesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sites_deleted_total",
			Help: "Sites deleted, including cascaded file cleanup.",
		},
	)

	FilesSavedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "files_saved_total",
			Help: "File upserts through the editor save path.",
		},
	)

	PublishesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publishes_total",
			Help: "Publish runs by provider and result.",
		},
		[]string{"provider", "result"},
	)

	PublishDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "publish_duration_seconds",
			Help:    "Simulated upload time of publish runs.",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		LoginsTotal,
		UsersRegisteredTotal,
		SitesCreatedTotal,
		SitesDeletedTotal,
		FilesSavedTotal,
		PublishesTotal,
		PublishDurationSeconds,
	)
}
