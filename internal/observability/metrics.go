package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики жизненного цикла сообщений и вспомогательных подсистем.
// Регистрируются в дефолтном реестре при инициализации пакета.
var (
	ReportsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "reports_accepted_total",
		Help:      "Accepted incident reports by incident type.",
	}, []string{"incident_type"})

	ReportsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "reports_rejected_total",
		Help:      "Rejected incident reports by reason.",
	}, []string{"reason"})

	ReportsThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "reports_throttled_total",
		Help:      "Reports rejected by the reporter cooldown.",
	})

	ClustersConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "clusters_confirmed_total",
		Help:      "Incident clusters promoted to confirmed.",
	})

	GeocodeCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "geocode_cache_total",
		Help:      "Geocoding cache lookups by result.",
	}, []string{"result"})

	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "geocode_requests_total",
		Help:      "Nominatim API requests by outcome.",
	}, []string{"outcome"})

	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bridgeaid",
		Name:      "webhook_deliveries_total",
		Help:      "Confirmation webhook delivery attempts by outcome.",
	}, []string{"outcome"})
)
