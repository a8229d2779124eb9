package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CallbacksTotal counts gateway deliveries by source and by what was answered.
	CallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kopi",
			Subsystem: "fiuu",
			Name:      "callbacks_total",
			Help:      "Gateway callback deliveries per source and result",
		},
		[]string{"source", "result"},
	)

	CallbackDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kopi",
			Subsystem: "fiuu",
			Name:      "callback_duration_seconds",
			Help:      "Time spent handling a gateway callback delivery",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05, 0.1, 0.25,
				0.5, 1, 2.5, 5,
			},
		},
		[]string{"source"},
	)

	ReconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kopi",
			Subsystem: "orders",
			Name:      "reconcile_total",
			Help:      "Order reconciliation attempts per source, outcome and result",
		},
		[]string{"source", "outcome", "result"},
	)

	RequeryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kopi",
			Subsystem: "fiuu",
			Name:      "requery_total",
			Help:      "Gateway status requery calls per result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(CallbacksTotal, CallbackDuration, ReconcileTotal, RequeryTotal)
}

func IncCallback(source, result string) {
	CallbacksTotal.WithLabelValues(source, result).Inc()
}

func ObserveCallback(source string, seconds float64) {
	CallbackDuration.WithLabelValues(source).Observe(seconds)
}

func IncReconcile(source, outcome, result string) {
	ReconcileTotal.WithLabelValues(source, outcome, result).Inc()
}

func IncRequery(result string) {
	RequeryTotal.WithLabelValues(result).Inc()
}

// Handler exposes the default registry on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
