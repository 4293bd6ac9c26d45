// Package obs holds process metrics.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GuardDenials counts terminal guard decisions by guard name and reason.
var GuardDenials = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "givehub",
		Subsystem: "guard",
		Name:      "denials_total",
		Help:      "Requests terminated by an admission guard.",
	},
	[]string{"guard", "reason"},
)

// BillingProviderErrors counts failed outbound billing-provider calls that
// fell back to cached state.
var BillingProviderErrors = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "givehub",
		Subsystem: "billing",
		Name:      "provider_errors_total",
		Help:      "Billing provider calls that failed and fell back to cached state.",
	},
)

// RecordDenial increments the denial counter for a guard.
func RecordDenial(guard, reason string) {
	GuardDenials.WithLabelValues(guard, reason).Inc()
}
