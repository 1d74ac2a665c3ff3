// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// IntakeTransitions counts committed order-intake transitions by the
	// status the order moved into.
	IntakeTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wbcashback_intake_transitions_total",
		Help: "Committed intake state transitions by target status.",
	}, []string{"status"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wbcashback_orders_created_total",
		Help: "Orders created via the web API.",
	})

	PayoutsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wbcashback_payouts_approved_total",
		Help: "Orders paid out by operator review.",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wbcashback_notifications_sent_total",
		Help: "Outbound chat notifications delivered.",
	})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wbcashback_notifications_failed_total",
		Help: "Outbound chat notifications dropped after failure.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
