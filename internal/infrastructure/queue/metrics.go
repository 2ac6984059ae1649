package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "santad_notifications_total",
		Help: "Assignment email dispatch outcomes",
	},
	[]string{"status"},
)

func recordNotification(status string) {
	notificationsTotal.WithLabelValues(status).Inc()
}
