package alor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alor_requests_total",
		Help: "Количество запросов к API по методам и статусам ответа",
	},
		[]string{"method", "status"},
	)
	ordersMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alor_orders_total",
		Help: "Количество операций с заявками и их результат",
	},
		[]string{"type", "side", "action", "result"},
	)
)
