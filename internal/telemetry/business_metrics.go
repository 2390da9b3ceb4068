package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability
// of the order capture flow.
type BusinessMetrics struct {
	// Cart activity
	CartsCreated  prometheus.Counter
	CartItemsAdd  prometheus.Counter
	CartItemsEdit prometheus.Counter

	// Finalization funnel
	OrdersCreated  prometheus.Counter
	OrdersRejected *prometheus.CounterVec
	OrderValue     prometheus.Histogram
	OrderItemCount prometheus.Histogram

	// Messaging
	NotificationsBuilt *prometheus.CounterVec
	QRRenderFailures   prometheus.Counter
}

// NewBusinessMetrics creates and registers the collectors on the given
// registerer. Pass prometheus.DefaultRegisterer in production.
func NewBusinessMetrics(reg prometheus.Registerer) *BusinessMetrics {
	factory := promauto.With(reg)

	return &BusinessMetrics{
		CartsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "carts_created_total",
			Help:      "Cart drafts started",
		}),
		CartItemsAdd: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "cart_items_added_total",
			Help:      "Line items added to cart drafts",
		}),
		CartItemsEdit: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "cart_items_edited_total",
			Help:      "Line items edited in cart drafts",
		}),
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "orders_created_total",
			Help:      "Orders finalized",
		}),
		OrdersRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "orders_rejected_total",
			Help:      "Finalization attempts refused, by reason",
		}, []string{"reason"}),
		OrderValue: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "burbuja",
			Name:      "order_value",
			Help:      "Finalized order totals",
			Buckets:   []float64{10, 25, 50, 100, 200, 500},
		}),
		OrderItemCount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "burbuja",
			Name:      "order_item_count",
			Help:      "Line items per finalized order",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}),
		NotificationsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "notifications_built_total",
			Help:      "Order messages rendered, by channel",
		}, []string{"channel"}),
		QRRenderFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "burbuja",
			Name:      "qr_render_failures_total",
			Help:      "QR image render attempts that fell back to text",
		}),
	}
}
