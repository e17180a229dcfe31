// Package metrics provides Prometheus metrics collection for the computer shop.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogViewsTotal tracks how many times the catalog was listed.
	CatalogViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_catalog_views_total",
			Help: "Total number of catalog listings",
		},
	)

	// CatalogItemsListedTotal tracks catalog lines written across all listings.
	CatalogItemsListedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_catalog_items_listed_total",
			Help: "Total number of catalog items listed",
		},
	)

	// OrdersTotal tracks completed orders by computer variant.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_orders_total",
			Help: "Total number of completed orders",
		},
		[]string{"variant"},
	)

	// OrderAssemblyDuration tracks how long the director takes to assemble a computer.
	OrderAssemblyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shop_order_assembly_duration_seconds",
			Help:    "Computer assembly duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
		[]string{"variant"},
	)
)

// RecordCatalogView records one catalog listing of the given number of items.
func RecordCatalogView(items int) {
	CatalogViewsTotal.Inc()
	CatalogItemsListedTotal.Add(float64(items))
}

// RecordOrder records metrics for a completed order.
func RecordOrder(variant string, duration time.Duration) {
	OrderAssemblyDuration.WithLabelValues(variant).Observe(duration.Seconds())
	OrdersTotal.WithLabelValues(variant).Inc()
}
