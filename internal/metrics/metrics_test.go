package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCatalogView(t *testing.T) {
	views := testutil.ToFloat64(CatalogViewsTotal)
	items := testutil.ToFloat64(CatalogItemsListedTotal)

	RecordCatalogView(4)
	RecordCatalogView(4)

	assert.Equal(t, views+2, testutil.ToFloat64(CatalogViewsTotal))
	assert.Equal(t, items+8, testutil.ToFloat64(CatalogItemsListedTotal))
}

func TestRecordOrder(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		calls   int
	}{
		{name: "single gaming order", variant: "gaming", calls: 1},
		{name: "several office orders", variant: "office", calls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(OrdersTotal.WithLabelValues(tt.variant))

			for i := 0; i < tt.calls; i++ {
				RecordOrder(tt.variant, 50*time.Microsecond)
			}

			after := testutil.ToFloat64(OrdersTotal.WithLabelValues(tt.variant))
			assert.Equal(t, before+float64(tt.calls), after)
		})
	}
}

func TestOrderAssemblyDuration_Registered(t *testing.T) {
	RecordOrder("gaming", time.Millisecond)

	assert.Positive(t, testutil.CollectAndCount(OrderAssemblyDuration))
}
