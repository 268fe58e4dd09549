package database

import (
	"testing"
	"time"

	"resto-pos/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGetAnalyticsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	a, err := store.GetAnalytics(models.DateRange{})
	require.NoError(t, err)

	require.Zero(t, a.Summary.TotalOrders)
	require.Zero(t, a.Summary.TotalRevenue)
	require.Zero(t, a.Summary.AverageOrderValue) // 0, never NaN
	require.NotNil(t, a.DailyRevenue)
	require.Empty(t, a.DailyRevenue)
	require.NotNil(t, a.TopProducts)
	require.Empty(t, a.TopProducts)
	require.NotNil(t, a.ProductDistribution)
	require.Empty(t, a.ProductDistribution)
}

func TestGetAnalyticsDailyBuckets(t *testing.T) {
	store := newTestStore(t)

	_, err := store.RecordSale([]models.SaleLineInput{{Name: "Tea", UnitPrice: 10, Quantity: 1}}, "PKR")
	require.NoError(t, err)
	_, err = store.RecordSale([]models.SaleLineInput{{Name: "Tea", UnitPrice: 15, Quantity: 1}}, "PKR")
	require.NoError(t, err)

	a, err := store.GetAnalytics(models.DateRange{})
	require.NoError(t, err)

	// Two sales on the same calendar date collapse into one bucket.
	require.Len(t, a.DailyRevenue, 1)
	bucket := a.DailyRevenue[0]
	require.Equal(t, time.Now().Format("2006-01-02"), bucket.Date)
	require.InDelta(t, 25.00, bucket.Revenue, 0.01)
	require.EqualValues(t, 2, bucket.Orders)

	require.EqualValues(t, 2, a.Summary.TotalOrders)
	require.InDelta(t, 25.00, a.Summary.TotalRevenue, 0.01)
	require.InDelta(t, 12.50, a.Summary.AverageOrderValue, 0.01)
}

func TestGetAnalyticsTopProductsTruncated(t *testing.T) {
	store := newTestStore(t)

	names := []string{"Tea", "Coffee", "Samosa", "Biryani", "Raita", "Lassi"}
	for i, name := range names {
		_, err := store.RecordSale([]models.SaleLineInput{
			{Name: name, UnitPrice: 1.00, Quantity: float64(i + 1)},
		}, "PKR")
		require.NoError(t, err)
	}

	a, err := store.GetAnalytics(models.DateRange{})
	require.NoError(t, err)

	// Top products cap at 5, the distribution never truncates.
	require.Len(t, a.TopProducts, 5)
	require.Len(t, a.ProductDistribution, 6)

	require.Equal(t, "Lassi", a.TopProducts[0].Name)
	require.InDelta(t, 6, a.TopProducts[0].Sales, 1e-9)
	for i := 1; i < len(a.TopProducts); i++ {
		require.GreaterOrEqual(t, a.TopProducts[i-1].Sales, a.TopProducts[i].Sales)
	}
	for i := 1; i < len(a.ProductDistribution); i++ {
		require.GreaterOrEqual(t, a.ProductDistribution[i-1].Value, a.ProductDistribution[i].Value)
	}
}

func TestGetAnalyticsGroupsByCapturedName(t *testing.T) {
	store := newTestStore(t)

	// Same captured name across distinct sales merges into one bucket,
	// even after the catalog entry is gone.
	product, err := store.AddProduct("Tea", 2.00, "item")
	require.NoError(t, err)
	_, err = store.RecordSale([]models.SaleLineInput{{Name: "Tea", UnitPrice: 2, Quantity: 2}}, "PKR")
	require.NoError(t, err)
	require.NoError(t, store.DeleteProduct(product.ID))
	_, err = store.RecordSale([]models.SaleLineInput{{Name: "Tea", UnitPrice: 3, Quantity: 1}}, "PKR")
	require.NoError(t, err)

	a, err := store.GetAnalytics(models.DateRange{})
	require.NoError(t, err)
	require.Len(t, a.TopProducts, 1)
	require.InDelta(t, 3, a.TopProducts[0].Sales, 1e-9)
	require.InDelta(t, 7.00, a.TopProducts[0].Revenue, 0.01)
}

func TestGetAnalyticsRangeBoundsAllViews(t *testing.T) {
	store := newTestStore(t)

	_, err := store.RecordSale([]models.SaleLineInput{{Name: "Tea", UnitPrice: 5, Quantity: 1}}, "PKR")
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1)
	a, err := store.GetAnalytics(models.DateRange{From: tomorrow})
	require.NoError(t, err)
	require.Empty(t, a.DailyRevenue)
	require.Empty(t, a.TopProducts)
	require.Empty(t, a.ProductDistribution)
	require.Zero(t, a.Summary.TotalOrders)
	require.Zero(t, a.Summary.AverageOrderValue)

	today := time.Now()
	a, err = store.GetAnalytics(models.DateRange{From: today, To: today})
	require.NoError(t, err)
	require.Len(t, a.DailyRevenue, 1)
	require.EqualValues(t, 1, a.Summary.TotalOrders)
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name  string
		daily []models.DailyRevenue
		want  float64
	}{
		{"no buckets", nil, 0},
		{"single bucket", []models.DailyRevenue{{Revenue: 10}}, 0},
		{"zero first bucket", []models.DailyRevenue{{Revenue: 0}, {Revenue: 50}}, 0},
		{"growth", []models.DailyRevenue{{Revenue: 10}, {Revenue: 20}, {Revenue: 30}}, 200},
		{"decline", []models.DailyRevenue{{Revenue: 40}, {Revenue: 10}}, -75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, models.GrowthRate(tc.daily), 1e-9)
		})
	}
}
