package database

import (
	"testing"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSaveSettingsValidation(t *testing.T) {
	bad := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		settings models.Settings
	}{
		{"currency too long", models.Settings{Currency: "RUPEES"}},
		{"currency with digits", models.Settings{Currency: "PK1"}},
		{"tax rate negative", models.Settings{Currency: "PKR", TaxRate: bad(-1)}},
		{"tax rate above 100", models.Settings{Currency: "PKR", TaxRate: bad(101)}},
		{"malformed opening time", models.Settings{Currency: "PKR", OpeningTime: "9am"}},
		{"malformed closing time", models.Settings{Currency: "PKR", ClosingTime: "25:00"}},
		{"opening after closing", models.Settings{Currency: "PKR", OpeningTime: "22:00", ClosingTime: "09:00"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			err := store.SaveSettings(tc.settings)
			require.Error(t, err)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestSaveSettingsUpsertsWholeRecord(t *testing.T) {
	store := newTestStore(t)
	tax := 16.0

	in := models.Settings{
		RestaurantName: "Chai Khana",
		Address:        "12 Mall Road, Lahore",
		Phone:          "042-1234567",
		Email:          "owner@chaikhana.pk",
		TaxRate:        &tax,
		Currency:       "pkr",
		OpeningTime:    "09:00",
		ClosingTime:    "23:30",
		ReceiptFooter:  "Come again!",
		Logo:           []byte{0x89, 0x50, 0x4e, 0x47},
	}
	require.NoError(t, store.SaveSettings(in))

	got, err := store.GetSettings()
	require.NoError(t, err)
	require.Equal(t, "Chai Khana", got.RestaurantName)
	require.Equal(t, "PKR", got.Currency) // normalized to upper case
	require.Equal(t, "09:00", got.OpeningTime)
	require.NotNil(t, got.TaxRate)
	require.InDelta(t, 16.0, *got.TaxRate, 1e-9)
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got.Logo)

	// A second save replaces the record wholesale.
	in.RestaurantName = "Chai Khana 2"
	in.Logo = nil
	require.NoError(t, store.SaveSettings(in))

	got, err = store.GetSettings()
	require.NoError(t, err)
	require.Equal(t, "Chai Khana 2", got.RestaurantName)
	require.Empty(t, got.Logo)
}

func TestSaveSettingsDefaultsCurrency(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveSettings(models.Settings{RestaurantName: "X"}))
	got, err := store.GetSettings()
	require.NoError(t, err)
	require.Equal(t, "PKR", got.Currency)
}
