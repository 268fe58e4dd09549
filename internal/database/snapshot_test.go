package database

import (
	"os"
	"path/filepath"
	"testing"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"

	"github.com/stretchr/testify/require"
)

type storeState struct {
	products []models.Product
	sales    []models.Sale
	settings models.Settings
}

func captureState(t *testing.T, store *Store) storeState {
	t.Helper()
	products, err := store.ListProducts()
	require.NoError(t, err)
	sales, err := store.GetTransactions(models.DateRange{})
	require.NoError(t, err)
	settings, err := store.GetSettings()
	require.NoError(t, err)
	return storeState{products: products, sales: sales, settings: *settings}
}

func seedStore(t *testing.T, store *Store) {
	t.Helper()
	_, err := store.AddProduct("Tea", 2.00, "item")
	require.NoError(t, err)
	_, err = store.AddProduct("Milk", 1.10, "litre")
	require.NoError(t, err)
	_, err = store.RecordSale([]models.SaleLineInput{
		{Name: "Tea", UnitPrice: 2.00, Quantity: 3, Unit: "item"},
	}, "PKR")
	require.NoError(t, err)
	require.NoError(t, store.SaveSettings(models.Settings{
		RestaurantName: "Chai Khana",
		Currency:       "PKR",
		ReceiptFooter:  "Come again!",
	}))
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)
	before := captureState(t, store)

	blob, err := store.ExportSnapshot()
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	// Mutate the live store so the import has something to undo.
	_, err = store.AddProduct("Lassi", 3.00, "glass")
	require.NoError(t, err)
	_, err = store.RecordSale([]models.SaleLineInput{{Name: "Lassi", UnitPrice: 3, Quantity: 1}}, "PKR")
	require.NoError(t, err)

	require.NoError(t, store.ImportSnapshot(blob))

	after := captureState(t, store)
	require.Equal(t, before.products, after.products)
	require.Equal(t, before.sales, after.sales)
	require.Equal(t, before.settings, after.settings)

	// Exporting again must reproduce the imported bytes.
	blob2, err := store.ExportSnapshot()
	require.NoError(t, err)
	require.Equal(t, blob, blob2)
}

func TestImportSnapshotRejectsGarbage(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)
	before := captureState(t, store)

	err := store.ImportSnapshot([]byte("definitely not a database"))
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	require.Equal(t, before, captureState(t, store))
}

func TestImportSnapshotRestoresBackupOnCorruptBytes(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)
	before := captureState(t, store)

	// Valid magic, truncated/corrupt body: the swap happens and must be
	// rolled back from the backup.
	corrupt := append([]byte{}, sqliteMagic...)
	corrupt = append(corrupt, []byte("truncated garbage body")...)

	err := store.ImportSnapshot(corrupt)
	require.Error(t, err)
	require.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	// The store must still be fully usable with the pre-import state.
	require.Equal(t, before, captureState(t, store))

	// No backup file left behind.
	_, statErr := os.Stat(store.Path() + backupSuffix)
	require.True(t, os.IsNotExist(statErr))
}

func TestRestoreKeepsBackupWhenCopyBackFails(t *testing.T) {
	dir := t.TempDir()
	backup := filepath.Join(dir, "live.db"+backupSuffix)
	require.NoError(t, os.WriteFile(backup, []byte("pre-import state"), 0o644))

	// A live path inside a missing directory makes the copy-back fail; the
	// backup must survive as the last good copy.
	s := &Store{path: filepath.Join(dir, "missing", "live.db")}
	require.Error(t, s.restoreLocked(backup))

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	require.Equal(t, []byte("pre-import state"), data)
}

func TestImportSnapshotDiscardsBackupOnSuccess(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	blob, err := store.ExportSnapshot()
	require.NoError(t, err)
	require.NoError(t, store.ImportSnapshot(blob))

	_, statErr := os.Stat(store.Path() + backupSuffix)
	require.True(t, os.IsNotExist(statErr))
}
