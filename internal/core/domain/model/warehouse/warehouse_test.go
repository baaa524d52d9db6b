package warehouse_test

import (
	"testing"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/warehouse"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "North Hub", "Hamburg", 1000)
	require.NoError(t, err)
	return w
}

func TestNewWarehouse(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid warehouse with all valid parameters", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(validID, "North Hub", "Hamburg", 1000)

		require.NoError(t, err)
		assert.NotNil(t, w)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsEqual(validID))
		assert.Equal(t, "North Hub", w.Name())
		assert.Equal(t, "Hamburg", w.Location())
		assert.Equal(t, int64(1000), w.Capacity())
		assert.Equal(t, int64(0), w.CurrentInventory())
		assert.Equal(t, warehouse.Operational, w.Status())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(validID, "", "Hamburg", 1000)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero capacity", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(validID, "North Hub", "Hamburg", 0)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "capacity")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		w, err := warehouse.NewWarehouse(invalidID, "", "", -1)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "capacity")
	})
}

func TestRestoreWarehouse(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should restore warehouse with inventory", func(t *testing.T) {
		w, err := warehouse.RestoreWarehouse(id, "North Hub", "Hamburg", 1000, 250, warehouse.Operational)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, int64(250), w.CurrentInventory())
	})

	t.Run("should reject inventory above capacity", func(t *testing.T) {
		w, err := warehouse.RestoreWarehouse(id, "North Hub", "Hamburg", 1000, 1001, warehouse.Operational)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative inventory", func(t *testing.T) {
		w, err := warehouse.RestoreWarehouse(id, "North Hub", "Hamburg", 1000, -1, warehouse.Operational)

		require.Error(t, err)
		assert.Nil(t, w)
	})
}

func TestWarehouse_AddInventory(t *testing.T) {
	t.Run("should add inventory within capacity", func(t *testing.T) {
		w := newValidWarehouse(t)

		require.NoError(t, w.AddInventory(400))
		require.NoError(t, w.AddInventory(600))

		assert.Equal(t, int64(1000), w.CurrentInventory())
		assert.Equal(t, int64(0), w.AvailableSpace())
	})

	t.Run("should reject addition past capacity", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(900))

		err := w.AddInventory(101)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, int64(900), w.CurrentInventory()) // ledger unchanged
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		w := newValidWarehouse(t)

		require.Error(t, w.AddInventory(0))
		require.Error(t, w.AddInventory(-5))
		assert.Equal(t, int64(0), w.CurrentInventory())
	})

	t.Run("should reject addition to closed warehouse", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.Close())

		err := w.AddInventory(10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), warehouse.ErrWarehouseClosed.Error())
		assert.Equal(t, int64(0), w.CurrentInventory())
	})
}

func TestWarehouse_RemoveInventory(t *testing.T) {
	t.Run("should remove stored inventory", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(500))

		require.NoError(t, w.RemoveInventory(200))

		assert.Equal(t, int64(300), w.CurrentInventory())
	})

	t.Run("should reject removal below zero", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(100))

		err := w.RemoveInventory(101)

		require.Error(t, err)
		assert.Contains(t, err.Error(), warehouse.ErrInsufficientInventory.Error())
		assert.Equal(t, int64(100), w.CurrentInventory()) // ledger unchanged
	})

	t.Run("should reject removal from closed warehouse", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.Close())

		err := w.RemoveInventory(50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), warehouse.ErrWarehouseClosed.Error())
	})
}

func TestWarehouse_UpdateCapacity(t *testing.T) {
	t.Run("should grow and shrink within the ledger invariant", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(500))

		require.NoError(t, w.UpdateCapacity(2000))
		assert.Equal(t, int64(2000), w.Capacity())

		require.NoError(t, w.UpdateCapacity(500))
		assert.Equal(t, int64(500), w.Capacity())
	})

	t.Run("should reject capacity below current inventory", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(500))

		err := w.UpdateCapacity(499)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, int64(1000), w.Capacity())
	})

	t.Run("should reject non-positive capacity", func(t *testing.T) {
		w := newValidWarehouse(t)

		require.Error(t, w.UpdateCapacity(0))
		require.Error(t, w.UpdateCapacity(-10))
	})
}

func TestWarehouse_OccupancyPercentage(t *testing.T) {
	t.Run("should round to the nearest whole percent", func(t *testing.T) {
		w := newValidWarehouse(t)

		assert.Equal(t, int64(0), w.OccupancyPercentage())

		require.NoError(t, w.AddInventory(333))
		assert.Equal(t, int64(33), w.OccupancyPercentage())

		require.NoError(t, w.AddInventory(2))
		assert.Equal(t, int64(34), w.OccupancyPercentage()) // 33.5 rounds up

		require.NoError(t, w.AddInventory(665))
		assert.Equal(t, int64(100), w.OccupancyPercentage())
	})
}

func TestWarehouse_CloseAndReopen(t *testing.T) {
	t.Run("should close an empty warehouse and reopen it", func(t *testing.T) {
		w := newValidWarehouse(t)

		require.NoError(t, w.Close())
		assert.Equal(t, warehouse.Closed, w.Status())

		w.Reopen()
		assert.Equal(t, warehouse.Operational, w.Status())
		require.NoError(t, w.AddInventory(100))
		assert.Equal(t, int64(100), w.CurrentInventory())
	})

	t.Run("should reject closing while inventory is stored", func(t *testing.T) {
		w := newValidWarehouse(t)
		require.NoError(t, w.AddInventory(300))

		err := w.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), warehouse.ErrWarehouseNotEmpty.Error())
		assert.Equal(t, warehouse.Operational, w.Status())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		w := newValidWarehouse(t)

		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		assert.Equal(t, warehouse.Closed, w.Status())
	})
}

func TestStatus_FromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, s := range []warehouse.Status{warehouse.Operational, warehouse.Closed} {
			parsed, err := warehouse.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := warehouse.StatusFromString("FULL")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
