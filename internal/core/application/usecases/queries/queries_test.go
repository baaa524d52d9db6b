package queries_test

import (
	"testing"

	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/queries"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterlessQueries_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetAllDriversQuery().Validate())
	require.NoError(t, queries.NewGetAllTrucksQuery().Validate())
	require.NoError(t, queries.NewGetAllWarehousesQuery().Validate())
	require.NoError(t, queries.NewGetAllShipmentsQuery().Validate())
	require.NoError(t, queries.NewGetActiveShipmentsQuery().Validate())
}

func TestParameterlessQueries_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t,
		queries.GetAllDriversQuery{}.Validate(), queries.ErrGetAllDriversQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAllTrucksQuery{}.Validate(), queries.ErrGetAllTrucksQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAllWarehousesQuery{}.Validate(), queries.ErrGetAllWarehousesQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAllShipmentsQuery{}.Validate(), queries.ErrGetAllShipmentsQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetActiveShipmentsQuery{}.Validate(), queries.ErrGetActiveShipmentsQueryIsNotConstructed)
}

func TestNewGetShipmentTimelineQuery(t *testing.T) {
	t.Run("should create query with valid shipment id", func(t *testing.T) {
		shipmentID := kernel.NewUUID()

		query, err := queries.NewGetShipmentTimelineQuery(shipmentID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, shipmentID.IsEqual(query.ShipmentID()))
	})

	t.Run("should reject zero value shipment id", func(t *testing.T) {
		var shipmentID kernel.UUID

		_, err := queries.NewGetShipmentTimelineQuery(shipmentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.GetShipmentTimelineQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetShipmentTimelineQueryIsNotConstructed)
	})
}

func TestNewTrackShipmentQuery(t *testing.T) {
	t.Run("should create query with valid tracking number", func(t *testing.T) {
		query, err := queries.NewTrackShipmentQuery("AX-1A2B3C4D")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "AX-1A2B3C4D", query.TrackingNumber().String())
	})

	t.Run("should reject empty tracking number", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed tracking number", func(t *testing.T) {
		for _, s := range []string{"1A2B3C4D", "AX-12", "AX-1a2b3c4d", "AX-ZZZZZZZZ"} {
			_, err := queries.NewTrackShipmentQuery(s)

			require.Error(t, err, s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.TrackShipmentQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrTrackShipmentQueryIsNotConstructed)
	})
}
