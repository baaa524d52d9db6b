package shipment_test

import (
	"testing"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCreatedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testETA       = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
)

func newValidShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	tn, err := shipment.TrackingNumberFromString("AX-1A2B3C4D")
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), tn, "Hamburg", "Munich", 120.5, nil, testETA, testCreatedAt)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	tn, _ := shipment.TrackingNumberFromString("AX-1A2B3C4D")

	t.Run("should create valid shipment with all valid parameters", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, tn, "Hamburg", "Munich", 120.5, nil, testETA, testCreatedAt)

		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "AX-1A2B3C4D", s.TrackingNumber().String())
		assert.Equal(t, "Hamburg", s.Origin())
		assert.Equal(t, "Munich", s.Destination())
		assert.Equal(t, 120.5, s.Weight())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Driver())
		assert.Nil(t, s.Truck())
		assert.Nil(t, s.ActualDelivery())
	})

	t.Run("should write the creation entry into the timeline", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, tn, "Hamburg", "Munich", 120.5, nil, testETA, testCreatedAt)

		require.NoError(t, err)
		timeline := s.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, shipment.Pending, timeline[0].Status())
		assert.Equal(t, "Hamburg", timeline[0].Location())
		assert.Equal(t, testCreatedAt, timeline[0].Timestamp())
		assert.Equal(t, "Shipment created", timeline[0].Note())
	})

	t.Run("should record warehouse when supplied", func(t *testing.T) {
		warehouseID := kernel.NewUUID()

		s, err := shipment.NewShipment(validID, tn, "Hamburg", "Munich", 120.5, &warehouseID, testETA, testCreatedAt)

		require.NoError(t, err)
		require.NotNil(t, s.Warehouse())
		assert.True(t, s.Warehouse().IsEqual(warehouseID))
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, tn, "Hamburg", "Munich", 0, nil, testETA, testCreatedAt)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidTN shipment.TrackingNumber

		s, err := shipment.NewShipment(invalidID, invalidTN, "", "", -1, nil, time.Time{}, testCreatedAt)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "trackingNumber")
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "estimatedDelivery")
	})
}

func TestShipment_Assign(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()
	dispatchedAt := testCreatedAt.Add(2 * time.Hour)

	t.Run("should assign pending shipment and move it in transit", func(t *testing.T) {
		s := newValidShipment(t)

		err := s.Assign(driverID, truckID, dispatchedAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
		require.NotNil(t, s.Driver())
		assert.True(t, s.Driver().IsEqual(driverID))
		require.NotNil(t, s.Truck())
		assert.True(t, s.Truck().IsEqual(truckID))
	})

	t.Run("should append a timeline entry on assignment", func(t *testing.T) {
		s := newValidShipment(t)

		require.NoError(t, s.Assign(driverID, truckID, dispatchedAt))

		timeline := s.Timeline()
		require.Len(t, timeline, 2)
		assert.Equal(t, shipment.InTransit, timeline[1].Status())
		assert.Equal(t, "In Transit", timeline[1].Location())
		assert.Equal(t, dispatchedAt, timeline[1].Timestamp())
	})

	t.Run("should reject assignment past the initial state", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, dispatchedAt)

		err := s.Assign(kernel.NewUUID(), kernel.NewUUID(), dispatchedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrShipmentNotPending.Error())
		assert.True(t, s.Driver().IsEqual(driverID)) // original pair preserved
		require.Len(t, s.Timeline(), 2)              // no entry for the rejection
	})

	t.Run("should fail with invalid references", func(t *testing.T) {
		s := newValidShipment(t)
		var invalidID kernel.UUID

		err := s.Assign(invalidID, truckID, dispatchedAt)

		require.Error(t, err)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Driver())
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	t.Run("should advance along the forward flow with one entry per step", func(t *testing.T) {
		s := newValidShipment(t)
		at := testCreatedAt

		steps := []shipment.Status{shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery}
		for _, next := range steps {
			at = at.Add(time.Hour)
			require.NoError(t, s.ChangeStatus(next, at))
			assert.Equal(t, next, s.Status())
		}

		timeline := s.Timeline()
		require.Len(t, timeline, 4) // creation + three steps
		assert.Equal(t, "Munich (Local Hub)", timeline[3].Location())
	})

	t.Run("should allow skipping intermediate stages", func(t *testing.T) {
		s := newValidShipment(t)

		err := s.ChangeStatus(shipment.InTransit, testCreatedAt.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("should reject backward movement", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.ChangeStatus(shipment.InTransit, testCreatedAt.Add(time.Hour))

		err := s.ChangeStatus(shipment.PickedUp, testCreatedAt.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.InTransit, s.Status())
		require.Len(t, s.Timeline(), 2)
	})

	t.Run("should route DELIVERED through the delivery bookkeeping", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		deliveredAt := testCreatedAt.Add(8 * time.Hour)

		err := s.ChangeStatus(shipment.Delivered, deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.ActualDelivery())
		assert.Equal(t, deliveredAt, *s.ActualDelivery())
	})

	t.Run("should reject DELIVERED before the shipment is in transit", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.ChangeStatus(shipment.PickedUp, testCreatedAt.Add(time.Hour))

		err := s.ChangeStatus(shipment.Delivered, testCreatedAt.Add(2*time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrNotInTransit.Error())
		assert.Equal(t, shipment.PickedUp, s.Status())
		assert.Nil(t, s.ActualDelivery())
	})
}

func TestShipment_MarkDelivered(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	t.Run("should deliver an in-transit shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		deliveredAt := testCreatedAt.Add(8 * time.Hour)

		err := s.MarkDelivered(deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.ActualDelivery())
		assert.Equal(t, deliveredAt, *s.ActualDelivery())

		timeline := s.Timeline()
		require.Len(t, timeline, 3)
		assert.Equal(t, shipment.Delivered, timeline[2].Status())
		assert.Equal(t, "Munich", timeline[2].Location())
	})

	t.Run("should deliver an out-for-delivery shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		_ = s.ChangeStatus(shipment.OutForDelivery, testCreatedAt.Add(6*time.Hour))

		err := s.MarkDelivered(testCreatedAt.Add(8 * time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("should reject delivery of a pending shipment", func(t *testing.T) {
		s := newValidShipment(t)

		err := s.MarkDelivered(testCreatedAt.Add(time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrNotInTransit.Error())
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should reject delivery of a delivered shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		_ = s.MarkDelivered(testCreatedAt.Add(8 * time.Hour))

		err := s.MarkDelivered(testCreatedAt.Add(9 * time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrTerminalState.Error())
		require.Len(t, s.Timeline(), 3)
	})
}

func TestShipment_Unassign(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	t.Run("should revert assigned shipment to pending", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))

		err := s.Unassign(testCreatedAt.Add(2 * time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Driver())
		assert.Nil(t, s.Truck())

		timeline := s.Timeline()
		require.Len(t, timeline, 3)
		assert.Equal(t, shipment.Pending, timeline[2].Status())
		assert.Equal(t, "Shipment unassigned", timeline[2].Note())
	})

	t.Run("should reject unassign of delivered shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		_ = s.MarkDelivered(testCreatedAt.Add(8 * time.Hour))

		err := s.Unassign(testCreatedAt.Add(9 * time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrUnassignDelivered.Error())
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.NotNil(t, s.Driver()) // references preserved for the audit trail
	})

	t.Run("should reject unassign of cancelled shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Cancel(testCreatedAt.Add(time.Hour), "")

		err := s.Unassign(testCreatedAt.Add(2 * time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrTerminalState.Error())
		assert.Equal(t, shipment.Cancelled, s.Status())
	})
}

func TestShipment_Cancel(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	t.Run("should cancel a pending shipment", func(t *testing.T) {
		s := newValidShipment(t)

		err := s.Cancel(testCreatedAt.Add(time.Hour), "Customer request")

		require.NoError(t, err)
		assert.Equal(t, shipment.Cancelled, s.Status())

		timeline := s.Timeline()
		require.Len(t, timeline, 2)
		assert.Equal(t, "Cancelled", timeline[1].Location())
		assert.Equal(t, "Customer request", timeline[1].Note())
	})

	t.Run("should cancel an in-transit shipment and clear references", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))

		err := s.Cancel(testCreatedAt.Add(2*time.Hour), "")

		require.NoError(t, err)
		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Nil(t, s.Driver())
		assert.Nil(t, s.Truck())
	})

	t.Run("should reject cancelling a delivered shipment", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		_ = s.MarkDelivered(testCreatedAt.Add(8 * time.Hour))

		err := s.Cancel(testCreatedAt.Add(9*time.Hour), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), shipment.ErrTerminalState.Error())
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("should reject cancelling twice", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Cancel(testCreatedAt.Add(time.Hour), "")

		err := s.Cancel(testCreatedAt.Add(2*time.Hour), "")

		require.Error(t, err)
		require.Len(t, s.Timeline(), 2)
	})
}

func TestShipment_CanBeDeleted(t *testing.T) {
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	t.Run("pending and cancelled shipments are deletable", func(t *testing.T) {
		s := newValidShipment(t)
		assert.True(t, s.CanBeDeleted())

		_ = s.Cancel(testCreatedAt.Add(time.Hour), "")
		assert.True(t, s.CanBeDeleted())
	})

	t.Run("active and delivered shipments are not deletable", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.Assign(driverID, truckID, testCreatedAt.Add(time.Hour))
		assert.False(t, s.CanBeDeleted())

		_ = s.MarkDelivered(testCreatedAt.Add(8 * time.Hour))
		assert.False(t, s.CanBeDeleted())
	})
}

func TestShipment_TimelineImmutability(t *testing.T) {
	t.Run("mutating the returned slice does not touch the ledger", func(t *testing.T) {
		s := newValidShipment(t)
		_ = s.ChangeStatus(shipment.PickedUp, testCreatedAt.Add(time.Hour))

		timeline := s.Timeline()
		require.Len(t, timeline, 2)
		timeline[0] = shipment.TimelineEntry{}

		fresh := s.Timeline()
		assert.Equal(t, shipment.Pending, fresh[0].Status())
		assert.Equal(t, "Shipment created", fresh[0].Note())
	})
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	tn, _ := shipment.TrackingNumberFromString("AX-00FF00FF")
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	entry, err := shipment.RestoreTimelineEntry(kernel.NewUUID(), shipment.Pending, "Hamburg", testCreatedAt, "Shipment created")
	require.NoError(t, err)

	t.Run("should restore shipment with timeline", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, tn, "Hamburg", "Munich", 120.5,
			shipment.InTransit, &driverID, &truckID, nil, testETA, nil, []shipment.TimelineEntry{entry})

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.InTransit, s.Status())
		require.Len(t, s.Timeline(), 1)
	})

	t.Run("should reject driver without truck", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, tn, "Hamburg", "Munich", 120.5,
			shipment.InTransit, &driverID, nil, nil, testETA, nil, nil)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestTrackingNumber(t *testing.T) {
	t.Run("should accept well-formed tracking numbers", func(t *testing.T) {
		tn, err := shipment.TrackingNumberFromString("AX-DEADBEEF")

		require.NoError(t, err)
		assert.Equal(t, "AX-DEADBEEF", tn.String())
		require.NoError(t, tn.Validate())
	})

	t.Run("should reject missing prefix", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("FH-DEADBEEF")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject wrong code length", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("AX-ABC")

		require.Error(t, err)
	})

	t.Run("should reject lowercase hex", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("AX-deadbeef")

		require.Error(t, err)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should derive a valid tracking number from a UUID", func(t *testing.T) {
		tn, err := shipment.TrackingNumberFromUUID(kernel.NewUUID())

		require.NoError(t, err)
		parsed, err := shipment.TrackingNumberFromString(tn.String())
		require.NoError(t, err)
		assert.True(t, tn.IsEqual(parsed))
	})

	t.Run("should reject an unconstructed UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := shipment.TrackingNumberFromUUID(invalidID)

		require.Error(t, err)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := shipment.TrackingNumberFromString("AX-1A2B3C4D")
		b, _ := shipment.TrackingNumberFromString("AX-1A2B3C4D")
		c, _ := shipment.TrackingNumberFromString("AX-00FF00FF")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestTransitLocation(t *testing.T) {
	t.Run("should derive locations from origin and destination", func(t *testing.T) {
		cases := []struct {
			status   shipment.Status
			expected string
		}{
			{shipment.Pending, "Hamburg"},
			{shipment.PickedUp, "Hamburg (Pickup Location)"},
			{shipment.InTransit, "In Transit"},
			{shipment.OutForDelivery, "Munich (Local Hub)"},
			{shipment.Delivered, "Munich"},
			{shipment.Cancelled, "Cancelled"},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.expected, shipment.TransitLocation(tc.status, "Hamburg", "Munich"), tc.status.String())
		}
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, terminal := range []shipment.Status{shipment.Delivered, shipment.Cancelled} {
			for _, next := range shipment.ForwardFlow() {
				_, err := terminal.Transition(next)
				require.Error(t, err, "%s -> %s", terminal, next)
				assert.Contains(t, err.Error(), shipment.ErrTerminalState.Error())
			}
		}
	})

	t.Run("transition never mutates the receiver", func(t *testing.T) {
		s := shipment.Pending

		next, err := s.Transition(shipment.InTransit)

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, next)
		assert.Equal(t, shipment.Pending, s)
	})
}
