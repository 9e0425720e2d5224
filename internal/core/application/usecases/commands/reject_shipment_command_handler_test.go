package commands_test

import (
	"testing"

	"trix/internal/core/application/usecases/commands"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectShipmentCommandHandler_Handle(t *testing.T) {
	t.Run("logs_and_changes_nothing", func(t *testing.T) {
		ctx := t.Context()
		s := testPendingShipment(t, kernel.NewUUID(), 300)

		cmd, err := commands.NewRejectShipmentCommand(s.ID(), kernel.NewUUID())
		require.NoError(t, err)

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
			shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRejectShipmentCommandHandler(factory, discardLogger())
		require.NoError(t, handler.Handle(ctx, cmd))

		shipmentRepo.AssertNotCalled(t, "Update")
		shipmentRepo.AssertNotCalled(t, "UpdateInStatus")
		uow.AssertNotCalled(t, "Commit")
	})

	t.Run("unknown_shipment", func(t *testing.T) {
		ctx := t.Context()
		shipmentID := kernel.NewUUID()

		cmd, err := commands.NewRejectShipmentCommand(shipmentID, kernel.NewUUID())
		require.NoError(t, err)

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		shipmentRepo.On("Get", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentId", shipmentID)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRejectShipmentCommandHandler(factory, discardLogger())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
