package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/orderupdate"
	"dispatch/internal/pkg/errs"
)

// getDriverOrder loads an order and verifies it belongs to the driver.
// Orders assigned to someone else surface as not-found rather than forbidden
// so drivers cannot probe for other drivers' order ids.
func getDriverOrder(
	ctx context.Context,
	uow DriverUoW,
	orderID kernel.UUID,
	driverID kernel.UUID,
) (*order.Order, error) {
	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if aggregate.Driver() == nil || !aggregate.Driver().IsEqual(driverID) {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	return aggregate, nil
}

// persistDriverTransition writes the mutated order and appends the audit
// record in the already-open transaction. Exactly one audit record per
// successful driver transition; the caller commits.
func persistDriverTransition(
	ctx context.Context,
	uow DriverUoW,
	aggregate *order.Order,
	driverID kernel.UUID,
	notes string,
) error {
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	update, err := orderupdate.NewOrderUpdate(
		kernel.NewUUID(), aggregate.ID(), driverID, aggregate.Status(), notes)
	if err != nil {
		return err
	}

	return uow.OrderUpdateRepository().Add(ctx, update)
}
