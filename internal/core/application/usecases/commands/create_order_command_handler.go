package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Caller-supplied numbers are checked for uniqueness; generated numbers are
// trusted not to collide. The write is transactional, so a failed uniqueness
// check leaves no partial state.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number := order.GenerateNumber()
	if cmd.Number() != "" {
		supplied, err := order.NewNumber(cmd.Number())
		if err != nil {
			return err
		}

		exists, err := orderRepo.ExistsNumber(ctx, supplied)
		if err != nil {
			return err
		}
		if exists {
			return ErrOrderNumberAlreadyExists
		}

		number = supplied
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), number, cmd.CreatedBy(), cmd.Details(), cmd.Priority(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
