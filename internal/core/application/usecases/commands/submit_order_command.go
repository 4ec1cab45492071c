package commands

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a staff member entering a new customer order.
//
// Example:
//
//	item, _ := order.NewItem(order.ItemTypeA, 2, decimal.NewFromInt(40), "carton", "")
//	cmd, err := NewSubmitOrderCommand(actor, kernel.NewUUID(), "Ada", "+44 1", []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, services.NewStageGate())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	actor         *access.Actor
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	items         []order.Item

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit an order on behalf of actor.
// Field-level validation of the customer and items happens in the aggregate.
func NewSubmitOrderCommand(
	actor *access.Actor,
	orderID kernel.UUID,
	customerName, customerPhone string,
	items []order.Item,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}
	cmd.customerName, cmd.customerPhone = customerName, customerPhone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Actor() *access.Actor  { return c.actor }
func (c SubmitOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c SubmitOrderCommand) CustomerName() string  { return c.customerName }
func (c SubmitOrderCommand) CustomerPhone() string { return c.customerPhone }
func (c SubmitOrderCommand) Items() []order.Item   { return c.items }

func (c *SubmitOrderCommand) setActor(actor *access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}
	c.items = items
	return nil
}
