package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

// ErrUpdateItemChecklistCommandIsNotConstructed is returned when the command
// was not created through the constructor.
var ErrUpdateItemChecklistCommandIsNotConstructed = errors.New(
	"UpdateItemChecklistCommand must be created via NewUpdateItemChecklistCommand constructor",
)

// UpdateItemChecklistCommand represents one tick of the picking checklist:
// marking a line item as separated (or not) with optional notes. The item is
// addressed directly so the preparation screen does not need the order id.
type UpdateItemChecklistCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	picked bool
	notes  string

	guard guard.ConstructorGuard
}

// NewUpdateItemChecklistCommand creates a command to update an item's
// checklist state.
func NewUpdateItemChecklistCommand(itemID kernel.UUID, picked bool, notes string) (UpdateItemChecklistCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdateItemChecklistCommand{}, err
	}

	return UpdateItemChecklistCommand{
		itemID: itemID,
		picked: picked,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemChecklistCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemChecklistCommandIsNotConstructed)
}

// ItemID returns the identifier of the line item to update.
func (c UpdateItemChecklistCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Picked reports whether the item was separated.
func (c UpdateItemChecklistCommand) Picked() bool {
	return c.picked
}

// Notes returns the free-text checklist notes.
func (c UpdateItemChecklistCommand) Notes() string {
	return c.notes
}
