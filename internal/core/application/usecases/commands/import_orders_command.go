package commands

import (
	"errors"
	"io"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportOrdersCommand represents an admin request to bulk-create orders from
// an uploaded CSV file.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	createdBy kernel.UUID
	file      io.Reader

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a CSV import command.
func NewImportOrdersCommand(createdBy kernel.UUID, file io.Reader) (ImportOrdersCommand, error) {
	if err := createdBy.Validate(); err != nil {
		return ImportOrdersCommand{}, err
	}
	if file == nil {
		return ImportOrdersCommand{}, errs.NewValueIsRequiredError("file")
	}

	return ImportOrdersCommand{
		createdBy: createdBy,
		file:      file,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

func (c ImportOrdersCommand) CreatedBy() kernel.UUID { return c.createdBy }
func (c ImportOrdersCommand) File() io.Reader        { return c.file }
