package commands

import (
	"errors"
	"fmt"

	"yolnext/internal/pkg/errs"
	"yolnext/internal/pkg/guard"
)

var (
	ErrDispatchOutboxCommandIsNotConstructed = errors.New(
		"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
	)
)

// DispatchOutboxCommand represents a request to drain a batch of unpublished
// events from the outbox to the broker.
type DispatchOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchOutboxCommand creates a command to dispatch outbox events.
func NewDispatchOutboxCommand(batchSize int) (DispatchOutboxCommand, error) {
	cmd := DispatchOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return DispatchOutboxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events to dispatch in one run.
func (c DispatchOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	c.batchSize = batchSize
	return nil
}
