package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel all orders that
// have been sitting in pending status since before the cutoff. Issued
// periodically by the background reaper job.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to reap pending orders
// created before the cutoff.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setCutoff(cutoff); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the point in time before which pending orders are stale.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CancelStaleOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
