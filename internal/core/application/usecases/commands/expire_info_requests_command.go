package commands

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrExpireInfoRequestsCommandIsNotConstructed = errors.New(
	"ExpireInfoRequestsCommand must be created via NewExpireInfoRequestsCommand constructor",
)

// ExpireInfoRequestsCommand sweeps applications whose open info requests are
// past due at now. At most batchSize applications are handled per run.
type ExpireInfoRequestsCommand struct {
	now       time.Time
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpireInfoRequestsCommand(now time.Time, batchSize int) (ExpireInfoRequestsCommand, error) {
	var nowErr, sizeErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if batchSize <= 0 {
		sizeErr = errs.NewValueIsInvalidErrorWithCause("batch size is invalid", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	if err := errors.Join(nowErr, sizeErr); err != nil {
		return ExpireInfoRequestsCommand{}, err
	}
	return ExpireInfoRequestsCommand{now: now, batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireInfoRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireInfoRequestsCommandIsNotConstructed)
}

func (c ExpireInfoRequestsCommand) Now() time.Time {
	return c.now
}

func (c ExpireInfoRequestsCommand) BatchSize() int {
	return c.batchSize
}
