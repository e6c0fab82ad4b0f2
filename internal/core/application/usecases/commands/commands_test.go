package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	customer, business := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(customer, business, customer)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customer, cmd.CustomerID())
	assert.Equal(t, business, cmd.BusinessID())

	_, err = commands.NewPlaceOrderCommand(kernel.UUID{}, business, customer)
	require.Error(t, err)

	assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestNewCancelOrderCommand(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID(), " out of stock ")
	require.NoError(t, err)
	assert.Equal(t, "out of stock", cmd.Reason())
}

func TestNewAdvanceOrderCommand(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), order.Unknown, kernel.NewUUID(), "")
	require.Error(t, err)

	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), order.Confirmed, kernel.NewUUID(), " ok ")
	require.NoError(t, err)
	assert.Equal(t, "ok", cmd.Notes())
	assert.NoError(t, cmd.Validate())
}

func TestNewRequestAdditionalInfoCommand(t *testing.T) {
	_, err := commands.NewRequestAdditionalInfoCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewRequestAdditionalInfoCommand(kernel.NewUUID(), kernel.NewUUID(),
		"need insurance", []string{"insurance"}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestNewDecideApplicationCommand(t *testing.T) {
	_, err := commands.NewDecideApplicationCommand(kernel.UUID{}, kernel.NewUUID(), verification.StatusApproved, "", nil, nil)
	require.Error(t, err)

	cmd, err := commands.NewDecideApplicationCommand(kernel.NewUUID(), kernel.NewUUID(), verification.StatusRejected,
		" blurry ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "blurry", cmd.Comments())
	assert.Nil(t, cmd.DueDate())
}

func TestNewSuspendApplicationCommand(t *testing.T) {
	_, err := commands.NewSuspendApplicationCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestBatchCommands(t *testing.T) {
	_, err := commands.NewExpireInfoRequestsCommand(time.Now(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = commands.NewExpireInfoRequestsCommand(time.Time{}, 10)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	_, err = commands.NewRelayOutboxCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewRelayOutboxCommand(25)
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.BatchSize())
}
