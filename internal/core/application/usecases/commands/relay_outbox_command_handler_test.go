package commands_test

import (
	"errors"
	"testing"
	"time"

	"packflow/internal/core/application/usecases/commands"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/ports"
	"packflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRelayOutboxCommand(t *testing.T) {
	t.Run("should reject a batch size out of range", func(t *testing.T) {
		_, err := commands.NewRelayOutboxCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a literal command", func(t *testing.T) {
		assert.ErrorIs(t, commands.RelayOutboxCommand{}.Validate(), commands.ErrRelayOutboxCommandIsNotConstructed)
	})
}

func TestRelayOutboxCommandHandler_Handle(t *testing.T) {
	messages := func() []ports.OutboxMessage {
		return []ports.OutboxMessage{
			{ID: kernel.NewUUID(), Name: "order.submitted", AggregateID: kernel.NewUUID(), OccurredAt: time.Now()},
			{ID: kernel.NewUUID(), Name: "order.advanced", AggregateID: kernel.NewUUID(), OccurredAt: time.Now()},
		}
	}

	t.Run("should publish in order and acknowledge the batch", func(t *testing.T) {
		ctx := t.Context()
		batch := messages()
		cmd, err := commands.NewRelayOutboxCommand(50)
		require.NoError(t, err)

		repo := new(MockOutboxRepository)
		publisher := new(MockEventPublisher)
		uow := new(MockUoW)
		uow.On("OutboxRepository").Return(repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Pending", ctx, 50).Return(batch, nil).Once(),
			publisher.On("Publish", ctx, batch[0]).Return(nil).Once(),
			publisher.On("Publish", ctx, batch[1]).Return(nil).Once(),
			repo.On("MarkPublished", ctx, []kernel.UUID{batch[0].ID, batch[1].ID}, mock.AnythingOfType("time.Time")).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOutboxUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRelayOutboxCommandHandler(factory, publisher)
		n, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should acknowledge what was published before a failure", func(t *testing.T) {
		ctx := t.Context()
		batch := messages()
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		brokerDown := errors.New("broker down")

		repo := new(MockOutboxRepository)
		publisher := new(MockEventPublisher)
		uow := new(MockUoW)
		uow.On("OutboxRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Pending", ctx, 10).Return(batch, nil).Once()
		publisher.On("Publish", ctx, batch[0]).Return(nil).Once()
		publisher.On("Publish", ctx, batch[1]).Return(brokerDown).Once()
		repo.On("MarkPublished", ctx, []kernel.UUID{batch[0].ID}, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOutboxUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRelayOutboxCommandHandler(factory, publisher)
		n, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, brokerDown)
		assert.Equal(t, 1, n)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should report an empty outbox without committing", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)

		repo := new(MockOutboxRepository)
		uow := new(MockUoW)
		uow.On("OutboxRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Pending", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOutboxUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRelayOutboxCommandHandler(factory, new(MockEventPublisher))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOutboxIsEmpty)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
