package payment

import (
	"context"
	"testing"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	persistencemocks "github.com/artify-ai/artify-backend/mocks/port/persistence"
	providermocks "github.com/artify-ai/artify-backend/mocks/port/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcilerHandle(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)
	signature := "t=123,v1=abc"
	token := "chk_abc"

	pendingPurchase := func() *entity.Transaction {
		return &entity.Transaction{
			ID:         1,
			UserID:     42,
			Type:       entity.TypePurchase,
			Amount:     100,
			Status:     entity.StatusPending,
			ExternalID: &token,
		}
	}

	setup := func(t *testing.T) (*persistencemocks.MockLedgerStore, *persistencemocks.MockTransactionRepository, *providermocks.MockPaymentProvider, *coremocks.MockLogger, *Reconciler) {
		mockLedger := persistencemocks.NewMockLedgerStore(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockGateway := providermocks.NewMockPaymentProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockGateway.EXPECT().Name().Return("stripe").Maybe()

		reconciler := NewReconciler(mockLedger, mockRepo, mockGateway, mockLogger)
		return mockLedger, mockRepo, mockGateway, mockLogger, reconciler
	}

	t.Run("Successful payment credits the balance", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "checkout.session.completed"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(pendingPurchase(), nil).Once()
		mockLedger.EXPECT().ResolvePending(mock.Anything, token, persistence.OutcomeCompleted).
			Return(pendingPurchase(), nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.True(t, result.Applied)
		assert.Equal(t, token, result.ExternalID)
	})

	t.Run("Failed payment resolves without credit", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "cancelled"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(pendingPurchase(), nil).Once()
		mockLedger.EXPECT().ResolvePending(mock.Anything, token, persistence.OutcomeFailed).
			Return(pendingPurchase(), nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeFailure, result.Outcome)
		assert.True(t, result.Applied)
	})

	t.Run("Invalid signature returns error", func(t *testing.T) {
		_, _, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, "bad").
			Return(nil, errs.ErrInvalidSignature).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, "bad")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Malformed payload returns error", func(t *testing.T) {
		_, _, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(nil, errs.ErrMalformedPayload).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMalformedPayload)
	})

	t.Run("Unknown token is acknowledged", func(t *testing.T) {
		_, mockRepo, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: "chk_unknown", Status: "completed"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, "chk_unknown").
			Return(nil, errs.ErrTransactionNotFound).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeUnknown, result.Outcome)
		assert.False(t, result.Applied)
	})

	t.Run("Replay for completed transaction is acknowledged without mutation", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, mockLogger, reconciler := setup(t)

		completed := pendingPurchase()
		completed.Status = entity.StatusCompleted

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "completed"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(completed, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.False(t, result.Applied)
		mockLedger.AssertNotCalled(t, "ResolvePending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unrecognized status is acknowledged without mutation", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, mockLogger, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "checkout.session.async_payment_processing"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(pendingPurchase(), nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeUnknown, result.Outcome)
		assert.False(t, result.Applied)
		mockLedger.AssertNotCalled(t, "ResolvePending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent delivery resolved first is acknowledged", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, _, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "completed"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(pendingPurchase(), nil).Once()
		mockLedger.EXPECT().ResolvePending(mock.Anything, token, persistence.OutcomeCompleted).
			Return(nil, errs.ErrTransactionNotFound).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		require.NoError(t, err)
		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.False(t, result.Applied)
	})

	t.Run("Ledger unavailability returns error for redelivery", func(t *testing.T) {
		mockLedger, mockRepo, mockGateway, _, reconciler := setup(t)

		mockGateway.EXPECT().VerifyAndParseWebhook(payload, signature).
			Return(&provider.WebhookEvent{ExternalID: token, Status: "completed"}, nil).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, token).Return(pendingPurchase(), nil).Once()
		mockLedger.EXPECT().ResolvePending(mock.Anything, token, persistence.OutcomeCompleted).
			Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := reconciler.Handle(ctx, payload, signature)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
