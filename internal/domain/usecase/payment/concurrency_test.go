package payment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	persistencemocks "github.com/artify-ai/artify-backend/mocks/port/persistence"
	providermocks "github.com/artify-ai/artify-backend/mocks/port/provider"
)

// pendingPurchase mimics the ledger's resolve-pending semantics: the status
// flip and the balance credit happen under one lock, and only a pending row
// can be resolved.
type pendingPurchase struct {
	mu      sync.Mutex
	status  entity.TransactionStatus
	balance int64
	credits int64
}

func (p *pendingPurchase) snapshot(externalID string) *entity.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &entity.Transaction{
		ID:         7,
		UserID:     42,
		Type:       entity.TypePurchase,
		Amount:     p.credits,
		Status:     p.status,
		ExternalID: &externalID,
	}
}

func (p *pendingPurchase) resolve(externalID string) (*entity.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != entity.StatusPending {
		return nil, errs.ErrTransactionNotFound
	}
	p.status = entity.StatusCompleted
	p.balance += p.credits
	return &entity.Transaction{
		ID:         7,
		UserID:     42,
		Type:       entity.TypePurchase,
		Amount:     p.credits,
		Status:     p.status,
		ExternalID: &externalID,
	}, nil
}

func TestReconcilerConcurrentDeliveriesCreditOnce(t *testing.T) {
	const (
		externalID = "chk_concurrent"
		deliveries = 10
	)

	purchase := &pendingPurchase{status: entity.StatusPending, credits: 50}

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	mockGateway := providermocks.NewMockPaymentProvider(t)
	mockGateway.EXPECT().Name().Return("stripe").Maybe()
	mockGateway.EXPECT().VerifyAndParseWebhook(mock.Anything, mock.Anything).
		Return(&provider.WebhookEvent{ExternalID: externalID, Status: "checkout.session.completed"}, nil).Maybe()

	mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
	mockTxnRepo.EXPECT().GetByExternalID(mock.Anything, externalID).
		RunAndReturn(func(ctx context.Context, id string) (*entity.Transaction, error) {
			return purchase.snapshot(id), nil
		}).Maybe()

	mockLedger := persistencemocks.NewMockLedgerStore(t)
	mockLedger.EXPECT().ResolvePending(mock.Anything, externalID, persistence.OutcomeCompleted).
		RunAndReturn(func(ctx context.Context, id string, _ persistence.PendingOutcome) (*entity.Transaction, error) {
			return purchase.resolve(id)
		}).Maybe()

	reconciler := NewReconciler(mockLedger, mockTxnRepo, mockGateway, mockLogger)

	type delivery struct {
		result *ReconcileResult
		err    error
	}

	results := make(chan delivery, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := reconciler.Handle(context.Background(), []byte(`{}`), "sig")
			results <- delivery{result: result, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var applied int
	for d := range results {
		require.NoError(t, d.err)
		assert.Equal(t, externalID, d.result.ExternalID)
		assert.Equal(t, OutcomeSuccess, d.result.Outcome)
		if d.result.Applied {
			applied++
		}
	}

	assert.Equal(t, 1, applied)
	assert.Equal(t, int64(50), purchase.balance)
}
