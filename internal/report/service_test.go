package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *storage.SQLiteStorage) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store), store
}

func TestService_DebitCredit(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SavePaymentIn(ctx, &model.PaymentIn{
		Date: date, Amount: 5000, Client: "Ivanov", Teacher: "Petrov",
		ChatKind: model.ChatKindRU, MessageID: 1, ChatID: 10,
	}))
	require.NoError(t, store.SavePaymentIn(ctx, &model.PaymentIn{
		Date: date, Amount: 2000, Client: "Smith", Teacher: "Jones",
		ChatKind: model.ChatKindENG, MessageID: 2, ChatID: 11,
	}))
	require.NoError(t, store.SavePaymentOut(ctx, &model.PaymentOut{
		Date: date, Amount: 3000, Category: "Salary", Recipient: "Sidorov",
		MessageID: 3, ChatID: 12,
	}))

	summary, err := svc.DebitCredit(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 7000, summary.TotalIncoming, 1e-9)
	assert.InDelta(t, 3000, summary.TotalOutgoing, 1e-9)
	assert.Equal(t, 2, summary.IncomingCount)
	assert.Equal(t, 1, summary.OutgoingCount)
	assert.InDelta(t, 4000, summary.Balance(), 1e-9)
}

func TestService_LastRecords_Empty(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LastIncoming(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.LastOutgoing(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestService_PeriodRecords(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	inside := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SavePaymentIn(ctx, &model.PaymentIn{
		Date: inside, Amount: 5000, Client: "Ivanov", Teacher: "Petrov",
		ChatKind: model.ChatKindRU, MessageID: 1, ChatID: 10,
	}))
	require.NoError(t, store.SavePaymentIn(ctx, &model.PaymentIn{
		Date: outside, Amount: 100, Client: "Old", Teacher: "Old",
		ChatKind: model.ChatKindRU, MessageID: 2, ChatID: 10,
	}))
	require.NoError(t, store.SavePaymentOut(ctx, &model.PaymentOut{
		Date: inside, Amount: 3000, Category: "Rent", Recipient: "Landlord",
		MessageID: 3, ChatID: 12,
	}))

	p := CurrentMonth(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))
	incoming, outgoing, err := svc.PeriodRecords(ctx, p.Start, p.End)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Len(t, outgoing, 1)
	assert.Equal(t, "Ivanov", incoming[0].Client)
	assert.Equal(t, "Rent", outgoing[0].Category)
}
