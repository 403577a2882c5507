package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cascade-freight/chatbot-service/internal/auditlog"
	"github.com/cascade-freight/chatbot-service/internal/chatbot"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	"github.com/cascade-freight/chatbot-service/internal/refdata"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

type stubDelegate struct {
	reply string
	err   error
	calls int
}

func (s *stubDelegate) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func testChatService(t *testing.T, delegate Delegate) (*ChatService, auditlog.Log) {
	t.Helper()

	ref := refdata.NewSeeded()
	log := auditlog.NewMemoryLog()
	svc := NewChatService(ChatDependencies{
		Generators: chatbot.NewGenerators(ref),
		RefData:    ref,
		AuditLog:   log,
		Delegate:   delegate,
		Logger:     zap.NewNop(),
	})
	return svc, log
}

func testUser() *domain.User {
	return &domain.User{Username: "alext", FullName: "Alex Torres", Role: domain.RoleDispatcher}
}

func TestHandleEmptyMessage(t *testing.T) {
	svc, log := testChatService(t, nil)

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Handle(context.Background(), testUser(), message)
		require.Error(t, err)

		var domainErr *apperrors.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "EMPTY_MESSAGE", domainErr.Code)
	}

	// terminal failures leave no log entry
	assert.Equal(t, 0, log.Len())
}

func TestHandleAppendsOneEntryPerCall(t *testing.T) {
	svc, log := testChatService(t, nil)

	messages := []string{"Track shipment CFS-1001", "Contact HR", "hello"}
	for _, m := range messages {
		result, err := svc.Handle(context.Background(), testUser(), m)
		require.NoError(t, err)
		require.NotEmpty(t, result.Reply)
	}

	entries := log.Recent(0)
	require.Len(t, entries, len(messages))

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.Before(entries[i-1].Timestamp),
			"timestamps must be monotonically non-decreasing")
	}
	for i, entry := range entries {
		assert.Equal(t, messages[i], entry.Message)
		assert.Equal(t, "alext", entry.Username)
		assert.False(t, entry.UsedAI)
	}
}

func TestHandleWithoutDelegateUsesRules(t *testing.T) {
	svc, _ := testChatService(t, nil)

	result, err := svc.Handle(context.Background(), testUser(), "Track shipment CFS-1002")
	require.NoError(t, err)
	assert.Equal(t, domain.TopicShipmentTracking, result.Topic)
	assert.Equal(t, domain.RoleDispatcher, result.Role)
	assert.False(t, result.UsedAI)
	assert.Contains(t, result.Reply, "Delayed")
}

func TestHandleDelegateSuccess(t *testing.T) {
	delegate := &stubDelegate{reply: "CFS-1001 is in transit to Portland."}
	svc, log := testChatService(t, delegate)

	result, err := svc.Handle(context.Background(), testUser(), "Track shipment CFS-1001")
	require.NoError(t, err)
	assert.Equal(t, 1, delegate.calls)
	assert.True(t, result.UsedAI)
	assert.Equal(t, delegate.reply, result.Reply)

	entries := log.Recent(1)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].UsedAI)
}

func TestHandleDelegateFailureFallsBack(t *testing.T) {
	delegate := &stubDelegate{err: errors.New("connection refused")}
	svc, log := testChatService(t, delegate)

	result, err := svc.Handle(context.Background(), testUser(), "Track shipment CFS-1002")
	require.NoError(t, err, "delegate failures must never surface to the caller")
	assert.Equal(t, 1, delegate.calls)
	assert.False(t, result.UsedAI)

	// the fallback answer matches what the generators produce directly
	rules := chatbot.NewGenerators(refdata.NewSeeded())
	want := rules.Reply(domain.TopicShipmentTracking, "Track shipment CFS-1002", domain.RoleDispatcher)
	assert.Equal(t, want, result.Reply)

	entries := log.Recent(1)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].UsedAI)
}
