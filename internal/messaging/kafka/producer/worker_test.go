package producer_test

import (
	"context"
	"errors"
	"testing"

	"company-employees/internal/messaging/kafka"
	"company-employees/internal/messaging/kafka/producer"
	"company-employees/internal/repository/repositorytest"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestProcessPendingEvents_PublishesAndMarksSent(t *testing.T) {
	db := repositorytest.NewDB(t)
	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	companyID := uuid.NewString()
	event := kafka.OutboxEvent{
		ID:            uuid.New(),
		RequestID:     "req-1",
		AggregateType: "company",
		AggregateID:   companyID,
		EventType:     "company_created",
		Topic:         "companies.lifecycle.v1",
		Payload:       []byte(`{"event_type":"company_created"}`),
		Status:        kafka.OutboxStatusPending,
	}
	require.NoError(t, db.Create(&event).Error)

	writer := &fakeWriter{}
	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "companies.lifecycle.v1", msg.Topic)
	assert.Equal(t, companyID, string(msg.Key))
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte("company_created")})
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})

	var stored kafka.OutboxEvent
	require.NoError(t, db.First(&stored, "id = ?", event.ID).Error)
	assert.Equal(t, kafka.OutboxStatusSent, stored.Status)
}

func TestProcessPendingEvents_WriteFailureMarksFailed(t *testing.T) {
	db := repositorytest.NewDB(t)
	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	event := kafka.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "employee",
		AggregateID:   uuid.NewString(),
		EventType:     "employee_deleted",
		Topic:         "companies.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
	require.NoError(t, db.Create(&event).Error)

	writer := &fakeWriter{err: errors.New("broker unavailable")}
	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	var stored kafka.OutboxEvent
	require.NoError(t, db.First(&stored, "id = ?", event.ID).Error)
	assert.Equal(t, kafka.OutboxStatusFailed, stored.Status)
	assert.Equal(t, "broker unavailable", stored.ErrorMessage)
}

func TestProcessPendingEvents_NothingPending(t *testing.T) {
	db := repositorytest.NewDB(t)

	writer := &fakeWriter{}
	sent, err := producer.ProcessPendingEvents(context.Background(), kafka.NewOutboxRepository(db), writer, zap.NewNop())

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, writer.messages)
}
