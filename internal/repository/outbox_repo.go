package repository

import (
	"company-employees/internal/messaging/kafka"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	AddEvent(event *kafka.OutboxEvent)
}

type outboxRepository struct {
	Base[kafka.OutboxEvent]
}

func newOutboxRepository(s *session) OutboxRepository {
	return &outboxRepository{Base: newBase[kafka.OutboxEvent](s)}
}

// AddEvent stages the event so it commits together with the change that
// produced it.
func (r *outboxRepository) AddEvent(event *kafka.OutboxEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = kafka.OutboxStatusPending
	}
	r.Create(event)
}
