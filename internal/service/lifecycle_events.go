package service

import (
	"company-employees/internal/domain"
	"company-employees/internal/events"
	"company-employees/internal/messaging/kafka"
	"company-employees/internal/repository"
	"company-employees/internal/shared/apperror"
	"company-employees/internal/shared/contextutil"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

var now = time.Now

// stageCompanyEvent queues a lifecycle event in the outbox of repos; it is
// committed by the same Save as the company change.
func stageCompanyEvent(ctx context.Context, repos repository.Manager, eventType string, c domain.Company) error {
	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.CompanyLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		CompanyID:  c.ID.String(),
		Name:       c.Name,
		OccurredAt: now().UTC(),
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode event", http.StatusInternalServerError)
	}

	repos.Outbox().AddEvent(&kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: events.AggregateCompany,
		AggregateID:   c.ID.String(),
		EventType:     eventType,
		Topic:         events.LifecycleTopic,
		Payload:       payload,
	})
	return nil
}

func stageEmployeeEvent(ctx context.Context, repos repository.Manager, eventType string, e domain.Employee) error {
	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		OccurredAt: now().UTC(),
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode event", http.StatusInternalServerError)
	}

	repos.Outbox().AddEvent(&kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: events.AggregateEmployee,
		AggregateID:   e.ID.String(),
		EventType:     eventType,
		Topic:         events.LifecycleTopic,
		Payload:       payload,
	})
	return nil
}
