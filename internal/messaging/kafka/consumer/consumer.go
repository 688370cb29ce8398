package consumer

import (
	"company-employees/internal/bootstrap"
	"company-employees/internal/events"
	"company-employees/internal/shared/contextutil"
	"context"
	"encoding/json"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLifecycle records every company and employee lifecycle event in the
// audit log. Undecodable messages are committed and skipped.
func ConsumeLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.Envelope
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventType == "" {
			log.Error("decode lifecycle event failed", zap.ByteString("key", msg.Key), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		meta := map[string]any{
			"company_id":  event.CompanyID,
			"occurred_at": event.OccurredAt,
			"partition":   msg.Partition,
			"offset":      msg.Offset,
		}
		if event.EmployeeID != "" {
			meta["employee_id"] = event.EmployeeID
		}

		audit.Log(contextutil.WithRequestID(ctx, event.RequestID), bootstrap.AuditLog{
			Action:  strings.ToUpper(event.EventType),
			Message: "lifecycle event received",
			Meta:    meta,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}
	}
}
