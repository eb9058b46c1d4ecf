package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

type storeActivity func(ctx context.Context, entry model.ActivityLogEntry) error

// Consumer drains the activity topic into the activity store.
type Consumer struct {
	storeActivityHandler storeActivity
	log                  *zap.Logger
	ready                chan bool
}

func NewConsumer(storeActivity storeActivity, log *zap.Logger) *Consumer {
	return &Consumer{
		storeActivityHandler: storeActivity,
		log:                  log.Named("consumer"),
		ready:                make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var entry model.ActivityLogEntry
			if err := json.Unmarshal(message.Value, &entry); err != nil {
				consumer.log.Error("bad activity message", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			// stop the claim without marking: the group rejoins from the last
			// committed offset and the entry is delivered again
			if err := consumer.storeActivityHandler(session.Context(), entry); err != nil {
				consumer.log.Error("consumer.storeActivityHandler", zap.Error(err), zap.String("id", entry.ID))
				return errors.Wrapf(err, "store activity %s at offset %d", entry.ID, message.Offset)
			}

			consumer.log.Debug("activity stored",
				zap.String("id", entry.ID),
				zap.String("action", string(entry.ActionType)),
				zap.Time("timestamp", message.Timestamp))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
