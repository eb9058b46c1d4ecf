package service

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	catalogRepo "github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

// Journal is the audit trail writer behind activity logging.
type Journal interface {
	Record(ctx context.Context, entry model.ActivityLogEntry) error
}

type storeJournal struct {
	repo catalogRepo.ActivityRepository
}

func NewStoreJournal(repo catalogRepo.ActivityRepository) Journal {
	return &storeJournal{repo: repo}
}

func (j *storeJournal) Record(ctx context.Context, entry model.ActivityLogEntry) error {
	return j.repo.AddActivity(ctx, entry)
}

// kafkaJournal publishes entries to the activity topic, keyed by book id.
type kafkaJournal struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
}

func NewKafkaJournal(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Journal {
	return &kafkaJournal{
		producer: producer,
		cb:       cb,
		topic:    kafka.ActivityTopic,
	}
}

func (j *kafkaJournal) Record(_ context.Context, entry model.ActivityLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: j.topic,
		Key:   sarama.StringEncoder(entry.BookID),
		Value: sarama.ByteEncoder(data),
	}
	return j.cb.Call(func() error {
		if _, _, err := j.producer.SendMessage(msg); err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		return nil
	})
}

// StoreActivity persists an entry that arrived from the activity topic.
func (s *Service) StoreActivity(ctx context.Context, entry model.ActivityLogEntry) error {
	return s.repo.AddActivity(ctx, entry)
}
