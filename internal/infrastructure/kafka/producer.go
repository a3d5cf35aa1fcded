package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Поля сообщения о событии
const (
	FieldEventID    = "event_id"
	FieldEventType  = "event_type"
	FieldOccurredAt = "occurred_at"
	FieldAttributes = "attributes"
)

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// WriteMessage публикует событие. Ключ сообщения - ID события.
func (p *Producer) WriteMessage(ctx context.Context, event *domain.Event) error {
	value, err := EncodeEvent(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
	})
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// EncodeEvent сериализует событие в google.protobuf.Struct.
func EncodeEvent(event *domain.Event) ([]byte, error) {
	const op = "kafka.EncodeEvent"

	attributes, err := structpb.NewStruct(event.Attributes)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldEventID:    structpb.NewStringValue(event.ID),
			FieldEventType:  structpb.NewStringValue(event.Type),
			FieldOccurredAt: structpb.NewStringValue(event.OccurredAt.Format(time.RFC3339Nano)),
			FieldAttributes: structpb.NewStructValue(attributes),
		},
	}

	return proto.Marshal(payload)
}

// DecodeEvent разбирает сообщение, записанное EncodeEvent.
// Числовые атрибуты возвращаются как float64.
func DecodeEvent(data []byte) (*domain.Event, error) {
	const op = "kafka.DecodeEvent"

	var payload structpb.Struct
	if err := proto.Unmarshal(data, &payload); err != nil {
		return nil, e.Wrap(op, err)
	}

	fields := payload.GetFields()
	occurredAt, err := time.Parse(time.RFC3339Nano, fields[FieldOccurredAt].GetStringValue())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.Event{
		ID:         fields[FieldEventID].GetStringValue(),
		Type:       fields[FieldEventType].GetStringValue(),
		OccurredAt: occurredAt,
		Attributes: fields[FieldAttributes].GetStructValue().AsMap(),
	}, nil
}
