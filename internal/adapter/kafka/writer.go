package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/ballpark-weather/internal/config"
	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// Writer produces carry reports to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic. Reports
// are keyed by game ID so every update for a game lands on one partition, in
// publish order. The report ID travels in the value and the report_id header.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes reports in a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, reports []domain.GameReport) error {
	if len(reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(reports))
	for i := range reports {
		msg, err := serializeToMessage(reports[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d reports: %w", len(msgs), err)
	}
	w.logger.Debug("reports published", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a GameReport into a Kafka message.
func serializeToMessage(report domain.GameReport) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize game report: %w", err)
	}
	headers := []kafkago.Header{
		{Key: "report_id", Value: []byte(report.ID)},
		{Key: "venue", Value: []byte(report.Game.Venue)},
		{Key: "evaluated_at", Value: []byte(report.EvaluatedAt.Format(time.RFC3339))},
	}
	if c := report.Evaluation.Carry; c != nil {
		headers = append(headers, kafkago.Header{Key: "outlook", Value: []byte(c.Description)})
	}
	return kafkago.Message{
		Key:     []byte(report.Game.ID),
		Value:   data,
		Headers: headers,
	}, nil
}
