package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/clinicdesk/scheduling/internal/model"
	"github.com/clinicdesk/scheduling/libs/kafkax"
	otelx "github.com/clinicdesk/scheduling/libs/otel"
)

const (
	TopicAppointmentCreated       = "scheduling.appointment.created.v1"
	TopicAppointmentStatusUpdated = "scheduling.appointment.status_updated.v1"
)

type event struct {
	id          string
	eventType   string
	key         string
	payload     []byte
	traceparent string
	tracestate  string
}

// Publisher pushes appointment lifecycle events to Kafka for downstream
// consumers (reminders, analytics). The store has no durable outbox, so
// delivery is best effort: events queue in memory and are dropped with a
// log line when the buffer fills. A publisher with no brokers configured
// is inert and safe to call.
type Publisher struct {
	logger  *slog.Logger
	brokers []string
	queue   chan event
}

func NewPublisher(logger *slog.Logger, brokers string, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		logger:  logger,
		brokers: kafkax.SplitBrokers(brokers),
		queue:   make(chan event, buffer),
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && len(p.brokers) > 0
}

func (p *Publisher) AppointmentCreated(ctx context.Context, appt model.Appointment) {
	p.enqueue(ctx, TopicAppointmentCreated, appt.ID, map[string]any{
		"appointment_id": appt.ID,
		"patient_name":   appt.PatientName,
		"doctor_name":    appt.DoctorName,
		"type":           appt.Type,
		"date":           appt.Date,
		"time":           appt.Time,
		"duration_mins":  appt.Duration,
		"mode":           appt.Mode,
		"status":         appt.Status,
	})
}

func (p *Publisher) AppointmentStatusUpdated(ctx context.Context, appt model.Appointment) {
	p.enqueue(ctx, TopicAppointmentStatusUpdated, appt.ID, map[string]any{
		"appointment_id": appt.ID,
		"doctor_name":    appt.DoctorName,
		"date":           appt.Date,
		"time":           appt.Time,
		"status":         appt.Status,
	})
}

func (p *Publisher) enqueue(ctx context.Context, eventType, key string, payload map[string]any) {
	if !p.Enabled() {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to build event payload", "err", err, "event_type", eventType)
		return
	}
	traceparent, tracestate := otelx.TraceContextStrings(ctx)
	ev := event{
		id:          uuid.NewString(),
		eventType:   eventType,
		key:         key,
		payload:     body,
		traceparent: traceparent,
		tracestate:  tracestate,
	}
	select {
	case p.queue <- ev:
	default:
		p.logger.Warn("event queue full; dropping event", "event_type", eventType, "key", key)
	}
}

// Run drains the queue until ctx is cancelled. Call it once from main.
func (p *Publisher) Run(ctx context.Context) {
	if !p.Enabled() {
		p.logger.Warn("event publisher disabled (no kafka brokers configured)")
		return
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  p.brokers,
		Balancer: &kafka.Hash{},
	})
	defer writer.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.queue:
			p.publish(ctx, writer, ev)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, ev event) {
	msgCtx := otelx.ContextWithTraceContext(ctx, ev.traceparent, ev.tracestate)
	msgCtx, span := otel.Tracer("events").Start(msgCtx, "publish "+ev.eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
	)
	defer span.End()

	msg := kafka.Message{
		Topic: ev.eventType,
		Key:   []byte(ev.key),
		Value: ev.payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.id)},
			{Key: "event_type", Value: []byte(ev.eventType)},
		},
	}
	msg.Headers = kafkax.InjectTraceHeaders(msgCtx, msg.Headers)

	if err := writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("event publish failed", "err", err, "event_type", ev.eventType, "key", ev.key)
	}
}
