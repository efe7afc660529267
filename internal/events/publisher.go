package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/escalamed/plantao/backend/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const QueueName = "schedule_events"

const (
	TypeScheduleCreated   = "schedule.created"
	TypeScheduleUpdated   = "schedule.updated"
	TypeScheduleDeleted   = "schedule.deleted"
	TypeExtraShiftAdded   = "extra_shift.added"
	TypeExtraShiftRemoved = "extra_shift.removed"
)

type Event struct {
	Type       string    `json:"type"`
	ScheduleID string    `json:"scheduleId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher publica eventos de mudança de escala na fila. A entrega das
// notificações fica com os consumidores, aqui o envio é só um efeito
// colateral das mutações. Um Publisher nulo descarta os eventos.
type Publisher struct {
	cfg     *config.Config
	channel *amqp.Channel
}

func NewPublisher(cfg *config.Config, channel *amqp.Channel) (*Publisher, error) {
	_, err := channel.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		cfg:     cfg,
		channel: channel,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, eventType, scheduleID string) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(Event{
		Type:       eventType,
		ScheduleID: scheduleID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
}
