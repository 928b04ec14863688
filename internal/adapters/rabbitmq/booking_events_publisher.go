package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKeyBookingRequested - ключ маршрутизации событий о новых запросах на бронирование.
const RoutingKeyBookingRequested = "booking.requested"

const publishTimeout = 10 * time.Second

// MessagePublisher - часть rabbitmq_producer.Publisher, которая нужна адаптеру.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
	Close() error
}

// BookingEventPublisher - реализация BookingEventPublisherPort для RabbitMQ.
type BookingEventPublisher struct {
	producer   MessagePublisher
	routingKey string
}

func NewBookingEventPublisher(producer MessagePublisher, routingKey string) (*BookingEventPublisher, error) {
	if producer == nil {
		return nil, errors.New("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		routingKey = RoutingKeyBookingRequested
	}
	return &BookingEventPublisher{producer: producer, routingKey: routingKey}, nil
}

func (a *BookingEventPublisher) PublishBookingRequested(ctx context.Context, event domain.BookingRequestedEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "BookingEventPublisher",
		"routing_key": a.routingKey,
		"booking_id":  event.BookingID,
	})

	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal booking event", err, nil)
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		MessageId:    event.BookingID,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish booking event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish booking event %s: %w", event.BookingID, err)
	}

	adapterLogger.Info("Booking event published", port.Fields{"landlord_id": event.LandlordID})
	return nil
}

func (a *BookingEventPublisher) Close() error {
	return a.producer.Close()
}

// LogEventPublisher используется, когда брокер отключен: событие только пишется в лог.
type LogEventPublisher struct{}

func (LogEventPublisher) PublishBookingRequested(ctx context.Context, event domain.BookingRequestedEvent) error {
	contextkeys.LoggerFromContext(ctx).Info("Booking event (broker disabled)", port.Fields{
		"component":   "LogEventPublisher",
		"booking_id":  event.BookingID,
		"property_id": event.PropertyID,
		"landlord_id": event.LandlordID,
	})
	return nil
}

func (LogEventPublisher) Close() error { return nil }
