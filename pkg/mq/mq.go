// Package mq 基于RabbitMQ的消息发布与消费
//
// 借阅事件通过Topic Exchange发布：
//
//	Publisher ──(routing key: issue.created)──> Exchange(library.events, topic)
//	                                               │
//	                          binding: issue.* ────┴──> Queue ──> Consumer
//
// 通配符：* 匹配一个单词，# 匹配零个或多个单词。
// 消息以JSON持久化投递，消费端手动Ack，处理失败Nack并重新入队。
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xiebiao/library/pkg/metrics"
)

// ExchangeTopic Topic类型Exchange
const ExchangeTopic = "topic"

// ErrChannelClosed 消息Channel被服务端关闭
var ErrChannelClosed = errors.New("消息Channel已关闭")

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher 连接RabbitMQ并声明持久化Exchange
func NewPublisher(url, exchange, exchangeType string) (*Publisher, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	slog.Info("✓ 消息发布者已创建", slog.String("exchange", exchange), slog.String("type", exchangeType))

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish 以JSON格式发布消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)

	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.InitMetrics()
	metrics.MessagesPublishedTotal.WithLabelValues(p.exchange, routingKey, result).Inc()

	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	slog.Debug("消息已发布", slog.String("routing_key", routingKey), slog.String("body", string(body)))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

// Message 消费到的消息
type Message struct {
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// Handler 消息处理函数,返回error时消息重新入队
type Handler func(ctx context.Context, msg Message) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewConsumer 声明Queue并按routingKeys绑定到Exchange
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string) (*Consumer, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	q, err := channel.QueueDeclare(
		queue,
		true,  // Durable
		false, // AutoDelete
		false, // Exclusive
		false, // NoWait
		nil,
	)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, routingKey := range routingKeys {
		if err := channel.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			_ = closeAll(channel, conn)
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	slog.Info("✓ 消息消费者已创建", slog.String("queue", q.Name), slog.Any("routing_keys", routingKeys))

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
	}, nil
}

// Consume 阻塞消费消息,直到ctx取消
// 每次只预取1条,处理成功Ack,失败Nack并重新入队
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	deliveries, err := c.channel.Consume(
		c.queue,
		"",    // Consumer标签（自动生成）
		false, // AutoAck
		false, // Exclusive
		false, // NoLocal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	slog.Info("开始消费消息", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			slog.Info("消费者退出", slog.String("queue", c.queue))
			return nil

		case d, ok := <-deliveries:
			if !ok {
				return ErrChannelClosed
			}
			c.handle(ctx, d, handler)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	metrics.InitMetrics()

	msg := Message{RoutingKey: d.RoutingKey, Body: d.Body, Timestamp: d.Timestamp}
	if err := handler(ctx, msg); err != nil {
		slog.Warn("消息处理失败,重新入队",
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err),
		)
		metrics.MessagesConsumedTotal.WithLabelValues(c.queue, "failure").Inc()
		_ = d.Nack(false, true)
		return
	}

	metrics.MessagesConsumedTotal.WithLabelValues(c.queue, "success").Inc()
	_ = d.Ack(false)
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

// open 建立连接、创建Channel并声明Exchange
func open(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	return conn, channel, nil
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	var errs []error
	if channel != nil {
		if err := channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
