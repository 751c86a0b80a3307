package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	"github.com/xiebiao/library/pkg/mq"
)

func newEventsCommand(opts *options) *cobra.Command {
	var queue string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "订阅并打印借阅事件(RabbitMQ)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			slog.SetDefault(logger.New(cfg.Log, cmd.ErrOrStderr()))

			if !cfg.MQ.Enabled {
				return errors.New("mq.enabled=false,没有可订阅的事件")
			}
			if queue == "" {
				queue = cfg.MQ.Queue
			}

			routingKeys := make([]string, 0, len(event.AllTypes()))
			for _, t := range event.AllTypes() {
				routingKeys = append(routingKeys, string(t))
			}

			consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic, queue, routingKeys)
			if err != nil {
				return err
			}
			defer consumer.Close()

			return consumer.Consume(cmd.Context(), printEvent(opts.printer(cmd)))
		},
	}

	cmd.Flags().StringVar(&queue, "queue", "", "队列名(默认mq.queue)")
	return cmd
}

// printEvent 解析并打印事件,无法解析的消息直接丢弃(重新入队也无法处理)
func printEvent(p *printer) mq.Handler {
	return func(ctx context.Context, msg mq.Message) error {
		var e event.Event
		if err := json.Unmarshal(msg.Body, &e); err != nil {
			slog.WarnContext(ctx, "丢弃无法解析的事件", slog.String("routing_key", msg.RoutingKey), slog.Any("error", err))
			return nil
		}

		if p.json {
			return json.NewEncoder(p.w).Encode(e)
		}
		_, err := fmt.Fprintf(p.w, "%s\t%s\tmember=%s book=%d issue=%d\n",
			e.OccurredAt.Format("2006-01-02 15:04:05"), e.Type, e.MemberCode, e.BookID, e.IssueID)
		return err
	}
}
