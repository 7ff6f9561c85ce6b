package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/pendaftaran/cmd/config"
	"github.com/muhammadheryan/pendaftaran/model"
	"github.com/muhammadheryan/pendaftaran/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pendaftaran/utils/logger"
	"go.uber.org/zap"
)

// audit writes every registration event it receives to the log.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.RabbitMQ.Host == "" {
		logger.Fatal("RABBITMQ_HOST is required")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, logEvent)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Audit consumer running")

	select {
	case <-ctx.Done():
		logger.Info("Shutting down audit consumer")
	case <-done:
		logger.Warn("Audit consumer stopped, channel closed")
	}
}

func logEvent(_ context.Context, msg model.PendaftaranEventMessage) error {
	fields := []zap.Field{
		zap.String("event", string(msg.Event)),
		zap.Time("occurred_at", msg.OccurredAt),
	}
	// created events have no id
	if msg.PendaftaranID != 0 {
		fields = append(fields, zap.Uint64("id_pendaftaran", msg.PendaftaranID))
	}
	logger.Info("pendaftaran event", fields...)
	return nil
}
