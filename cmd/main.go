package main

import (
	"net/http"

	nilaiapp "github.com/muhammadheryan/pendaftaran/application/nilai"
	pendaftaranapp "github.com/muhammadheryan/pendaftaran/application/pendaftaran"
	"github.com/muhammadheryan/pendaftaran/cmd/config"
	redisclient "github.com/muhammadheryan/pendaftaran/cmd/redis"
	_ "github.com/muhammadheryan/pendaftaran/docs"
	lockRepo "github.com/muhammadheryan/pendaftaran/repository/lock"
	nilaiRepo "github.com/muhammadheryan/pendaftaran/repository/nilai"
	pendaftaranRepo "github.com/muhammadheryan/pendaftaran/repository/pendaftaran"
	redisRepo "github.com/muhammadheryan/pendaftaran/repository/redis"
	"github.com/muhammadheryan/pendaftaran/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pendaftaran/thirdparty/restapi"
	"github.com/muhammadheryan/pendaftaran/transport"
	"github.com/muhammadheryan/pendaftaran/utils/logger"
	"go.uber.org/zap"
)

// @title PENDAFTARAN API
// @version 1.0
// @description PENDAFTARAN API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Submission locks live in Redis when it is configured, in memory otherwise
	var LockRepo lockRepo.LockRepository
	if redisclient.Enabled(cfg) {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		LockRepo = lockRepo.NewRedisLockRepository(redisRepo.NewRepository(), cfg.Form.SubmissionLockTTL)
	} else {
		logger.Warn("REDIS_HOST not set, using in-memory submission locks")
		LockRepo = lockRepo.NewMemoryLockRepository(cfg.Form.SubmissionLockTTL)
	}

	// Events are optional; without RabbitMQ mutations are only logged
	var publisher pendaftaranapp.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	PendaftaranRepo := pendaftaranRepo.NewPendaftaranRepository(restapi.NewClient(cfg.API.PendaftaranURL, cfg.API.Timeout))
	NilaiRepo := nilaiRepo.NewNilaiRepository(restapi.NewClient(cfg.API.NilaiURL, cfg.API.Timeout))

	// Initialize application layers
	PendaftaranApp := pendaftaranapp.NewPendaftaranApp(PendaftaranRepo, LockRepo, publisher)
	NilaiApp := nilaiapp.NewNilaiApp(NilaiRepo)

	httpTransport := transport.NewTransport(transport.Options{
		RedirectDelay: cfg.Form.RedirectDelay,
		Location:      cfg.Form.DisplayLocation,
	}, PendaftaranApp, NilaiApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running",
		zap.String("port", cfg.Server.Port),
		zap.String("pendaftaran_api", cfg.API.PendaftaranURL),
		zap.String("nilai_api", cfg.API.NilaiURL),
	)
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
