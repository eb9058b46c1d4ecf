package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/server"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/catalog/migrations"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	db, repo, err := openStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("store init", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth)
	opts := []service.Option{service.WithTokenIssuer(tokens)}

	var (
		producer      sarama.SyncProducer
		consumer      sarama.ConsumerGroup
		stopConsuming = func() {}
	)
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		opts = append(opts, service.WithJournal(
			service.NewKafkaJournal(producer, circuit_breaker.New(cfg.CircuitBreaker))))
	}
	svc := service.NewService(repo, log, opts...)

	if cfg.Kafka.Enabled() {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.ActivityConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		var consumeCtx context.Context
		consumeCtx, stopConsuming = context.WithCancel(context.Background())
		c := handler.NewConsumer(svc.StoreActivity, log)
		go kafka.Consume(consumeCtx, consumer, c, log, kafka.ActivityTopic)
		go func() {
			select {
			case <-c.Ready():
				log.Info("activity consumer ready", zap.Strings("brokers", cfg.Kafka.Addrs))
			case <-consumeCtx.Done():
			}
		}()
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(tokens))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsuming()
	if consumer != nil {
		if err = consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// AddUser creates an account that can sign in.
func AddUser(ctx context.Context, cfg *config.Config, log *zap.Logger, email, password string, admin bool) error {
	svc, closeStore, err := newService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	user, err := svc.AddUser(ctx, email, password, admin)
	if err != nil {
		return errors.Wrap(err, "add user")
	}
	log.Info("user added", zap.String("email", user.Email), zap.Bool("admin", user.Admin))
	return nil
}

// GrantAdmin sets the admin claim on an existing account.
func GrantAdmin(ctx context.Context, cfg *config.Config, log *zap.Logger, email string) error {
	svc, closeStore, err := newService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.GrantAdmin(ctx, email); err != nil {
		return errors.Wrapf(err, "grant admin to %s", email)
	}
	log.Info("admin granted", zap.String("email", email))
	return nil
}

func newService(ctx context.Context, cfg *config.Config, log *zap.Logger) (*service.Service, func(), error) {
	db, repo, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return service.NewService(repo, log), db.Close, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, repository.Repository, error) {
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "repo")
	}
	return db, repo, nil
}
