package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"packflow/internal/adapters/in/http"
	"packflow/internal/adapters/out/jwtauth"
	"packflow/internal/adapters/out/kafka"
	"packflow/internal/adapters/out/postgres"
	"packflow/internal/adapters/out/postgres/userrepo"
	"packflow/internal/adapters/out/rabbitmq"
	"packflow/internal/adapters/out/redis/identitycache"
	"packflow/internal/core/application/usecases/commands"
	"packflow/internal/core/application/usecases/queries"
	"packflow/internal/core/domain/services"
	"packflow/internal/core/ports"
	"packflow/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       services.StageGate

	redis     redis.UniversalClient
	publisher ports.EventPublisher
}

// NewCompositionRoot connects the outbound clients the process owns. Redis is
// optional; without REDIS_ADDR actors are read straight from postgres.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewStageGate(),
	}

	if cfg.RedisAddr != "" {
		c.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	switch cfg.EventsBroker {
	case BrokerKafka:
		c.publisher = kafka.NewPublisher(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
	case BrokerRabbitMQ:
		publisher, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		c.publisher = publisher
	}

	return c, nil
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	if c.publisher != nil {
		closeErrs = append(closeErrs, c.publisher.Close())
	}
	if c.redis != nil {
		closeErrs = append(closeErrs, c.redis.Close())
	}
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() *commands.SubmitOrderCommandHandler {
	h := commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.gate)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() *commands.AdvanceOrderCommandHandler {
	h := commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.gate)
	return &h
}

func (c *CompositionRoot) CreateRaiseComplaintCommandHandler() *commands.RaiseComplaintCommandHandler {
	h := commands.NewRaiseComplaintCommandHandler(c.complaintUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateResolveComplaintCommandHandler() *commands.ResolveComplaintCommandHandler {
	h := commands.NewResolveComplaintCommandHandler(c.complaintUoWFactory(), c.gate)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderHistoryQueryHandler() queries.OrderHistoryQueryHandler {
	return queries.NewOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersSummaryQueryHandler() queries.OrdersSummaryQueryHandler {
	return queries.NewOrdersSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListComplaintsQueryHandler() queries.ListComplaintsQueryHandler {
	return queries.NewListComplaintsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetComplaintQueryHandler() queries.GetComplaintQueryHandler {
	return queries.NewGetComplaintQueryHandler(c.gormDB)
}

// CreateActorDirectory returns the postgres directory, fronted by the redis
// cache when one is configured.
func (c *CompositionRoot) CreateActorDirectory() ports.ActorDirectory {
	var directory ports.ActorDirectory = userrepo.NewGormDirectory(c.gormDB)
	if c.redis != nil {
		directory = identitycache.NewDirectory(directory, c.redis, c.cfg.IdentityCacheTTL, c.logger)
	}
	return directory
}

func (c *CompositionRoot) CreateAuthenticator() (*jwtauth.HMACAuthenticator, error) {
	return jwtauth.NewHMACAuthenticator(c.cfg.JWTSecret)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		SubmitOrder:      c.CreateSubmitOrderCommandHandler(),
		AdvanceOrder:     c.CreateAdvanceOrderCommandHandler(),
		RaiseComplaint:   c.CreateRaiseComplaintCommandHandler(),
		ResolveComplaint: c.CreateResolveComplaintCommandHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		OrderHistory:     c.CreateOrderHistoryQueryHandler(),
		OrdersSummary:    c.CreateOrdersSummaryQueryHandler(),
		ListComplaints:   c.CreateListComplaintsQueryHandler(),
		GetComplaint:     c.CreateGetComplaintQueryHandler(),
	})
}

// CreateJobManager schedules the outbox relay when a broker is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.publisher == nil {
		return jobs.NewJobManager(nil, c.cfg.OutboxSchedule, c.logger)
	}
	h := commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
	return jobs.NewJobManager(&h, c.cfg.OutboxSchedule, c.logger)
}

// Ping checks the database and, when configured, redis and the broker link.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if c.redis != nil {
		if err := c.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	if p, ok := c.publisher.(interface{ Ping() error }); ok {
		if err := p.Ping(); err != nil {
			return fmt.Errorf("broker: %w", err)
		}
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
