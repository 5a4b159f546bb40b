package cmd

import (
	"mealtrack/internal/adapters/out/postgres"
	"mealtrack/internal/adapters/out/postgres/orderrepo"
	"mealtrack/internal/adapters/out/redis/notificationfeed"
	"mealtrack/internal/core/application/usecases/commands"
	"mealtrack/internal/core/application/usecases/queries"
	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/services"
	"mealtrack/internal/sessions"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	feed       *notificationfeed.RedisNotificationFeed
	sessions   *sessions.ActiveOrderStore
	simulator  services.MovementSimulator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		feed:       notificationfeed.NewRedisNotificationFeed(redisClient),
		sessions:   sessions.NewActiveOrderStore(),
		simulator:  services.NewMovementSimulator(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.feed)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.feed)
}

func (c *CompositionRoot) CreateSetActiveOrderCommandHandler() commands.SetActiveOrderCommandHandler {
	return commands.NewSetActiveOrderCommandHandler(c.orderUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreatePublishLocationPingCommandHandler() commands.PublishLocationPingCommandHandler {
	return commands.NewPublishLocationPingCommandHandler(c.orderUoWFactory(), c.feed, c.sessions, c.simulator)
}

func (c *CompositionRoot) CreateAcknowledgeNotificationCommandHandler() commands.AcknowledgeNotificationCommandHandler {
	return commands.NewAcknowledgeNotificationCommandHandler(c.feed)
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	return commands.NewClearNotificationsCommandHandler(c.feed)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	// The read path does not need a transaction, so the repository is built
	// straight on the database connection.
	repo := orderrepo.NewGormOrderRepository(c.gormDB, readOnlyAggregateTracker{})
	return queries.NewGetOrderTrackingQueryHandler(repo)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.feed)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// readOnlyAggregateTracker satisfies the repository's tracker dependency on
// read paths, where nothing is modified and there is nothing to track.
type readOnlyAggregateTracker struct{}

func (readOnlyAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
