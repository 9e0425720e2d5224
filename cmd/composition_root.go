package cmd

import (
	"log/slog"

	httpin "trix/internal/adapters/in/http"
	"trix/internal/adapters/out/fcm"
	"trix/internal/adapters/out/postgres"
	"trix/internal/adapters/out/postgres/pricingrepo"
	"trix/internal/adapters/out/rediscache"
	"trix/internal/core/application/usecases/commands"
	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/ports"
	"trix/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.PricingCatalog
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var catalog ports.PricingCatalog = pricingrepo.NewGormPricingCatalog(gormDB)
	if redisClient != nil {
		catalog = rediscache.NewCachingPricingCatalog(catalog, redisClient, logger)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		gateway:    fcm.NewGateway(config.FCMEndpoint, config.FCMServerKey),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.createUoWFactory(), c.catalog, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateAcceptShipmentCommandHandler() commands.AcceptShipmentCommandHandler {
	return commands.NewAcceptShipmentCommandHandler(c.createUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateRejectShipmentCommandHandler() commands.RejectShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectShipmentCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(
		c.createUoWFactory(), c.gateway, c.config.StrictProgression, c.logger)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.createUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateRebroadcastPendingCommandHandler() commands.RebroadcastPendingCommandHandler {
	return commands.NewRebroadcastPendingCommandHandler(c.createUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetVehicleTypesQueryHandler() queries.GetVehicleTypesQueryHandler {
	return queries.NewGetVehicleTypesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetCitiesQueryHandler() queries.GetCitiesQueryHandler {
	return queries.NewGetCitiesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateAcceptShipmentCommandHandler(),
		c.CreateRejectShipmentCommandHandler(),
		c.CreateUpdateShipmentStatusCommandHandler(),
		c.CreateCancelShipmentCommandHandler(),
		c.CreateGetQuoteQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateGetVehicleTypesQueryHandler(),
		c.CreateGetCitiesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRebroadcastPendingCommandHandler(), c.logger)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
