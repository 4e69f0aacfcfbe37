package cmd

import (
	"time"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/profilerepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrdersStatusCommandHandler() commands.UpdateOrdersStatusCommandHandler {
	return commands.NewUpdateOrdersStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	return commands.NewDeleteOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	return commands.NewImportOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateRetryOrderCommandHandler() commands.RetryOrderCommandHandler {
	return commands.NewRetryOrderCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateGetAdminOrdersQueryHandler() queries.GetAdminOrdersQueryHandler {
	return queries.NewGetAdminOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRouteQueryHandler() queries.GetDriverRouteQueryHandler {
	return queries.NewGetDriverRouteQueryHandler(c.gormDB, services.RoutePlanner{})
}

func (c *CompositionRoot) CreateGetOrderUpdatesQueryHandler() queries.GetOrderUpdatesQueryHandler {
	return queries.NewGetOrderUpdatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSystemStatsQueryHandler() queries.GetSystemStatsQueryHandler {
	return queries.NewGetSystemStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokenService() httpin.TokenService {
	ttl, err := time.ParseDuration(c.config.JWTTTL)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return httpin.NewTokenService(c.config.JWTSecret, ttl)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	tokens := c.CreateTokenService()
	profiles := profilerepo.NewGormProfileRepository(c.gormDB)

	return httpin.NewServer(httpin.ServerParams{
		Authenticator: httpin.NewAuthenticator(profiles, tokens),
		Tokens:        tokens,
		Profiles:      profiles,

		CreateOrderHandler:        c.CreateCreateOrderCommandHandler(),
		AssignOrdersHandler:       c.CreateAssignOrdersCommandHandler(),
		UpdateOrdersStatusHandler: c.CreateUpdateOrdersStatusCommandHandler(),
		DeleteOrdersHandler:       c.CreateDeleteOrdersCommandHandler(),
		ImportOrdersHandler:       c.CreateImportOrdersCommandHandler(),
		StartDeliveryHandler:      c.CreateStartDeliveryCommandHandler(),
		CompleteDeliveryHandler:   c.CreateCompleteDeliveryCommandHandler(),
		RetryOrderHandler:         c.CreateRetryOrderCommandHandler(),
		ChangeOrderStatusHandler:  c.CreateChangeOrderStatusCommandHandler(),

		GetAdminOrdersHandler:    c.CreateGetAdminOrdersQueryHandler(),
		GetDriverOrdersHandler:   c.CreateGetDriverOrdersQueryHandler(),
		GetDriverRouteHandler:    c.CreateGetDriverRouteQueryHandler(),
		GetOrderUpdatesHandler:   c.CreateGetOrderUpdatesQueryHandler(),
		GetDashboardStatsHandler: c.CreateGetDashboardStatsQueryHandler(),
		GetSystemStatsHandler:    c.CreateGetSystemStatsQueryHandler(),
		ExportOrdersHandler:      c.CreateExportOrdersQueryHandler(),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
