// Package http exposes the delivery management API over REST. Every endpoint
// past login runs behind the session middleware, with role guards splitting
// the surface into admin, driver, and super admin groups.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/profile"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	authenticator Authenticator
	tokens        TokenService
	profiles      ports.ProfileRepository

	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	assignOrdersHandler       commands.AssignOrdersCommandHandler
	updateOrdersStatusHandler commands.UpdateOrdersStatusCommandHandler
	deleteOrdersHandler       commands.DeleteOrdersCommandHandler
	importOrdersHandler       commands.ImportOrdersCommandHandler
	startDeliveryHandler      commands.StartDeliveryCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	retryOrderHandler         commands.RetryOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getAdminOrdersHandler    queries.GetAdminOrdersQueryHandler
	getDriverOrdersHandler   queries.GetDriverOrdersQueryHandler
	getDriverRouteHandler    queries.GetDriverRouteQueryHandler
	getOrderUpdatesHandler   queries.GetOrderUpdatesQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	getSystemStatsHandler    queries.GetSystemStatsQueryHandler
	exportOrdersHandler      queries.ExportOrdersQueryHandler
}

// ServerParams bundles the dependencies for NewServer.
type ServerParams struct {
	Authenticator Authenticator
	Tokens        TokenService
	Profiles      ports.ProfileRepository

	CreateOrderHandler        commands.CreateOrderCommandHandler
	AssignOrdersHandler       commands.AssignOrdersCommandHandler
	UpdateOrdersStatusHandler commands.UpdateOrdersStatusCommandHandler
	DeleteOrdersHandler       commands.DeleteOrdersCommandHandler
	ImportOrdersHandler       commands.ImportOrdersCommandHandler
	StartDeliveryHandler      commands.StartDeliveryCommandHandler
	CompleteDeliveryHandler   commands.CompleteDeliveryCommandHandler
	RetryOrderHandler         commands.RetryOrderCommandHandler
	ChangeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler

	GetAdminOrdersHandler    queries.GetAdminOrdersQueryHandler
	GetDriverOrdersHandler   queries.GetDriverOrdersQueryHandler
	GetDriverRouteHandler    queries.GetDriverRouteQueryHandler
	GetOrderUpdatesHandler   queries.GetOrderUpdatesQueryHandler
	GetDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	GetSystemStatsHandler    queries.GetSystemStatsQueryHandler
	ExportOrdersHandler      queries.ExportOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		authenticator:             params.Authenticator,
		tokens:                    params.Tokens,
		profiles:                  params.Profiles,
		createOrderHandler:        params.CreateOrderHandler,
		assignOrdersHandler:       params.AssignOrdersHandler,
		updateOrdersStatusHandler: params.UpdateOrdersStatusHandler,
		deleteOrdersHandler:       params.DeleteOrdersHandler,
		importOrdersHandler:       params.ImportOrdersHandler,
		startDeliveryHandler:      params.StartDeliveryHandler,
		completeDeliveryHandler:   params.CompleteDeliveryHandler,
		retryOrderHandler:         params.RetryOrderHandler,
		changeOrderStatusHandler:  params.ChangeOrderStatusHandler,
		getAdminOrdersHandler:     params.GetAdminOrdersHandler,
		getDriverOrdersHandler:    params.GetDriverOrdersHandler,
		getDriverRouteHandler:     params.GetDriverRouteHandler,
		getOrderUpdatesHandler:    params.GetOrderUpdatesHandler,
		getDashboardStatsHandler:  params.GetDashboardStatsHandler,
		getSystemStatsHandler:     params.GetSystemStatsHandler,
		exportOrdersHandler:       params.ExportOrdersHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	admin := api.Group("/admin", sessionMiddleware(s.tokens), requireRole(session.Session.IsAdmin))
	admin.GET("/orders", s.GetAdminOrders)
	admin.POST("/orders", s.CreateOrder)
	admin.POST("/orders/assign", s.AssignOrders)
	admin.POST("/orders/status", s.UpdateOrdersStatus)
	admin.POST("/orders/delete", s.DeleteOrders)
	admin.POST("/orders/import", s.ImportOrders)
	admin.GET("/orders/export", s.ExportOrders)
	admin.GET("/orders/:id/updates", s.GetOrderUpdates)
	admin.GET("/drivers", s.GetDrivers)
	admin.GET("/stats", s.GetDashboardStats)

	driver := api.Group("/driver", sessionMiddleware(s.tokens), requireRole(session.Session.IsDriver))
	driver.GET("/orders", s.GetDriverOrders)
	driver.GET("/route", s.GetDriverRoute)
	driver.POST("/orders/:id/start", s.StartDelivery)
	driver.POST("/orders/:id/complete", s.CompleteDelivery)
	driver.POST("/orders/:id/retry", s.RetryOrder)
	driver.POST("/orders/:id/status", s.ChangeOrderStatus)

	superAdmin := api.Group("/super-admin", sessionMiddleware(s.tokens), requireRole(func(sess session.Session) bool {
		return sess.Role() == profile.RoleSuperAdmin
	}))
	superAdmin.GET("/stats", s.GetSystemStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	token, p, err := s.authenticator.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			return errorJSON(ctx, http.StatusUnauthorized, err.Error())
		case errors.Is(err, ErrAccountNotActive):
			return errorJSON(ctx, http.StatusForbidden, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to log in")
		}
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:        token,
		UserID:       p.UserID().String(),
		Email:        p.Email(),
		FullName:     p.FullName(),
		Role:         p.Role().String(),
		Capabilities: toCapabilitiesResponse(p.Role().Capabilities()),
	})
}

// GetAdminOrders handles GET /api/v1/admin/orders.
func (s *Server) GetAdminOrders(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	query, err := queries.NewGetAdminOrdersQuery(sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getAdminOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminOrdersResponse{
		All:       toOrderResponses(response.All),
		Pending:   toOrderResponses(response.Pending),
		Active:    toOrderResponses(response.Active),
		Completed: toOrderResponses(response.Completed),
	})
}

// CreateOrder handles POST /api/v1/admin/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority := order.PriorityUnknown
	if req.Priority != "" {
		var err error
		if priority, err = order.PriorityFromString(req.Priority); err != nil {
			return writeError(ctx, err)
		}
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		id, err := kernel.UUIDFromString(req.DriverID)
		if err != nil {
			return writeError(ctx, err)
		}
		driverID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		sess.UserID(),
		req.OrderNumber,
		order.Details{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			PickupAddress:   req.PickupAddress,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryNotes:   req.DeliveryNotes,
		},
		priority,
		driverID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignOrders handles POST /api/v1/admin/orders/assign.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var req BulkOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignOrdersCommand(orderIDs, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrdersStatus handles POST /api/v1/admin/orders/status.
func (s *Server) UpdateOrdersStatus(ctx echo.Context) error {
	var req BulkOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrdersStatusCommand(orderIDs, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrdersStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrders handles POST /api/v1/admin/orders/delete.
func (s *Server) DeleteOrders(ctx echo.Context) error {
	var req BulkOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrdersCommand(orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ImportOrders handles POST /api/v1/admin/orders/import. The request is a
// multipart form with the CSV under the "file" field.
func (s *Server) ImportOrders(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable file upload")
	}
	defer file.Close()

	cmd, err := commands.NewImportOrdersCommand(sess.UserID(), file)
	if err != nil {
		return writeError(ctx, err)
	}

	imported, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ImportResponse{Imported: imported})
}

// ExportOrders handles GET /api/v1/admin/orders/export and streams the
// admin's orders as a CSV download.
func (s *Server) ExportOrders(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	query, err := queries.NewExportOrdersQuery(sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	csv, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", []byte(csv))
}

// GetOrderUpdates handles GET /api/v1/admin/orders/:id/updates.
func (s *Server) GetOrderUpdates(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderUpdatesQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updates, err := s.getOrderUpdatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderUpdateResponse, len(updates))
	for i, update := range updates {
		response[i] = OrderUpdateResponse{
			ID:        update.ID.String(),
			OrderID:   update.OrderID.String(),
			DriverID:  update.DriverID.String(),
			Status:    update.Status.String(),
			Notes:     update.Notes,
			CreatedAt: update.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/admin/drivers and lists the admin's roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	drivers, err := s.profiles.GetDriversByAdmin(ctx.Request().Context(), sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, driver := range drivers {
		response[i] = DriverResponse{
			UserID:   driver.UserID().String(),
			FullName: driver.FullName(),
			Email:    driver.Email(),
			Phone:    driver.Phone(),
			Status:   driver.Status().String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/admin/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	query, err := queries.NewGetDashboardStatsQuery(sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		DriverCount:     stats.DriverCount,
		TotalOrders:     stats.TotalOrders,
		ActiveOrders:    stats.ActiveOrders,
		CompletedOrders: stats.CompletedOrders,
	})
}

// GetDriverOrders handles GET /api/v1/driver/orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	query, err := queries.NewGetDriverOrdersQuery(sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverOrdersResponse{
		Active:    toOrderResponses(response.Active),
		Completed: toOrderResponses(response.Completed),
		Failed:    toOrderResponses(response.Failed),
	})
}

// GetDriverRoute handles GET /api/v1/driver/route.
func (s *Server) GetDriverRoute(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	query, err := queries.NewGetDriverRouteQuery(sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	route, err := s.getDriverRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	stops := make([]RouteStopResponse, len(route.Stops))
	for i, stop := range route.Stops {
		stops[i] = RouteStopResponse{
			OrderID:          stop.OrderID.String(),
			OrderNumber:      stop.OrderNumber,
			Kind:             stop.Kind,
			Address:          stop.Address,
			Priority:         stop.Priority.String(),
			EstimatedMinutes: stop.EstimatedMinutes,
			EstimatedMiles:   stop.EstimatedMiles,
			MapsURL:          mapsURL(stop.Address),
		}
	}

	return ctx.JSON(http.StatusOK, RouteResponse{
		Stops:        stops,
		TotalMinutes: route.TotalMinutes,
		TotalMiles:   route.TotalMiles,
	})
}

// StartDelivery handles POST /api/v1/driver/orders/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	req := bindTransitionRequest(ctx)
	cmd, err := commands.NewStartDeliveryCommand(orderID, sess.UserID(), req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/driver/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	req := bindTransitionRequest(ctx)
	// Proof-of-delivery capture happens on the device; the API only requires
	// the caller to confirm it finished.
	if !req.PodCaptured {
		return badRequest(ctx, "Proof of delivery must be captured before completion")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, sess.UserID(), req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetryOrder handles POST /api/v1/driver/orders/:id/retry.
func (s *Server) RetryOrder(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRetryOrderCommand(orderID, sess.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.retryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/driver/orders/:id/status, the
// correction path for orders already delivered or failed.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	sess, _ := currentSession(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, sess.UserID(), status, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSystemStats handles GET /api/v1/super-admin/stats.
func (s *Server) GetSystemStats(ctx echo.Context) error {
	stats, err := s.getSystemStatsHandler.Handle(ctx.Request().Context(), queries.NewGetSystemStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SystemStatsResponse{
		UsersByRole:    stats.UsersByRole,
		OrdersByStatus: stats.OrdersByStatus,
	})
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, value := range raw {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// bindTransitionRequest tolerates an empty body: driver transitions accept an
// optional note.
func bindTransitionRequest(ctx echo.Context) TransitionRequest {
	var req TransitionRequest
	_ = ctx.Bind(&req)
	return req
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrOrderNumberAlreadyExists),
		errors.Is(err, order.ErrTransitionNotAllowed):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
