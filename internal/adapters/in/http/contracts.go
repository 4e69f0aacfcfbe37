package http

import (
	"net/url"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/profile"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the session token with the authenticated user's
// identity and capability set.
type LoginResponse struct {
	Token        string               `json:"token"`
	UserID       string               `json:"userId"`
	Email        string               `json:"email"`
	FullName     string               `json:"fullName"`
	Role         string               `json:"role"`
	Capabilities CapabilitiesResponse `json:"capabilities"`
}

// CapabilitiesResponse mirrors the role capability set for UI gating.
type CapabilitiesResponse struct {
	ManageOrders    bool     `json:"manageOrders"`
	ManageDrivers   bool     `json:"manageDrivers"`
	ViewAllProfiles bool     `json:"viewAllProfiles"`
	DriveOrders     bool     `json:"driveOrders"`
	NavItems        []string `json:"navItems"`
}

// CreateOrderRequest carries the fields for POST /admin/orders.
type CreateOrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryNotes   string `json:"deliveryNotes"`
	OrderNumber     string `json:"orderNumber"`
	Priority        string `json:"priority"`
	DriverID        string `json:"driverId"`
}

// BulkOrdersRequest selects orders for the bulk assign, status, and delete
// endpoints. DriverID is used by assign, Status by the status change.
type BulkOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
	DriverID string   `json:"driverId"`
	Status   string   `json:"status"`
}

// TransitionRequest carries the optional note for driver transitions, the
// target status for the correction endpoint, and the proof-of-delivery
// confirmation for completion.
type TransitionRequest struct {
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	PodCaptured bool   `json:"podCaptured"`
}

// OrderResponse is the JSON rendering of one order with the action flags and
// device links the driver UI needs.
type OrderResponse struct {
	ID              string     `json:"id"`
	Number          string     `json:"number"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DriverID        *string    `json:"driverId"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerEmail   string     `json:"customerEmail"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryNotes   string     `json:"deliveryNotes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	AssignedAt      *time.Time `json:"assignedAt"`

	CanStart    bool `json:"canStart"`
	CanDeliver  bool `json:"canDeliver"`
	CanComplete bool `json:"canComplete"`

	PickupMapsURL   string `json:"pickupMapsUrl"`
	DeliveryMapsURL string `json:"deliveryMapsUrl"`
	CustomerTelLink string `json:"customerTelLink"`
}

// AdminOrdersResponse partitions the admin's orders into the dashboard tabs.
type AdminOrdersResponse struct {
	All       []OrderResponse `json:"all"`
	Pending   []OrderResponse `json:"pending"`
	Active    []OrderResponse `json:"active"`
	Completed []OrderResponse `json:"completed"`
}

// DriverOrdersResponse partitions the driver's orders into the app tabs.
type DriverOrdersResponse struct {
	Active    []OrderResponse `json:"active"`
	Completed []OrderResponse `json:"completed"`
	Failed    []OrderResponse `json:"failed"`
}

// RouteStopResponse is one stop on the driver's planned route.
type RouteStopResponse struct {
	OrderID          string  `json:"orderId"`
	OrderNumber      string  `json:"orderNumber"`
	Kind             string  `json:"kind"`
	Address          string  `json:"address"`
	Priority         string  `json:"priority"`
	EstimatedMinutes float64 `json:"estimatedMinutes"`
	EstimatedMiles   float64 `json:"estimatedMiles"`
	MapsURL          string  `json:"mapsUrl"`
}

// RouteResponse is the driver's planned route with summed estimates.
type RouteResponse struct {
	Stops        []RouteStopResponse `json:"stops"`
	TotalMinutes float64             `json:"totalMinutes"`
	TotalMiles   float64             `json:"totalMiles"`
}

// OrderUpdateResponse is one audit trail entry.
type OrderUpdateResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	DriverID  string    `json:"driverId"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStatsResponse is the admin dashboard summary.
type DashboardStatsResponse struct {
	DriverCount     int `json:"driverCount"`
	TotalOrders     int `json:"totalOrders"`
	ActiveOrders    int `json:"activeOrders"`
	CompletedOrders int `json:"completedOrders"`
}

// SystemStatsResponse is the super admin system-wide summary.
type SystemStatsResponse struct {
	UsersByRole    map[string]int `json:"usersByRole"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
}

// DriverResponse is one driver in the admin's roster.
type DriverResponse struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// ImportResponse reports how many orders a CSV import created.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// mapsURL builds a Google Maps search link for an address, suitable for
// opening in the device's maps app.
func mapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// telLink builds a tel: link for one-tap dialing. Empty phones produce an
// empty link rather than a dangling "tel:".
func telLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	var driverID *string
	if view.DriverID != nil {
		s := view.DriverID.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              view.ID.String(),
		Number:          view.Number,
		Status:          view.Status.String(),
		Priority:        view.Priority.String(),
		DriverID:        driverID,
		CustomerName:    view.CustomerName,
		CustomerPhone:   view.CustomerPhone,
		CustomerEmail:   view.CustomerEmail,
		PickupAddress:   view.PickupAddress,
		DeliveryAddress: view.DeliveryAddress,
		DeliveryNotes:   view.DeliveryNotes,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
		AssignedAt:      view.AssignedAt,
		CanStart:        view.CanStart,
		CanDeliver:      view.CanDeliver,
		CanComplete:     view.CanComplete,
		PickupMapsURL:   mapsURL(view.PickupAddress),
		DeliveryMapsURL: mapsURL(view.DeliveryAddress),
		CustomerTelLink: telLink(view.CustomerPhone),
	}
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, view := range views {
		responses[i] = toOrderResponse(view)
	}
	return responses
}

func toCapabilitiesResponse(caps profile.Capabilities) CapabilitiesResponse {
	return CapabilitiesResponse{
		ManageOrders:    caps.ManageOrders,
		ManageDrivers:   caps.ManageDrivers,
		ViewAllProfiles: caps.ViewAllProfiles,
		DriveOrders:     caps.DriveOrders,
		NavItems:        caps.NavItems,
	}
}
