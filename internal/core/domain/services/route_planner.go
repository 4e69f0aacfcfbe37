package services

import (
	"sort"

	"dispatch/internal/core/domain/model/order"
)

// StopKind distinguishes pickup stops from delivery stops on a route.
type StopKind int

const (
	StopPickup StopKind = iota
	StopDelivery
)

func (k StopKind) String() string {
	if k == StopDelivery {
		return "delivery"
	}
	return "pickup"
}

// Stop is one visit on a driver's planned route with its simulated estimates.
type Stop struct {
	Order            *order.Order
	Kind             StopKind
	Address          string
	EstimatedMinutes float64
	EstimatedMiles   float64
}

// Route is the ordered stop list for one driver plus summed estimates.
type Route struct {
	Stops        []Stop
	TotalMinutes float64
	TotalMiles   float64
}

// RoutePlanner is a domain service that orders a driver's active stops.
//
// This is a deterministic mock, not an optimizer: estimates are linear
// functions of the stop's position in the input list, never derived from
// geocoding, and the ordering is a stable sort by (urgent priority first,
// then ascending estimated time). It must not be extended into a
// shortest-path or TSP solver without changing the contract.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan builds the route for the given orders. Assigned orders contribute a
// pickup stop, picked-up orders a delivery stop; every other status is
// skipped. Estimates grow with the stop's index in the input list:
// pickups get 10+5i minutes and 2+1.5i miles, deliveries 15+7i minutes and
// 3+2i miles.
func (p RoutePlanner) Plan(orders []*order.Order) (Route, error) {
	stops := make([]Stop, 0, len(orders))

	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return Route{}, err
		}

		idx := float64(i)
		switch o.Status() {
		case order.Assigned:
			stops = append(stops, Stop{
				Order:            o,
				Kind:             StopPickup,
				Address:          o.Details().PickupAddress,
				EstimatedMinutes: 10 + 5*idx,
				EstimatedMiles:   2 + 1.5*idx,
			})
		case order.PickedUp:
			stops = append(stops, Stop{
				Order:            o,
				Kind:             StopDelivery,
				Address:          o.Details().DeliveryAddress,
				EstimatedMinutes: 15 + 7*idx,
				EstimatedMiles:   3 + 2*idx,
			})
		}
	}

	sort.SliceStable(stops, func(a, b int) bool {
		aUrgent := stops[a].Order.Priority() == order.Urgent
		bUrgent := stops[b].Order.Priority() == order.Urgent
		if aUrgent != bUrgent {
			return aUrgent
		}
		return stops[a].EstimatedMinutes < stops[b].EstimatedMinutes
	})

	route := Route{Stops: stops}
	for _, s := range stops {
		route.TotalMinutes += s.EstimatedMinutes
		route.TotalMiles += s.EstimatedMiles
	}

	return route, nil
}
