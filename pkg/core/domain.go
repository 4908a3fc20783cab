// Package core holds the domain entities of the vendor console.
package core

// Customer is an individual platform customer.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CorporateCustomer is a business account with a prepaid wallet.
type CorporateCustomer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone,omitempty"`
	WalletBalance float64 `json:"walletBalance"`
}

// Order is a purchase placed by a customer. TrackingNumber links it to
// a shipment once one exists.
type Order struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Status         string `json:"status,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Shipment is a parcel moving through the network.
type Shipment struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Coverage       string `json:"coverage,omitempty"` // local, national, international
	Status         string `json:"status,omitempty"`
	OriginID       string `json:"originId,omitempty"`
	DestinationID  string `json:"destinationId,omitempty"`
	TripID         string `json:"tripId,omitempty"`
}

// Trip is a scheduled vehicle run between stations.
type Trip struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicleId,omitempty"`
	OriginID    string `json:"originId,omitempty"`
	DestID      string `json:"destinationId,omitempty"`
	Status      string `json:"status,omitempty"` // scheduled, active, completed
	DepartureAt string `json:"departureAt,omitempty"`
}

// Vehicle is a unit of the vendor's fleet.
type Vehicle struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Model       string `json:"model,omitempty"`
	Status      string `json:"status,omitempty"` // available, assigned, maintenance
}

// Station is a fixed network location (depot, hub, pickup point).
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// OrderDetail is the composed result of the order route: the order plus
// the customer it belongs to, fetched dependently.
type OrderDetail struct {
	Order    *Order    `json:"order"`
	Customer *Customer `json:"customer"`
}

// TripDetail composes a trip with its assigned vehicle (when any).
type TripDetail struct {
	Trip    *Trip    `json:"trip"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}

// FleetOverview is the fleet dashboard data: the full vehicle roster
// alongside the station network, fetched independently.
type FleetOverview struct {
	Vehicles []Vehicle `json:"vehicles"`
	Stations []Station `json:"stations"`
	Total    int       `json:"total"`
}
