package domain

import "errors"

// ServiceType categorises a hotel service offering.
type ServiceType string

const (
	ServiceSpa     ServiceType = "SPA"
	ServiceGym     ServiceType = "GYM"
	ServiceDining  ServiceType = "DINING"
	ServiceLaundry ServiceType = "LAUNDRY"
	ServicePool    ServiceType = "POOL"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a bookable hotel offering. Price 0 denotes complimentary.
type Service struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Type        ServiceType   `json:"type"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
}

// Partner is a read-only display entity with no lifecycle operations.
type Partner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	LogoURL  string `json:"logo_url"`
}
