package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterHospitalInput carries the fields needed to register a hospital.
type RegisterHospitalInput struct {
	Name                 string
	Address              string
	Phone                string
	Latitude             float64
	Longitude            float64
	TotalAmbulances      int
	HasEmergencyServices bool
	Specializations      []string
}

// HospitalUsecase defines the interface for hospital management use cases
type HospitalUsecase interface {
	// RegisterHospital persists a new hospital with its full fleet available.
	RegisterHospital(ctx context.Context, input RegisterHospitalInput) (*entity.Hospital, error)

	// GetHospital retrieves a hospital by ID.
	GetHospital(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)

	// ListHospitals retrieves every registered hospital.
	ListHospitals(ctx context.Context) ([]*entity.Hospital, error)

	// FindNearbyHospitals returns hospitals around the origin matching the
	// given options, sorted by distance.
	FindNearbyHospitals(ctx context.Context, origin entity.Coordinate, opts MatchOptions) ([]*entity.Hospital, error)

	// AddAmbulance registers a vehicle in a hospital's fleet and grows both
	// the fleet size and the availability counter.
	AddAmbulance(ctx context.Context, hospitalID uuid.UUID, vehicleNumber string) (*entity.Ambulance, error)

	// ListAmbulances retrieves a hospital's full fleet.
	ListAmbulances(ctx context.Context, hospitalID uuid.UUID) ([]*entity.Ambulance, error)
}
