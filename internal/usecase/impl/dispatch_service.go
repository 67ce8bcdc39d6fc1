// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinETAMinutes = 1
	defaultMaxETAMinutes = 120
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	txManager      repository.TransactionManager
	fanout         usecase.NotificationFanout
	ledger         usecase.ResourceLedger
	eventPublisher service.EventPublisher
	minETAMinutes  int
	maxETAMinutes  int
	logger         *slog.Logger
}

// DispatchServiceParams holds dependencies for dispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Fanout         usecase.NotificationFanout
	Ledger         usecase.ResourceLedger
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDispatchService is the constructor for dispatchService. It receives all dependencies as interfaces.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	minETA, maxETA := defaultMinETAMinutes, defaultMaxETAMinutes
	if params.Config != nil && params.Config.Dispatch != nil {
		if params.Config.Dispatch.MinETAMinutes > 0 {
			minETA = params.Config.Dispatch.MinETAMinutes
		}
		if params.Config.Dispatch.MaxETAMinutes > 0 {
			maxETA = params.Config.Dispatch.MaxETAMinutes
		}
	}

	return &dispatchService{
		txManager:      params.TxManager,
		fanout:         params.Fanout,
		ledger:         params.Ledger,
		eventPublisher: params.EventPublisher,
		minETAMinutes:  minETA,
		maxETAMinutes:  maxETA,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEmergency persists a new PENDING emergency and fans out notifications.
// The fan-out runs in its own transaction after the emergency commits, so a
// notification failure never unwinds the created record.
func (srv *dispatchService) CreateEmergency(ctx context.Context, input usecase.CreateEmergencyInput) (*entity.Emergency, int, error) {
	if !input.Priority.IsValid() {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown priority %q", input.Priority))
	}

	if input.Latitude != nil || input.Longitude != nil {
		if input.Latitude == nil || input.Longitude == nil {
			return nil, 0, domainerrors.ErrInvalidLocation.WithDetails("latitude and longitude must be provided together")
		}
		coord := entity.Coordinate{Lat: *input.Latitude, Lon: *input.Longitude}
		if !coord.IsValid() {
			return nil, 0, domainerrors.ErrInvalidLocation
		}
	}

	now := time.Now()
	emergency := &entity.Emergency{
		ID:          uuid.New(),
		PatientID:   input.PatientID,
		Priority:    input.Priority,
		Status:      entity.EmergencyPending,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var patient *entity.Patient
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.NewPatientRepository().FindPatientByID(ctx, input.PatientID)
		if errors.Is(err, repository.ErrPatientNotFound) {
			return domainerrors.ErrPatientNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find patient")
		}
		patient = found

		if err := repos.NewEmergencyRepository().CreateEmergency(ctx, emergency); err != nil {
			return errors.Wrap(err, "failed to create emergency")
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.log(ctx).Info("Emergency created",
		slog.String("emergency_id", emergency.ID.String()),
		slog.String("priority", string(emergency.Priority)),
	)

	notified := srv.fanOutCreation(ctx, emergency, patient)

	return emergency, notified, nil
}

// fanOutCreation runs the creation fan-out in its own transaction and
// publishes the dispatch event. Failures are logged, never propagated.
func (srv *dispatchService) fanOutCreation(ctx context.Context, emergency *entity.Emergency, patient *entity.Patient) int {
	var notifications []*entity.Notification
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var fanErr error
		notifications, fanErr = srv.fanout.OnEmergencyCreated(ctx, repos, emergency, patient)

		return fanErr
	})
	if err != nil {
		srv.log(ctx).Error("Emergency fan-out failed",
			slog.String("emergency_id", emergency.ID.String()),
			slog.Any("error", err),
		)

		return 0
	}

	srv.publishEvent(ctx, emergency, notifications)

	return len(notifications)
}

// RespondToEmergency lets a hospital claim a PENDING emergency. The claim and
// the ambulance allocation share one transaction, so losing the allocation
// rolls the claim back and leaves the emergency PENDING for other responders.
func (srv *dispatchService) RespondToEmergency(ctx context.Context, input usecase.RespondToEmergencyInput) (*entity.Emergency, error) {
	if input.EstimatedArrivalMinutes != nil {
		eta := *input.EstimatedArrivalMinutes
		if eta < srv.minETAMinutes || eta > srv.maxETAMinutes {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(
				"estimated arrival must be between %d and %d minutes", srv.minETAMinutes, srv.maxETAMinutes))
		}
	}

	var (
		emergency *entity.Emergency
		hospital  *entity.Hospital
		patient   *entity.Patient
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.NewHospitalRepository().FindHospitalByID(ctx, input.HospitalID)
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return domainerrors.ErrHospitalNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find hospital")
		}
		hospital = found

		emergencyRepo := repos.NewEmergencyRepository()

		emergency, err = emergencyRepo.FindEmergencyByID(ctx, input.EmergencyID)
		if errors.Is(err, repository.ErrEmergencyNotFound) {
			return domainerrors.ErrEmergencyNotFoundOrHandled
		}
		if err != nil {
			return errors.Wrap(err, "failed to find emergency")
		}

		now := time.Now()
		emergency.Status = entity.EmergencyDispatched
		emergency.AssignedHospitalID = &input.HospitalID
		emergency.AmbulanceDispatchedAt = &now
		if input.EstimatedArrivalMinutes != nil {
			eta := now.Add(time.Duration(*input.EstimatedArrivalMinutes) * time.Minute)
			emergency.EstimatedArrivalAt = &eta
		}
		if input.ResponseNotes != "" {
			emergency.ResponseNotes = input.ResponseNotes
		}
		emergency.UpdatedAt = now

		// Conditional on the row still being PENDING. Exactly one of two
		// racing responders matches; the loser sees no claimable row.
		if err := emergencyRepo.ClaimPendingEmergency(ctx, emergency); err != nil {
			if errors.Is(err, repository.ErrEmergencyNotClaimable) {
				return domainerrors.ErrEmergencyNotFoundOrHandled
			}

			return errors.Wrap(err, "failed to claim emergency")
		}

		if _, err := srv.ledger.Allocate(ctx, repos, input.HospitalID, emergency.ID); err != nil {
			if errors.Is(err, repository.ErrNoAmbulanceAvailable) {
				return domainerrors.ErrNoAmbulanceAvailable
			}

			return errors.Wrap(err, "failed to allocate ambulance")
		}

		patient, err = repos.NewPatientRepository().FindPatientByID(ctx, emergency.PatientID)
		if err != nil {
			return errors.Wrap(err, "failed to find patient")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Ambulance dispatched",
		slog.String("emergency_id", emergency.ID.String()),
		slog.String("hospital_id", hospital.ID.String()),
	)

	eta := "TBD"
	if input.EstimatedArrivalMinutes != nil {
		eta = fmt.Sprintf("%d", *input.EstimatedArrivalMinutes)
	}
	message := fmt.Sprintf("Ambulance dispatched from %s. Estimated arrival: %s minutes. Hospital contact: %s",
		hospital.Name, eta, hospital.Phone)
	srv.fanOutStatusChange(ctx, emergency, patient, message)

	return emergency, nil
}

// UpdateEmergencyStatus moves an emergency to the given status. Transitions
// that skip intermediate states are allowed; only terminal emergencies are
// rejected.
func (srv *dispatchService) UpdateEmergencyStatus(ctx context.Context, emergencyID uuid.UUID, status entity.EmergencyStatus, notes string, etaMinutes *int) (*entity.Emergency, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var (
		emergency *entity.Emergency
		patient   *entity.Patient
		oldStatus entity.EmergencyStatus
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		emergencyRepo := repos.NewEmergencyRepository()

		found, err := emergencyRepo.FindEmergencyByID(ctx, emergencyID)
		if errors.Is(err, repository.ErrEmergencyNotFound) {
			return domainerrors.ErrEmergencyNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find emergency")
		}
		emergency = found

		if emergency.Status.IsTerminal() {
			return domainerrors.ErrEmergencyAlreadyClosed
		}

		now := time.Now()
		oldStatus = emergency.Status
		emergency.Status = status
		if notes != "" {
			emergency.ResponseNotes = notes
		}
		if etaMinutes != nil {
			eta := now.Add(time.Duration(*etaMinutes) * time.Minute)
			emergency.EstimatedArrivalAt = &eta
		}
		emergency.UpdatedAt = now

		if err := emergencyRepo.UpdateEmergency(ctx, emergency); err != nil {
			return errors.Wrap(err, "failed to update emergency")
		}

		patient, err = repos.NewPatientRepository().FindPatientByID(ctx, emergency.PatientID)
		if err != nil {
			return errors.Wrap(err, "failed to find patient")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Emergency status updated from %s to %s.", oldStatus, emergency.Status)
	if notes != "" {
		message += fmt.Sprintf(" Notes: %s", notes)
	}
	srv.fanOutStatusChange(ctx, emergency, patient, message)

	return emergency, nil
}

// CompleteEmergency marks the emergency COMPLETED and returns its ambulance
// to the assigned hospital's pool. Completing twice is a no-op for the pool:
// the second run finds no dispatched ambulance and releases nothing.
func (srv *dispatchService) CompleteEmergency(ctx context.Context, emergencyID uuid.UUID, notes string) (*entity.Emergency, error) {
	var (
		emergency *entity.Emergency
		patient   *entity.Patient
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		emergencyRepo := repos.NewEmergencyRepository()

		found, err := emergencyRepo.FindEmergencyByID(ctx, emergencyID)
		if errors.Is(err, repository.ErrEmergencyNotFound) {
			return domainerrors.ErrEmergencyNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find emergency")
		}
		emergency = found

		now := time.Now()
		emergency.Status = entity.EmergencyCompleted
		emergency.CompletedAt = &now
		if notes != "" {
			emergency.ResponseNotes = notes
		}
		emergency.UpdatedAt = now

		if err := emergencyRepo.UpdateEmergency(ctx, emergency); err != nil {
			return errors.Wrap(err, "failed to update emergency")
		}

		ambulance, err := repos.NewAmbulanceRepository().FindDispatchedByEmergency(ctx, emergencyID)
		if err != nil && !errors.Is(err, repository.ErrAmbulanceNotFound) {
			return errors.Wrap(err, "failed to find dispatched ambulance")
		}
		if ambulance != nil {
			if err := srv.ledger.Release(ctx, repos, ambulance.HospitalID, ambulance.ID); err != nil {
				return errors.Wrap(err, "failed to release ambulance")
			}
		}

		patient, err = repos.NewPatientRepository().FindPatientByID(ctx, emergency.PatientID)
		if err != nil {
			return errors.Wrap(err, "failed to find patient")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Emergency completed", slog.String("emergency_id", emergency.ID.String()))

	message := "Emergency has been completed successfully. Thank you for using our emergency services."
	if notes != "" {
		message += " " + notes
	}
	srv.fanOutStatusChange(ctx, emergency, patient, message)

	return emergency, nil
}

// GetEmergency retrieves a single emergency by ID.
func (srv *dispatchService) GetEmergency(ctx context.Context, id uuid.UUID) (*entity.Emergency, error) {
	var emergency *entity.Emergency
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.NewEmergencyRepository().FindEmergencyByID(ctx, id)
		if errors.Is(err, repository.ErrEmergencyNotFound) {
			return domainerrors.ErrEmergencyNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find emergency")
		}
		emergency = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return emergency, nil
}

// ListEmergenciesByPatient retrieves a patient's emergencies, newest first.
func (srv *dispatchService) ListEmergenciesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Emergency, error) {
	var emergencies []*entity.Emergency
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.NewEmergencyRepository().FindEmergenciesByPatient(ctx, patientID)
		if err != nil {
			return errors.Wrap(err, "failed to list emergencies")
		}
		emergencies = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return emergencies, nil
}

// ListEmergenciesByStatus retrieves emergencies in the given state, most
// urgent first.
func (srv *dispatchService) ListEmergenciesByStatus(ctx context.Context, status entity.EmergencyStatus) ([]*entity.Emergency, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var emergencies []*entity.Emergency
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.NewEmergencyRepository().FindEmergenciesByStatus(ctx, status)
		if err != nil {
			return errors.Wrap(err, "failed to list emergencies")
		}
		emergencies = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return emergencies, nil
}

// fanOutStatusChange records STATUS_UPDATE notifications in a fresh
// transaction and publishes the dispatch event. Best effort: failures are
// logged and never unwind the state transition that triggered them.
func (srv *dispatchService) fanOutStatusChange(ctx context.Context, emergency *entity.Emergency, patient *entity.Patient, message string) {
	var notifications []*entity.Notification
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var fanErr error
		notifications, fanErr = srv.fanout.OnStatusChanged(ctx, repos, emergency, patient, message)

		return fanErr
	})
	if err != nil {
		srv.log(ctx).Error("Status fan-out failed",
			slog.String("emergency_id", emergency.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.publishEvent(ctx, emergency, notifications)
}

// publishEvent hands the freshly created notification rows to the dispatch
// worker queue. Best effort: the rows stay PENDING and can be re-driven.
func (srv *dispatchService) publishEvent(ctx context.Context, emergency *entity.Emergency, notifications []*entity.Notification) {
	if srv.eventPublisher == nil || len(notifications) == 0 {
		return
	}

	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		ids = append(ids, n.ID.String())
	}

	event := &service.DispatchEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EmergencyID:     emergency.ID.String(),
		Priority:        string(emergency.Priority),
		Status:          string(emergency.Status),
		NotificationIDs: ids,
	}

	if err := srv.eventPublisher.PublishDispatchEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish dispatch event",
			slog.String("emergency_id", emergency.ID.String()),
			slog.Any("error", err),
		)
	}
}
