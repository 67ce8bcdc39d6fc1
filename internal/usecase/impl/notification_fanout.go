package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Hospitals are alerted over a wider radius than the default search.
	defaultAlertRadiusKm = 15.0
	// Only the closest hospitals receive an ambulance request.
	defaultHospitalNotifyCap = 5
)

// notificationFanout implements the NotificationFanout interface.
type notificationFanout struct {
	geoMatcher        usecase.GeoMatcher
	alertRadiusKm     float64
	hospitalNotifyCap int
	logger            *slog.Logger
}

// NotificationFanoutParams holds dependencies for notificationFanout, injected by Fx.
type NotificationFanoutParams struct {
	fx.In

	GeoMatcher usecase.GeoMatcher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewNotificationFanout is the constructor for notificationFanout.
func NewNotificationFanout(params NotificationFanoutParams) usecase.NotificationFanout {
	alertRadiusKm := defaultAlertRadiusKm
	hospitalNotifyCap := defaultHospitalNotifyCap
	if params.Config != nil && params.Config.Dispatch != nil {
		if params.Config.Dispatch.AlertRadiusKm > 0 {
			alertRadiusKm = params.Config.Dispatch.AlertRadiusKm
		}
		if params.Config.Dispatch.HospitalNotifyCap > 0 {
			hospitalNotifyCap = params.Config.Dispatch.HospitalNotifyCap
		}
	}

	return &notificationFanout{
		geoMatcher:        params.GeoMatcher,
		alertRadiusKm:     alertRadiusKm,
		hospitalNotifyCap: hospitalNotifyCap,
		logger:            params.Logger,
	}
}

func (f *notificationFanout) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// OnEmergencyCreated notifies the nearest dispatch-capable hospitals and the
// patient's primary emergency contacts. All rows are created PENDING in one
// batch; delivery is the dispatch worker's job.
func (f *notificationFanout) OnEmergencyCreated(ctx context.Context, repos repository.RepositoryFactory, emergency *entity.Emergency, patient *entity.Patient) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, 0, f.hospitalNotifyCap+2)

	location, ok := emergency.ResolveLocation(patient)
	if !ok {
		// Without a location nothing can be routed. Abort the whole
		// fan-out rather than alerting contacts about an unroutable
		// emergency.
		f.log(ctx).Error("No location found for emergency",
			slog.String("emergency_id", emergency.ID.String()),
		)

		return notifications, nil
	}

	hospitals, err := repos.NewHospitalRepository().FindAllHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hospitals for fan-out: %w", err)
	}

	candidates := f.geoMatcher.FindCandidates(location, hospitals, usecase.MatchOptions{
		RadiusKm:               f.alertRadiusKm,
		EmergencyServicesOnly:  true,
		AvailableAmbulanceOnly: true,
		Limit:                  f.hospitalNotifyCap,
	})

	for _, hospital := range candidates {
		notifications = append(notifications, f.buildHospitalRequest(emergency, patient, hospital))
	}

	if patient.EmergencyContactName != "" && patient.HasPrimaryContact() {
		notifications = append(notifications, f.buildContactAlert(
			emergency, patient,
			patient.EmergencyContactPhone,
			fmt.Sprintf("Your emergency contact %s has raised an emergency request. "+
				"Priority: %s. Description: %s. Location: %s. Please stay alert for updates.",
				patient.Name, emergency.Priority, emergency.Description, contactLocation(emergency, patient)),
		))
	}

	contacts, err := repos.NewPatientRepository().FindPrimaryContacts(ctx, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency contacts: %w", err)
	}

	// A supplementary contact may repeat the inline primary contact's
	// phone. Both rows are kept.
	for _, contact := range contacts {
		notifications = append(notifications, f.buildContactAlert(
			emergency, patient,
			contact.Phone,
			fmt.Sprintf("%s has raised an emergency request. Priority: %s. Description: %s. Location: %s.",
				patient.Name, emergency.Priority, emergency.Description, contactLocation(emergency, patient)),
		))
	}

	if len(notifications) > 0 {
		if err := repos.NewNotificationRepository().CreateNotifications(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to record notifications: %w", err)
		}
	}

	f.log(ctx).Info("Created notifications for emergency",
		slog.String("emergency_id", emergency.ID.String()),
		slog.Int("count", len(notifications)),
	)

	return notifications, nil
}

// OnStatusChanged sends the message to the patient and, when present, the
// patient's inline primary contact. Nearby hospitals are not re-queried.
func (f *notificationFanout) OnStatusChanged(ctx context.Context, repos repository.RepositoryFactory, emergency *entity.Emergency, patient *entity.Patient, message string) ([]*entity.Notification, error) {
	now := time.Now()
	patientID := patient.ID

	notifications := []*entity.Notification{
		{
			ID:            uuid.New(),
			EmergencyID:   emergency.ID,
			Type:          entity.NotificationStatusUpdate,
			RecipientType: entity.RecipientUser,
			RecipientID:   &patientID,
			Title:         "Emergency Status Update",
			Message:       message,
			Status:        entity.DeliveryPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	if patient.EmergencyContactName != "" && patient.HasPrimaryContact() {
		notifications = append(notifications, &entity.Notification{
			ID:             uuid.New(),
			EmergencyID:    emergency.ID,
			Type:           entity.NotificationStatusUpdate,
			RecipientType:  entity.RecipientEmergencyContact,
			RecipientPhone: patient.EmergencyContactPhone,
			Title:          fmt.Sprintf("Emergency Update - %s", patient.Name),
			Message:        message,
			Status:         entity.DeliveryPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := repos.NewNotificationRepository().CreateNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to record status notifications: %w", err)
	}

	return notifications, nil
}

func (f *notificationFanout) buildHospitalRequest(emergency *entity.Emergency, patient *entity.Patient, hospital *entity.Hospital) *entity.Notification {
	now := time.Now()
	hospitalID := hospital.ID

	address := emergency.Address
	if address == "" {
		address = "Patient's registered address"
	}

	return &entity.Notification{
		ID:            uuid.New(),
		EmergencyID:   emergency.ID,
		Type:          entity.NotificationAmbulanceRequest,
		RecipientType: entity.RecipientHospital,
		RecipientID:   &hospitalID,
		Title:         fmt.Sprintf("Emergency Alert - %s Priority", emergency.Priority),
		Message: fmt.Sprintf("Emergency request from %s. Location: %s. Description: %s. "+
			"Distance: %.2f km. Priority: %s",
			patient.Name, address, emergency.Description, hospital.DistanceKm, emergency.Priority),
		Status:    entity.DeliveryPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (f *notificationFanout) buildContactAlert(emergency *entity.Emergency, patient *entity.Patient, phone, message string) *entity.Notification {
	now := time.Now()

	return &entity.Notification{
		ID:             uuid.New(),
		EmergencyID:    emergency.ID,
		Type:           entity.NotificationEmergencyContactAlert,
		RecipientType:  entity.RecipientEmergencyContact,
		RecipientPhone: phone,
		Title:          fmt.Sprintf("Emergency Alert - %s", patient.Name),
		Message:        message,
		Status:         entity.DeliveryPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func contactLocation(emergency *entity.Emergency, patient *entity.Patient) string {
	if emergency.Address != "" {
		return emergency.Address
	}

	return patient.Address
}
