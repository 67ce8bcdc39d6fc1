package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"lifeline/internal/domain/entity"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFanout(t *testing.T) (
	usecase.NotificationFanout,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockHospitalRepository,
	*mockRepo.MockPatientRepository,
	*mockRepo.MockNotificationRepository,
) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	hospitalRepo := mockRepo.NewMockHospitalRepository(t)
	patientRepo := mockRepo.NewMockPatientRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	factory.EXPECT().NewHospitalRepository().Return(hospitalRepo).Maybe()
	factory.EXPECT().NewPatientRepository().Return(patientRepo).Maybe()
	factory.EXPECT().NewNotificationRepository().Return(notificationRepo).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fanout := NewNotificationFanout(NotificationFanoutParams{
		GeoMatcher: NewGeoMatcher(),
		Logger:     logger,
	})

	return fanout, factory, hospitalRepo, patientRepo, notificationRepo
}

func fanoutTestPatient() *entity.Patient {
	lat, lon := 40.0, -74.0

	return &entity.Patient{
		ID:                    uuid.New(),
		Name:                  "Alex Chen",
		Phone:                 "+15550100",
		Latitude:              &lat,
		Longitude:             &lon,
		Address:               "12 Elm Street",
		EmergencyContactName:  "Morgan Chen",
		EmergencyContactPhone: "+15550101",
	}
}

func fanoutTestEmergency(patientID uuid.UUID) *entity.Emergency {
	return &entity.Emergency{
		ID:          uuid.New(),
		PatientID:   patientID,
		Priority:    entity.PriorityHigh,
		Status:      entity.EmergencyPending,
		Description: "chest pain",
	}
}

func TestNotificationFanout_OnEmergencyCreated_CapsHospitals(t *testing.T) {
	fanout, factory, hospitalRepo, patientRepo, notificationRepo := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	emergency := fanoutTestEmergency(patient.ID)

	// Seven eligible hospitals around the patient; only the closest five get
	// an ambulance request.
	hospitals := make([]*entity.Hospital, 0, 7)
	for i := range 7 {
		hospitals = append(hospitals, testHospital(
			fmt.Sprintf("Hospital %d", i), 40.0+float64(i+1)*0.01, -74.0, 1, true))
	}

	hospitalRepo.EXPECT().FindAllHospitals(ctx).Return(hospitals, nil)
	patientRepo.EXPECT().FindPrimaryContacts(ctx, patient.ID).Return(nil, nil)

	var created []*entity.Notification
	notificationRepo.EXPECT().CreateNotifications(ctx, mock.Anything).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			created = notifications
		}).Return(nil)

	notifications, err := fanout.OnEmergencyCreated(ctx, factory, emergency, patient)

	require.NoError(t, err)
	require.Len(t, notifications, 6)
	assert.Equal(t, created, notifications)

	hospitalRequests := 0
	for _, n := range notifications {
		if n.Type == entity.NotificationAmbulanceRequest {
			hospitalRequests++
			assert.Equal(t, entity.RecipientHospital, n.RecipientType)
			assert.Equal(t, entity.DeliveryPending, n.Status)
		}
	}
	assert.Equal(t, 5, hospitalRequests)
}

func TestNotificationFanout_OnEmergencyCreated_DuplicateContactPhonesKept(t *testing.T) {
	fanout, factory, hospitalRepo, patientRepo, notificationRepo := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	emergency := fanoutTestEmergency(patient.ID)

	hospitalRepo.EXPECT().FindAllHospitals(ctx).Return(nil, nil)

	// The supplementary contact repeats the inline primary contact's phone.
	// Both rows are kept.
	patientRepo.EXPECT().FindPrimaryContacts(ctx, patient.ID).Return([]*entity.EmergencyContact{
		{ID: uuid.New(), PatientID: patient.ID, Name: "Morgan Chen", Phone: patient.EmergencyContactPhone, IsPrimary: true},
		{ID: uuid.New(), PatientID: patient.ID, Name: "Sam Chen", Phone: "+15550102", IsPrimary: true},
	}, nil)
	notificationRepo.EXPECT().CreateNotifications(ctx, mock.Anything).Return(nil)

	notifications, err := fanout.OnEmergencyCreated(ctx, factory, emergency, patient)

	require.NoError(t, err)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.Equal(t, entity.NotificationEmergencyContactAlert, n.Type)
		assert.Equal(t, entity.RecipientEmergencyContact, n.RecipientType)
	}
	assert.Equal(t, notifications[0].RecipientPhone, notifications[1].RecipientPhone)
}

func TestNotificationFanout_OnEmergencyCreated_NoLocationAbortsFanout(t *testing.T) {
	fanout, factory, _, _, _ := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	patient.Latitude = nil
	patient.Longitude = nil
	emergency := fanoutTestEmergency(patient.ID)

	// No repository call is expected: without a resolvable location the
	// whole fan-out aborts, contact alerts included.
	notifications, err := fanout.OnEmergencyCreated(ctx, factory, emergency, patient)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationFanout_OnEmergencyCreated_NothingToRecord(t *testing.T) {
	fanout, factory, hospitalRepo, patientRepo, _ := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	patient.EmergencyContactName = ""
	patient.EmergencyContactPhone = ""
	emergency := fanoutTestEmergency(patient.ID)

	hospitalRepo.EXPECT().FindAllHospitals(ctx).Return(nil, nil)
	patientRepo.EXPECT().FindPrimaryContacts(ctx, patient.ID).Return(nil, nil)

	// No recipients means no batch insert at all.
	notifications, err := fanout.OnEmergencyCreated(ctx, factory, emergency, patient)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationFanout_OnStatusChanged_PatientAndPrimaryContact(t *testing.T) {
	fanout, factory, _, _, notificationRepo := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	emergency := fanoutTestEmergency(patient.ID)

	notificationRepo.EXPECT().CreateNotifications(ctx, mock.Anything).Return(nil)

	notifications, err := fanout.OnStatusChanged(ctx, factory, emergency, patient, "Ambulance dispatched")

	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.Equal(t, entity.RecipientUser, notifications[0].RecipientType)
	require.NotNil(t, notifications[0].RecipientID)
	assert.Equal(t, patient.ID, *notifications[0].RecipientID)

	assert.Equal(t, entity.RecipientEmergencyContact, notifications[1].RecipientType)
	assert.Equal(t, patient.EmergencyContactPhone, notifications[1].RecipientPhone)
	for _, n := range notifications {
		assert.Equal(t, entity.NotificationStatusUpdate, n.Type)
		assert.Equal(t, "Ambulance dispatched", n.Message)
	}
}

func TestNotificationFanout_OnStatusChanged_PatientOnly(t *testing.T) {
	fanout, factory, _, _, notificationRepo := createTestFanout(t)

	ctx := context.Background()
	patient := fanoutTestPatient()
	patient.EmergencyContactName = ""
	patient.EmergencyContactPhone = ""
	emergency := fanoutTestEmergency(patient.ID)

	notificationRepo.EXPECT().CreateNotifications(ctx, mock.Anything).Return(nil)

	notifications, err := fanout.OnStatusChanged(ctx, factory, emergency, patient, "On the way")

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.RecipientUser, notifications[0].RecipientType)
}
