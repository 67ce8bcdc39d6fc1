package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifecycleTestStore is an in-memory stand-in for the persistence layer.
// Execute serializes transactions with one mutex, and the conditional
// operations (claim, counter decrement/increment) guard before writing,
// so racing callers observe the same winner-takes-it semantics the SQL
// repositories provide.
type lifecycleTestStore struct {
	mu sync.Mutex

	hospitals     map[uuid.UUID]*entity.Hospital
	ambulances    map[uuid.UUID]*entity.Ambulance
	emergencies   map[uuid.UUID]*entity.Emergency
	patients      map[uuid.UUID]*entity.Patient
	contacts      map[uuid.UUID][]*entity.EmergencyContact
	notifications []*entity.Notification
}

func newLifecycleTestStore() *lifecycleTestStore {
	return &lifecycleTestStore{
		hospitals:   make(map[uuid.UUID]*entity.Hospital),
		ambulances:  make(map[uuid.UUID]*entity.Ambulance),
		emergencies: make(map[uuid.UUID]*entity.Emergency),
		patients:    make(map[uuid.UUID]*entity.Patient),
		contacts:    make(map[uuid.UUID][]*entity.EmergencyContact),
	}
}

func (s *lifecycleTestStore) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s)
}

func (s *lifecycleTestStore) NewEmergencyRepository() repository.EmergencyRepository { return s }

func (s *lifecycleTestStore) NewHospitalRepository() repository.HospitalRepository { return s }

func (s *lifecycleTestStore) NewAmbulanceRepository() repository.AmbulanceRepository { return s }

func (s *lifecycleTestStore) NewNotificationRepository() repository.NotificationRepository {
	return s
}

func (s *lifecycleTestStore) NewPatientRepository() repository.PatientRepository { return s }

func (s *lifecycleTestStore) CreateEmergency(_ context.Context, emergency *entity.Emergency) error {
	stored := *emergency
	s.emergencies[emergency.ID] = &stored

	return nil
}

func (s *lifecycleTestStore) FindEmergencyByID(_ context.Context, id uuid.UUID) (*entity.Emergency, error) {
	stored, ok := s.emergencies[id]
	if !ok {
		return nil, repository.ErrEmergencyNotFound
	}
	found := *stored

	return &found, nil
}

func (s *lifecycleTestStore) FindEmergenciesByPatient(_ context.Context, patientID uuid.UUID) ([]*entity.Emergency, error) {
	var result []*entity.Emergency
	for _, stored := range s.emergencies {
		if stored.PatientID == patientID {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) FindEmergenciesByStatus(_ context.Context, status entity.EmergencyStatus) ([]*entity.Emergency, error) {
	var result []*entity.Emergency
	for _, stored := range s.emergencies {
		if stored.Status == status {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) ClaimPendingEmergency(_ context.Context, emergency *entity.Emergency) error {
	stored, ok := s.emergencies[emergency.ID]
	if !ok || stored.Status != entity.EmergencyPending {
		return repository.ErrEmergencyNotClaimable
	}
	claimed := *emergency
	s.emergencies[emergency.ID] = &claimed

	return nil
}

func (s *lifecycleTestStore) UpdateEmergency(_ context.Context, emergency *entity.Emergency) error {
	if _, ok := s.emergencies[emergency.ID]; !ok {
		return repository.ErrEmergencyNotFound
	}
	updated := *emergency
	s.emergencies[emergency.ID] = &updated

	return nil
}

func (s *lifecycleTestStore) CreateHospital(_ context.Context, hospital *entity.Hospital) error {
	stored := *hospital
	s.hospitals[hospital.ID] = &stored

	return nil
}

func (s *lifecycleTestStore) FindHospitalByID(_ context.Context, id uuid.UUID) (*entity.Hospital, error) {
	stored, ok := s.hospitals[id]
	if !ok {
		return nil, repository.ErrHospitalNotFound
	}
	found := *stored

	return &found, nil
}

func (s *lifecycleTestStore) FindAllHospitals(_ context.Context) ([]*entity.Hospital, error) {
	result := make([]*entity.Hospital, 0, len(s.hospitals))
	for _, stored := range s.hospitals {
		found := *stored
		result = append(result, &found)
	}

	return result, nil
}

func (s *lifecycleTestStore) UpdateHospital(_ context.Context, hospital *entity.Hospital) error {
	if _, ok := s.hospitals[hospital.ID]; !ok {
		return repository.ErrHospitalNotFound
	}
	updated := *hospital
	s.hospitals[hospital.ID] = &updated

	return nil
}

func (s *lifecycleTestStore) DecrementAvailableAmbulances(_ context.Context, hospitalID uuid.UUID) error {
	stored, ok := s.hospitals[hospitalID]
	if !ok {
		return repository.ErrHospitalNotFound
	}
	if stored.AvailableAmbulances <= 0 {
		return repository.ErrNoAmbulanceAvailable
	}
	stored.AvailableAmbulances--

	return nil
}

func (s *lifecycleTestStore) IncrementAvailableAmbulances(_ context.Context, hospitalID uuid.UUID) error {
	stored, ok := s.hospitals[hospitalID]
	if !ok {
		return repository.ErrHospitalNotFound
	}
	if stored.AvailableAmbulances >= stored.TotalAmbulances {
		return repository.ErrAmbulanceCapacityFull
	}
	stored.AvailableAmbulances++

	return nil
}

func (s *lifecycleTestStore) CreateAmbulance(_ context.Context, ambulance *entity.Ambulance) error {
	stored := *ambulance
	s.ambulances[ambulance.ID] = &stored

	return nil
}

func (s *lifecycleTestStore) FindAmbulanceByID(_ context.Context, id uuid.UUID) (*entity.Ambulance, error) {
	stored, ok := s.ambulances[id]
	if !ok {
		return nil, repository.ErrAmbulanceNotFound
	}
	found := *stored

	return &found, nil
}

func (s *lifecycleTestStore) FindAmbulancesByHospital(_ context.Context, hospitalID uuid.UUID) ([]*entity.Ambulance, error) {
	var result []*entity.Ambulance
	for _, stored := range s.ambulances {
		if stored.HospitalID == hospitalID {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) FindFirstAvailableByHospital(_ context.Context, hospitalID uuid.UUID) (*entity.Ambulance, error) {
	var free []*entity.Ambulance
	for _, stored := range s.ambulances {
		if stored.HospitalID == hospitalID && stored.Status == entity.AmbulanceAvailable {
			free = append(free, stored)
		}
	}
	if len(free) == 0 {
		return nil, repository.ErrAmbulanceNotFound
	}
	sort.Slice(free, func(i, j int) bool { return free[i].VehicleNumber < free[j].VehicleNumber })
	found := *free[0]

	return &found, nil
}

func (s *lifecycleTestStore) UpdateAmbulance(_ context.Context, ambulance *entity.Ambulance) error {
	if _, ok := s.ambulances[ambulance.ID]; !ok {
		return repository.ErrAmbulanceNotFound
	}
	updated := *ambulance
	s.ambulances[ambulance.ID] = &updated

	return nil
}

func (s *lifecycleTestStore) FindDispatchedByEmergency(_ context.Context, emergencyID uuid.UUID) (*entity.Ambulance, error) {
	for _, stored := range s.ambulances {
		if stored.Status == entity.AmbulanceDispatched &&
			stored.CurrentEmergencyID != nil && *stored.CurrentEmergencyID == emergencyID {
			found := *stored

			return &found, nil
		}
	}

	return nil, repository.ErrAmbulanceNotFound
}

func (s *lifecycleTestStore) CreateNotifications(_ context.Context, notifications []*entity.Notification) error {
	for _, notification := range notifications {
		stored := *notification
		s.notifications = append(s.notifications, &stored)
	}

	return nil
}

func (s *lifecycleTestStore) FindNotificationByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	for _, stored := range s.notifications {
		if stored.ID == id {
			found := *stored

			return &found, nil
		}
	}

	return nil, repository.ErrNotificationNotFound
}

func (s *lifecycleTestStore) FindNotificationsByEmergency(_ context.Context, emergencyID uuid.UUID) ([]*entity.Notification, error) {
	var result []*entity.Notification
	for _, stored := range s.notifications {
		if stored.EmergencyID == emergencyID {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) FindNotificationsByRecipient(_ context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) ([]*entity.Notification, error) {
	var result []*entity.Notification
	for _, stored := range s.notifications {
		if stored.RecipientType == recipientType &&
			stored.RecipientID != nil && *stored.RecipientID == recipientID {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) CountUnreadByRecipient(_ context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) (int64, error) {
	var count int64
	for _, stored := range s.notifications {
		if stored.RecipientType == recipientType &&
			stored.RecipientID != nil && *stored.RecipientID == recipientID &&
			stored.ReadAt == nil {
			count++
		}
	}

	return count, nil
}

func (s *lifecycleTestStore) MarkNotificationRead(_ context.Context, id uuid.UUID) error {
	for _, stored := range s.notifications {
		if stored.ID == id {
			stored.Status = entity.DeliveryRead

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

func (s *lifecycleTestStore) UpdateDeliveryStatus(_ context.Context, id uuid.UUID, status entity.DeliveryStatus) error {
	for _, stored := range s.notifications {
		if stored.ID == id {
			stored.Status = status

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

func (s *lifecycleTestStore) CreatePatient(_ context.Context, patient *entity.Patient) error {
	stored := *patient
	s.patients[patient.ID] = &stored

	return nil
}

func (s *lifecycleTestStore) FindPatientByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	stored, ok := s.patients[id]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	found := *stored

	return &found, nil
}

func (s *lifecycleTestStore) UpdatePatient(_ context.Context, patient *entity.Patient) error {
	if _, ok := s.patients[patient.ID]; !ok {
		return repository.ErrPatientNotFound
	}
	updated := *patient
	s.patients[patient.ID] = &updated

	return nil
}

func (s *lifecycleTestStore) FindPrimaryContacts(_ context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error) {
	var result []*entity.EmergencyContact
	for _, stored := range s.contacts[patientID] {
		if stored.IsPrimary {
			found := *stored
			result = append(result, &found)
		}
	}

	return result, nil
}

func (s *lifecycleTestStore) CreateEmergencyContact(_ context.Context, contact *entity.EmergencyContact) error {
	stored := *contact
	s.contacts[contact.PatientID] = append(s.contacts[contact.PatientID], &stored)

	return nil
}

// snapshotHospital reads the stored hospital outside any use case call.
func (s *lifecycleTestStore) snapshotHospital(t *testing.T, id uuid.UUID) entity.Hospital {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.hospitals[id]
	require.True(t, ok)

	return *stored
}

func (s *lifecycleTestStore) snapshotAmbulance(t *testing.T, id uuid.UUID) entity.Ambulance {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.ambulances[id]
	require.True(t, ok)

	return *stored
}

func newLifecycleDispatchService(store *lifecycleTestStore) usecase.DispatchUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fanout := NewNotificationFanout(NotificationFanoutParams{
		GeoMatcher: NewGeoMatcher(),
		Config:     nil,
		Logger:     logger,
	})

	return NewDispatchService(DispatchServiceParams{
		TxManager:      store,
		Fanout:         fanout,
		Ledger:         NewResourceLedger(),
		EventPublisher: nil,
		Config:         nil,
		Logger:         logger,
	})
}

func seedLifecycleFixtures(ctx context.Context, t *testing.T, store *lifecycleTestStore, ambulanceCount int) (*entity.Hospital, *entity.Patient, []uuid.UUID) {
	t.Helper()

	hospital := testHospital("City General", 40.0, -74.0, ambulanceCount, true, "Cardiology")
	hospital.Phone = "+15550200"
	require.NoError(t, store.CreateHospital(ctx, hospital))

	ambulanceIDs := make([]uuid.UUID, 0, ambulanceCount)
	for i := range ambulanceCount {
		ambulance := &entity.Ambulance{
			ID:            uuid.New(),
			HospitalID:    hospital.ID,
			VehicleNumber: fmt.Sprintf("AMB-%02d", i+1),
			Status:        entity.AmbulanceAvailable,
		}
		require.NoError(t, store.CreateAmbulance(ctx, ambulance))
		ambulanceIDs = append(ambulanceIDs, ambulance.ID)
	}

	lat, lon := 40.01, -74.0
	patient := &entity.Patient{
		ID:                    uuid.New(),
		Name:                  "Alex Rivera",
		Phone:                 "+15550100",
		Latitude:              &lat,
		Longitude:             &lon,
		EmergencyContactName:  "Morgan Chen",
		EmergencyContactPhone: "+15550101",
	}
	require.NoError(t, store.CreatePatient(ctx, patient))

	return hospital, patient, ambulanceIDs
}

// Walks one emergency through its whole lifecycle against the in-memory
// store: create fans out to the hospital 1.11 km away and the primary
// contact, responding claims the emergency and drains the pool, a second
// response loses, and completion frees the ambulance again.
func TestDispatchService_LifecycleScenario(t *testing.T) {
	ctx := context.Background()
	store := newLifecycleTestStore()
	hospital, patient, ambulanceIDs := seedLifecycleFixtures(ctx, t, store, 1)
	svc := newLifecycleDispatchService(store)

	lat, lon := 40.01, -74.0
	emergency, notified, err := svc.CreateEmergency(ctx, usecase.CreateEmergencyInput{
		PatientID:   patient.ID,
		Priority:    entity.PriorityHigh,
		Description: "chest pain",
		Latitude:    &lat,
		Longitude:   &lon,
		Address:     "12 Elm St",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyPending, emergency.Status)
	assert.Equal(t, 2, notified)

	eta := 10
	responded, err := svc.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
		EmergencyID:             emergency.ID,
		HospitalID:              hospital.ID,
		EstimatedArrivalMinutes: &eta,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyDispatched, responded.Status)

	assert.Equal(t, 0, store.snapshotHospital(t, hospital.ID).AvailableAmbulances)
	dispatched := store.snapshotAmbulance(t, ambulanceIDs[0])
	assert.Equal(t, entity.AmbulanceDispatched, dispatched.Status)
	require.NotNil(t, dispatched.CurrentEmergencyID)
	assert.Equal(t, emergency.ID, *dispatched.CurrentEmergencyID)

	_, err = svc.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
		EmergencyID: emergency.ID,
		HospitalID:  hospital.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrEmergencyNotFoundOrHandled)

	completed, err := svc.CompleteEmergency(ctx, emergency.ID, "patient stabilized")
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	assert.Equal(t, 1, store.snapshotHospital(t, hospital.ID).AvailableAmbulances)
	freed := store.snapshotAmbulance(t, ambulanceIDs[0])
	assert.Equal(t, entity.AmbulanceAvailable, freed.Status)
	assert.Nil(t, freed.CurrentEmergencyID)
}

func TestDispatchService_ConcurrentResponds_ExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	store := newLifecycleTestStore()
	hospital, patient, _ := seedLifecycleFixtures(ctx, t, store, 3)
	svc := newLifecycleDispatchService(store)

	emergency, _, err := svc.CreateEmergency(ctx, usecase.CreateEmergencyInput{
		PatientID:   patient.ID,
		Priority:    entity.PriorityCritical,
		Description: "fall at home",
	})
	require.NoError(t, err)

	const responders = 8

	results := make([]error, responders)
	var wg sync.WaitGroup
	for i := range responders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = svc.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
				EmergencyID: emergency.ID,
				HospitalID:  hospital.ID,
			})
		}()
	}
	wg.Wait()

	winners := 0
	for _, resErr := range results {
		if resErr == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, resErr, domainerrors.ErrEmergencyNotFoundOrHandled)
	}
	assert.Equal(t, 1, winners)

	final, err := svc.GetEmergency(ctx, emergency.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyDispatched, final.Status)

	// Exactly one allocation came out of the pool.
	assert.Equal(t, 2, store.snapshotHospital(t, hospital.ID).AvailableAmbulances)
}

func TestResourceLedger_ConcurrentAllocateRelease_CounterBounds(t *testing.T) {
	ctx := context.Background()
	store := newLifecycleTestStore()
	hospital, _, _ := seedLifecycleFixtures(ctx, t, store, 2)
	ledger := NewResourceLedger()

	const (
		workers    = 4
		iterations = 25
	)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				var ambulance *entity.Ambulance
				err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
					var allocErr error
					ambulance, allocErr = ledger.Allocate(ctx, repos, hospital.ID, uuid.New())

					return allocErr
				})
				if errors.Is(err, repository.ErrNoAmbulanceAvailable) {
					// Pool drained by the other workers, try again.
					continue
				}
				if !assert.NoError(t, err) {
					return
				}
				if !assert.NotNil(t, ambulance) {
					return
				}

				available := store.snapshotHospital(t, hospital.ID).AvailableAmbulances
				assert.GreaterOrEqual(t, available, 0)
				assert.LessOrEqual(t, available, 2)

				releaseErr := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
					return ledger.Release(ctx, repos, ambulance.HospitalID, ambulance.ID)
				})
				assert.NoError(t, releaseErr)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, store.snapshotHospital(t, hospital.ID).AvailableAmbulances)
	for _, stored := range store.ambulances {
		assert.Equal(t, entity.AmbulanceAvailable, stored.Status)
	}
}
