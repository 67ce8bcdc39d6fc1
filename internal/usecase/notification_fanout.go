package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
)

// NotificationFanout builds and persists the durable notification rows
// for emergency lifecycle events. Rows are created PENDING; actual push
// delivery happens later in the dispatch worker. All methods write
// through repositories bound to the caller's transaction.
type NotificationFanout interface {
	// OnEmergencyCreated notifies the nearest dispatch-capable hospitals
	// with one AMBULANCE_REQUEST each, capped at the closest five, and the
	// patient's primary contacts with EMERGENCY_CONTACT_ALERTs. The inline
	// primary contact and flagged supplementary contacts are both notified
	// even when they share a phone number. When neither the emergency nor
	// the patient has a usable location, hospital fan-out is skipped with a
	// logged condition and only contact alerts are produced.
	OnEmergencyCreated(ctx context.Context, repos repository.RepositoryFactory, emergency *entity.Emergency, patient *entity.Patient) ([]*entity.Notification, error)

	// OnStatusChanged sends the given message as a STATUS_UPDATE to the
	// patient and, when one is on file, to the patient's inline primary
	// contact. Nearby hospitals are not re-queried.
	OnStatusChanged(ctx context.Context, repos repository.RepositoryFactory, emergency *entity.Emergency, patient *entity.Patient, message string) ([]*entity.Notification, error)
}
