package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/events"
	"github.com/spec-kit/volunteer-hub/internal/store"
)

// EventService covers the event catalog and sign-up lifecycle.
type EventService struct {
	stores     store.Registry
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewEventService builds the service.
func NewEventService(stores store.Registry, dispatcher events.Dispatcher) *EventService {
	return &EventService{stores: stores, dispatcher: dispatcher, now: time.Now}
}

// ListEvents returns every event in insertion order, each joined with its
// organization's name (empty when the NGO is missing).
func (s *EventService) ListEvents(ctx context.Context) ([]EventDetail, error) {
	_, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}

	evts := st.Events()
	details := make([]EventDetail, 0, len(evts))
	for _, e := range evts {
		detail := EventDetail{Event: e}
		if ngo, ok := st.NGOByID(e.NGOID); ok {
			detail.NGOName = ngo.Name
		}
		details = append(details, detail)
	}
	return details, nil
}

// CreateEventParams carries the fields for a new event.
type CreateEventParams struct {
	Title         string
	Description   string
	NGOID         int
	ScheduledAt   time.Time
	Location      string
	MaxVolunteers int
	DurationHours int
}

// CreateEvent publishes a new active event.
func (s *EventService) CreateEvent(ctx context.Context, params CreateEventParams) (int, error) {
	if utf8.RuneCountInString(params.Title) < 3 || params.NGOID == 0 || params.ScheduledAt.IsZero() {
		return 0, domain.ErrEventFields
	}
	if params.DurationHours <= 0 {
		params.DurationHours = 2
	}

	sid, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return 0, err
	}

	event := st.CreateEvent(domain.Event{
		Title:         params.Title,
		Description:   params.Description,
		NGOID:         params.NGOID,
		ScheduledAt:   params.ScheduledAt,
		Location:      params.Location,
		MaxVolunteers: params.MaxVolunteers,
		DurationHours: params.DurationHours,
		Status:        domain.EventStatusActive,
	})
	if err := s.stores.Save(ctx, sid, st); err != nil {
		return 0, domain.NewInternalError(err)
	}

	return event.ID, nil
}

// RegisterForEvent records a sign-up. Event and volunteer ids are not checked
// against existing rows; only the (event, volunteer) pair must be new.
func (s *EventService) RegisterForEvent(ctx context.Context, eventID, volunteerID int) (int, error) {
	if eventID == 0 || volunteerID == 0 {
		return 0, domain.ErrSignupIDs
	}

	sid, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return 0, err
	}

	reg, err := st.CreateRegistration(domain.Registration{
		EventID:      eventID,
		VolunteerID:  volunteerID,
		RegisteredAt: s.now(),
		HoursEarned:  0,
		Status:       domain.RegistrationStatusRegistered,
	})
	if err != nil {
		return 0, err
	}
	if err := s.stores.Save(ctx, sid, st); err != nil {
		return 0, domain.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSignupCreated,
		SessionID: sid,
		Timestamp: s.now(),
		Payload: events.SignupCreatedPayload{
			RegistrationID: reg.ID,
			EventID:        reg.EventID,
			VolunteerID:    reg.VolunteerID,
		},
	})

	return reg.ID, nil
}

// CompleteRegistrationParams carries the completion input.
type CompleteRegistrationParams struct {
	RegistrationID int
	HoursEarned    int
	Rating         *float64
}

// CompleteRegistration confirms participation: the registration becomes
// completed with its earned hours, the volunteer's totals are updated, the
// optional mark is folded into the running-average rating, and a certificate
// is issued.
func (s *EventService) CompleteRegistration(ctx context.Context, params CompleteRegistrationParams) (*Completion, error) {
	if params.RegistrationID == 0 || params.HoursEarned <= 0 {
		return nil, domain.ErrCompletionArgs
	}
	if params.Rating != nil && (*params.Rating < 1 || *params.Rating > 5) {
		return nil, domain.NewValidationError("Оценка должна быть от 1 до 5")
	}

	sid, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}

	reg, ok := st.RegistrationByID(params.RegistrationID)
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	if reg.Status == domain.RegistrationStatusCompleted {
		return nil, domain.ErrAlreadyCompleted
	}

	reg.Status = domain.RegistrationStatusCompleted
	reg.HoursEarned = params.HoursEarned
	reg.Rating = params.Rating
	st.UpdateRegistration(reg)

	completion := &Completion{Registration: reg}
	if event, found := st.EventByID(reg.EventID); found {
		completion.Event = &event
	}

	if user, found := st.UserByID(reg.VolunteerID); found {
		user.TotalHours += params.HoursEarned
		user.Rating = averageRating(st.RegistrationsByVolunteer(reg.VolunteerID))
		st.UpdateUser(user)

		cert := st.CreateCertificate(buildCertificate(reg, completion.Event, s.now()))
		completion.Certificate = &cert
		completion.User = user

		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCertificateIssued,
			SessionID: sid,
			Timestamp: s.now(),
			Payload: events.CertificateIssuedPayload{
				CertificateID: cert.ID,
				VolunteerID:   cert.VolunteerID,
				Title:         cert.Title,
			},
		})
	}

	if err := s.stores.Save(ctx, sid, st); err != nil {
		return nil, domain.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRegistrationCompleted,
		SessionID: sid,
		Timestamp: s.now(),
		Payload: events.RegistrationCompletedPayload{
			RegistrationID: reg.ID,
			VolunteerID:    reg.VolunteerID,
			HoursEarned:    reg.HoursEarned,
			Rating:         reg.Rating,
		},
	})

	return completion, nil
}

// averageRating is the arithmetic mean of all marks given to the volunteer's
// completed registrations; 0.0 until the first mark.
func averageRating(regs []domain.Registration) float64 {
	var sum float64
	var count int
	for _, r := range regs {
		if r.Rating != nil {
			sum += *r.Rating
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

func buildCertificate(reg domain.Registration, event *domain.Event, issuedAt time.Time) domain.Certificate {
	cert := domain.Certificate{
		VolunteerID:   reg.VolunteerID,
		Title:         fmt.Sprintf("Сертификат за участие: Мероприятие #%d", reg.EventID),
		Description:   fmt.Sprintf("Подтверждает волонтёрское участие: %d ч.", reg.HoursEarned),
		HoursRequired: reg.HoursEarned,
		IssuedAt:      issuedAt,
	}
	if event != nil {
		cert.Title = "Сертификат за участие: " + event.Title
		cert.HoursRequired = event.DurationHours
	}
	return cert
}
