package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/events"
	"github.com/spec-kit/volunteer-hub/internal/store"
)

func newEventService() (*EventService, store.Registry) {
	registry := store.NewMemoryRegistry()
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	return NewEventService(registry, dispatcher), registry
}

func TestListEvents(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	details, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, details, 3)

	// Insertion order with NGO names attached.
	assert.Equal(t, 1, details[0].Event.ID)
	assert.Equal(t, "НКО «Город добрых дел»", details[0].NGOName)
	assert.Equal(t, "НКО «Поддержка рядом»", details[1].NGOName)
	assert.Equal(t, "НКО «Чистый город»", details[2].NGOName)
}

func TestListEventsUnaffectedByRegistrations(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	before, err := svc.ListEvents(ctx)
	require.NoError(t, err)

	_, err = svc.RegisterForEvent(ctx, 1, 42)
	require.NoError(t, err)

	after, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListEventsMissingNGOYieldsEmptyName(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	_, err := svc.CreateEvent(ctx, CreateEventParams{
		Title:       "Событие без НКО",
		NGOID:       99,
		ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	details, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, details, 4)
	assert.Equal(t, "", details[3].NGOName)
}

func TestCreateEvent(t *testing.T) {
	svc, registry := newEventService()
	ctx := testContext("s1")

	id, err := svc.CreateEvent(ctx, CreateEventParams{
		Title:         "Сбор помощи",
		Description:   "Сортировка и упаковка.",
		NGOID:         1,
		ScheduledAt:   time.Now().AddDate(0, 0, 10),
		Location:      "Москва",
		MaxVolunteers: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	st, err := registry.Get(ctx, "s1")
	require.NoError(t, err)
	event, ok := st.EventByID(id)
	require.True(t, ok)
	assert.Equal(t, domain.EventStatusActive, event.Status)
	assert.Equal(t, 2, event.DurationHours) // default
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	tests := []struct {
		name   string
		params CreateEventParams
	}{
		{"short title", CreateEventParams{Title: "ab", NGOID: 1, ScheduledAt: time.Now()}},
		{"missing ngo", CreateEventParams{Title: "Событие", ScheduledAt: time.Now()}},
		{"missing date", CreateEventParams{Title: "Событие", NGOID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, tt.params)
			assert.ErrorIs(t, err, domain.ErrEventFields)
		})
	}
}

func TestRegisterForEvent(t *testing.T) {
	svc, registry := newEventService()
	ctx := testContext("s1")

	id, err := svc.RegisterForEvent(ctx, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	st, err := registry.Get(ctx, "s1")
	require.NoError(t, err)
	reg, ok := st.RegistrationByID(id)
	require.True(t, ok)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
	assert.Equal(t, 0, reg.HoursEarned)
	assert.False(t, reg.RegisteredAt.IsZero())
}

func TestRegisterForEventDuplicate(t *testing.T) {
	svc, registry := newEventService()
	ctx := testContext("s1")

	_, err := svc.RegisterForEvent(ctx, 1, 42)
	require.NoError(t, err)

	_, err = svc.RegisterForEvent(ctx, 1, 42)
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	st, err := registry.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.RegistrationCount())
}

func TestRegisterForEventValidation(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	_, err := svc.RegisterForEvent(ctx, 0, 42)
	assert.ErrorIs(t, err, domain.ErrSignupIDs)
	_, err = svc.RegisterForEvent(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrSignupIDs)
}

func TestRegisterForEventNoReferentialChecks(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	// Neither event 999 nor volunteer 888 exist; the sign-up still succeeds.
	id, err := svc.RegisterForEvent(ctx, 999, 888)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestCompleteRegistration(t *testing.T) {
	registry := store.NewMemoryRegistry()
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	authSvc := NewAuthService(testAuthConfig(), registry, dispatcher)
	eventSvc := NewEventService(registry, dispatcher)
	ctx := testContext("s1")

	userID, err := authSvc.RegisterUser(ctx, "A", "a@x.com", "p", 0, "")
	require.NoError(t, err)
	regID, err := eventSvc.RegisterForEvent(ctx, 1, userID)
	require.NoError(t, err)

	mark := 5.0
	completion, err := eventSvc.CompleteRegistration(ctx, CompleteRegistrationParams{
		RegistrationID: regID,
		HoursEarned:    8,
		Rating:         &mark,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RegistrationStatusCompleted, completion.Registration.Status)
	assert.Equal(t, 8, completion.Registration.HoursEarned)
	assert.Equal(t, 8, completion.User.TotalHours)
	assert.Equal(t, 5.0, completion.User.Rating)

	require.NotNil(t, completion.Certificate)
	assert.Equal(t, "Сертификат за участие: Помощь в проведении благотворительного марафона", completion.Certificate.Title)
	assert.Equal(t, 8, completion.Certificate.HoursRequired)

	// The certificate shows up in the profile afterwards.
	profile, err := authSvc.Profile(ctx, userID)
	require.NoError(t, err)
	require.Len(t, profile.Certificates, 1)
}

func TestCompleteRegistrationRatingAverages(t *testing.T) {
	registry := store.NewMemoryRegistry()
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	authSvc := NewAuthService(testAuthConfig(), registry, dispatcher)
	eventSvc := NewEventService(registry, dispatcher)
	ctx := testContext("s1")

	userID, err := authSvc.RegisterUser(ctx, "A", "a@x.com", "p", 0, "")
	require.NoError(t, err)

	marks := []float64{4, 5}
	for i, mark := range marks {
		regID, err := eventSvc.RegisterForEvent(ctx, i+1, userID)
		require.NoError(t, err)
		m := mark
		_, err = eventSvc.CompleteRegistration(ctx, CompleteRegistrationParams{
			RegistrationID: regID,
			HoursEarned:    2,
			Rating:         &m,
		})
		require.NoError(t, err)
	}

	profile, err := authSvc.Profile(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, profile.User.Rating, 1e-9)
	assert.Equal(t, 4, profile.User.TotalHours)
}

func TestCompleteRegistrationTwiceFails(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	regID, err := svc.RegisterForEvent(ctx, 1, 42)
	require.NoError(t, err)

	_, err = svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: regID, HoursEarned: 3})
	require.NoError(t, err)

	_, err = svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: regID, HoursEarned: 3})
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestCompleteRegistrationValidation(t *testing.T) {
	svc, _ := newEventService()
	ctx := testContext("s1")

	_, err := svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: 0, HoursEarned: 3})
	assert.ErrorIs(t, err, domain.ErrCompletionArgs)

	_, err = svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: 1, HoursEarned: 0})
	assert.ErrorIs(t, err, domain.ErrCompletionArgs)

	bad := 6.0
	_, err = svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: 1, HoursEarned: 1, Rating: &bad})
	require.Error(t, err)

	_, err = svc.CompleteRegistration(ctx, CompleteRegistrationParams{RegistrationID: 77, HoursEarned: 1})
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}
