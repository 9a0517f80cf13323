package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/volunteer-hub/internal/domain"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	return New(Seed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestSeed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tables := Seed(now)

	require.Len(t, tables.Roles, 3)
	assert.Equal(t, "admin", tables.Roles[0].Name)
	assert.Equal(t, "coordinator", tables.Roles[1].Name)
	assert.Equal(t, "volunteer", tables.Roles[2].Name)

	require.Len(t, tables.NGOs, 3)
	require.Len(t, tables.Events, 3)
	assert.Equal(t, 4, tables.NextEventID)
	assert.Equal(t, 1, tables.NextUserID)
	assert.Equal(t, 1, tables.NextRegistrationID)

	assert.Equal(t, now.AddDate(0, 0, 30), tables.Events[0].ScheduledAt)
	assert.Equal(t, now.AddDate(0, 0, 15), tables.Events[1].ScheduledAt)
	for i, e := range tables.Events {
		assert.Equal(t, i+1, e.ID)
		assert.Equal(t, domain.EventStatusActive, e.Status)
	}
}

func TestCreateUserAssignsIncreasingIDs(t *testing.T) {
	st := seededStore(t)

	first, err := st.CreateUser(domain.User{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	second, err := st.CreateUser(domain.User{Name: "B", Email: "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := seededStore(t)

	_, err := st.CreateUser(domain.User{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = st.CreateUser(domain.User{Name: "B", Email: "a@x.com"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	snap := st.Snapshot()
	assert.Len(t, snap.Users, 1)
	assert.Equal(t, 2, snap.NextUserID)
}

func TestCreateUserEmailIsCaseSensitive(t *testing.T) {
	st := seededStore(t)

	_, err := st.CreateUser(domain.User{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = st.CreateUser(domain.User{Email: "A@x.com"})
	assert.NoError(t, err)
}

func TestCreateRegistrationDuplicatePair(t *testing.T) {
	st := seededStore(t)

	first, err := st.CreateRegistration(domain.Registration{EventID: 1, VolunteerID: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	_, err = st.CreateRegistration(domain.Registration{EventID: 1, VolunteerID: 7})
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Equal(t, 1, st.RegistrationCount())

	// Same event, different volunteer is fine.
	second, err := st.CreateRegistration(domain.Registration{EventID: 1, VolunteerID: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateEventContinuesFromSeedCounter(t *testing.T) {
	st := seededStore(t)

	created := st.CreateEvent(domain.Event{Title: "Новое мероприятие", NGOID: 1})
	assert.Equal(t, 4, created.ID)

	next := st.CreateEvent(domain.Event{Title: "Ещё одно", NGOID: 2})
	assert.Equal(t, 5, next.ID)
}

func TestRegistrationsByVolunteerPreservesOrder(t *testing.T) {
	st := seededStore(t)

	for _, eventID := range []int{3, 1, 2} {
		_, err := st.CreateRegistration(domain.Registration{EventID: eventID, VolunteerID: 1})
		require.NoError(t, err)
	}
	_, err := st.CreateRegistration(domain.Registration{EventID: 1, VolunteerID: 2})
	require.NoError(t, err)

	regs := st.RegistrationsByVolunteer(1)
	require.Len(t, regs, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{regs[0].EventID, regs[1].EventID, regs[2].EventID})
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := seededStore(t)
	_, err := st.CreateUser(domain.User{Name: "Мария", Email: "m@x.com", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	raw, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)

	var restored Tables
	require.NoError(t, json.Unmarshal(raw, &restored))

	st2 := New(restored)
	user, ok := st2.UserByEmail("m@x.com")
	require.True(t, ok)
	assert.Equal(t, "Мария", user.Name)

	// Counters survive the round trip.
	second, err := st2.CreateUser(domain.User{Email: "n@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	st := seededStore(t)
	snap := st.Snapshot()
	snap.Events[0].Title = "changed"

	current, ok := st.EventByID(1)
	require.True(t, ok)
	assert.NotEqual(t, "changed", current.Title)
}
