package store

import (
	"time"

	"github.com/spec-kit/volunteer-hub/internal/domain"
)

// Seed builds the reference data every new session store starts from: three
// roles, three NGOs and three sample events scheduled relative to now. Event
// ids 1..3 are taken by the samples, so the event counter starts at 4.
func Seed(now time.Time) Tables {
	return Tables{
		Roles: []domain.Role{
			{ID: 1, Name: domain.RoleAdmin},
			{ID: 2, Name: domain.RoleCoordinator},
			{ID: 3, Name: domain.RoleVolunteer},
		},
		NGOs: []domain.NGO{
			{ID: 1, Name: "НКО «Город добрых дел»", Description: "Организация занимается проведением благотворительных мероприятий."},
			{ID: 2, Name: "НКО «Поддержка рядом»", Description: "Онлайн поддержка и консультации."},
			{ID: 3, Name: "НКО «Чистый город»", Description: "Экологические инициативы и субботники."},
		},
		Events: []domain.Event{
			{
				ID:            1,
				Title:         "Помощь в проведении благотворительного марафона",
				Description:   "Регистрация участников, навигация по площадке, помощь организаторам.",
				NGOID:         1,
				ScheduledAt:   now.AddDate(0, 0, 30),
				Location:      "Москва, ВДНХ",
				MaxVolunteers: 30,
				DurationHours: 8,
				Status:        domain.EventStatusActive,
			},
			{
				ID:            2,
				Title:         "Онлайн‑поддержка горячей линии НКО",
				Description:   "Консультации по стандартным вопросам, помощь в навигации.",
				NGOID:         2,
				ScheduledAt:   now.AddDate(0, 0, 15),
				Location:      "Онлайн",
				MaxVolunteers: 20,
				DurationHours: 4,
				Status:        domain.EventStatusActive,
			},
			{
				ID:            3,
				Title:         "Экологический субботник в парке",
				Description:   "Уборка территории, посадка деревьев, организация экологических квестов.",
				NGOID:         3,
				ScheduledAt:   now.AddDate(0, 0, 45),
				Location:      "Москва, Сокольники",
				MaxVolunteers: 50,
				DurationHours: 5,
				Status:        domain.EventStatusActive,
			},
		},
		NextUserID:         1,
		NextEventID:        4,
		NextRegistrationID: 1,
		NextCertificateID:  1,
	}
}
