package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/schedule"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

type ratingRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
	ReplaceForUser(ctx context.Context, userID string, ratings []models.Rating) error
}

type noteRepository interface {
	ListWeeklyByUser(ctx context.Context, userID string) ([]models.WeeklyNote, error)
	ReplaceWeeklyForUser(ctx context.Context, userID string, notes []models.WeeklyNote) error
	ListMonthByUser(ctx context.Context, userID string) ([]models.MonthNote, error)
	ReplaceMonthForUser(ctx context.Context, userID string, notes []models.MonthNote) error
}

type focusRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.FocusArea, error)
	ReplaceForUser(ctx context.Context, userID string, areas []models.FocusArea) error
}

type dayOffRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.DayOff, error)
	ReplaceForUser(ctx context.Context, userID string, days []models.DayOff) error
}

const (
	guestRatingsResource = "ratings"
	guestWeeklyResource  = "weekly-notes"
	guestMonthResource   = "month-notes"
	guestFocusResource   = "focus-areas"
	guestDayOffsResource = "day-offs"
)

// JournalService covers the flat journal collections: per-day ratings,
// weekly and monthly notes, focus areas and day-offs. Every collection
// is replaced wholesale on save, matching the client's document model.
type JournalService struct {
	ratings   ratingRepository
	notes     noteRepository
	focus     focusRepository
	dayOffs   dayOffRepository
	guests    guestStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJournalService constructs a JournalService instance.
func NewJournalService(ratings ratingRepository, notes noteRepository, focus focusRepository, dayOffs dayOffRepository, guests guestStore, validate *validator.Validate, logger *zap.Logger) *JournalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &JournalService{ratings: ratings, notes: notes, focus: focus, dayOffs: dayOffs, guests: guests, validator: validate, logger: logger}
}

// Ratings returns all productivity ratings for the caller.
func (s *JournalService) Ratings(ctx context.Context, p Principal) ([]models.Rating, error) {
	if p.Guest() {
		var out []models.Rating
		if err := s.guestLoad(ctx, p, guestRatingsResource, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := s.ratings.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load ratings")
	}
	return out, nil
}

// SaveRatings replaces the caller's ratings collection.
func (s *JournalService) SaveRatings(ctx context.Context, p Principal, ratings []models.Rating) error {
	for i, r := range ratings {
		if !schedule.DayKey(r.DayKey).Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("rating %d has an invalid day key", i))
		}
		if r.Score < 0 || r.Score > 5 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("rating %d score out of range", i))
		}
	}
	if p.Guest() {
		return s.guestSave(ctx, p, guestRatingsResource, ratings)
	}
	if err := s.ratings.ReplaceForUser(ctx, p.ID, ratings); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save ratings")
	}
	return nil
}

// WeeklyNotes returns the caller's week-keyed journal notes.
func (s *JournalService) WeeklyNotes(ctx context.Context, p Principal) ([]models.WeeklyNote, error) {
	if p.Guest() {
		var out []models.WeeklyNote
		if err := s.guestLoad(ctx, p, guestWeeklyResource, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := s.notes.ListWeeklyByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load weekly notes")
	}
	return out, nil
}

// SaveWeeklyNotes replaces the weekly notes collection. Week keys must
// parse as ISO week values like "2024-W11".
func (s *JournalService) SaveWeeklyNotes(ctx context.Context, p Principal, notes []models.WeeklyNote) error {
	for i, n := range notes {
		if _, ok := schedule.ParseISOWeekInput(n.WeekKey); !ok {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("note %d has an invalid week key", i))
		}
	}
	if p.Guest() {
		return s.guestSave(ctx, p, guestWeeklyResource, notes)
	}
	if err := s.notes.ReplaceWeeklyForUser(ctx, p.ID, notes); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save weekly notes")
	}
	return nil
}

// MonthNotes returns the caller's month-keyed journal notes.
func (s *JournalService) MonthNotes(ctx context.Context, p Principal) ([]models.MonthNote, error) {
	if p.Guest() {
		var out []models.MonthNote
		if err := s.guestLoad(ctx, p, guestMonthResource, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := s.notes.ListMonthByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load month notes")
	}
	return out, nil
}

// SaveMonthNotes replaces the month notes collection.
func (s *JournalService) SaveMonthNotes(ctx context.Context, p Principal, notes []models.MonthNote) error {
	for i, n := range notes {
		var year, month int
		if _, err := fmt.Sscanf(n.MonthKey, "%d-%d", &year, &month); err != nil || month < 1 || month > 12 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("note %d has an invalid month key", i))
		}
	}
	if p.Guest() {
		return s.guestSave(ctx, p, guestMonthResource, notes)
	}
	if err := s.notes.ReplaceMonthForUser(ctx, p.ID, notes); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save month notes")
	}
	return nil
}

// FocusAreas returns the caller's focus areas in stored order.
func (s *JournalService) FocusAreas(ctx context.Context, p Principal) ([]models.FocusArea, error) {
	if p.Guest() {
		var out []models.FocusArea
		if err := s.guestLoad(ctx, p, guestFocusResource, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := s.focus.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load focus areas")
	}
	return out, nil
}

// SaveFocusAreas replaces the focus area collection, reassigning the
// stored positions from slice order.
func (s *JournalService) SaveFocusAreas(ctx context.Context, p Principal, areas []models.FocusArea) error {
	for i := range areas {
		if areas[i].Label == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("focus area %d is missing a label", i))
		}
		if areas[i].WeeklyHours < 0 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("focus area %d has negative hours", i))
		}
		areas[i].Position = i
	}
	if p.Guest() {
		return s.guestSave(ctx, p, guestFocusResource, areas)
	}
	if err := s.focus.ReplaceForUser(ctx, p.ID, areas); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save focus areas")
	}
	return nil
}

// DayOffs returns the caller's excluded days.
func (s *JournalService) DayOffs(ctx context.Context, p Principal) ([]models.DayOff, error) {
	if p.Guest() {
		var out []models.DayOff
		if err := s.guestLoad(ctx, p, guestDayOffsResource, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := s.dayOffs.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load day-offs")
	}
	return out, nil
}

// SaveDayOffs replaces the day-off collection.
func (s *JournalService) SaveDayOffs(ctx context.Context, p Principal, days []models.DayOff) error {
	for i, d := range days {
		if !schedule.DayKey(d.DayKey).Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("day-off %d has an invalid day key", i))
		}
	}
	if p.Guest() {
		return s.guestSave(ctx, p, guestDayOffsResource, days)
	}
	if err := s.dayOffs.ReplaceForUser(ctx, p.ID, days); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save day-offs")
	}
	return nil
}

func (s *JournalService) guestLoad(ctx context.Context, p Principal, resource string, dest interface{}) error {
	if err := s.guests.Get(ctx, p.ID, resource, dest); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guest "+resource)
	}
	return nil
}

func (s *JournalService) guestSave(ctx context.Context, p Principal, resource string, value interface{}) error {
	if err := s.guests.Set(ctx, p.ID, resource, value); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save guest "+resource)
	}
	return nil
}
