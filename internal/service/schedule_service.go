package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/schedule"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

type scheduleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.ScheduleRow, error)
	ReplaceForUser(ctx context.Context, userID string, rows []models.ScheduleRow) error
}

type scheduleProfileReader interface {
	GetByUser(ctx context.Context, userID string) (*models.Profile, error)
}

type guestStore interface {
	Get(ctx context.Context, guestID, resource string, dest interface{}) error
	Set(ctx context.Context, guestID, resource string, value interface{}) error
}

const guestScheduleResource = "schedule"

// ResolveRequest describes one mutation against a rendered occurrence.
// Meta points back at the stored entry the occurrence was expanded from;
// it is zero for occurrences stored directly on their own day.
type ResolveRequest struct {
	DayKey string          `json:"dayKey" validate:"required"`
	Index  int             `json:"index" validate:"gte=0"`
	Meta   schedule.Meta   `json:"meta"`
	Scope  string          `json:"scope" validate:"omitempty,oneof=single future"`
	Action string          `json:"action" validate:"required,oneof=update delete delete-future"`
	Entry  *schedule.Entry `json:"entry"`
}

// ResolveResult reports where the mutation landed. Found false means the
// referenced entry no longer existed and nothing changed.
type ResolveResult struct {
	TargetDayKey string `json:"targetDayKey,omitempty"`
	TargetIndex  int    `json:"targetIndex"`
	Found        bool   `json:"found"`
}

// ScheduleService owns the schedule document: load, save, occurrence
// expansion, occurrence-level mutations and the week partition.
type ScheduleService struct {
	repo      scheduleRepository
	profiles  scheduleProfileReader
	guests    guestStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService instance. cache may
// be nil; guest data already lives in Redis and is never cached twice.
func NewScheduleService(repo scheduleRepository, profiles scheduleProfileReader, guests guestStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleService{repo: repo, profiles: profiles, guests: guests, cache: cache, validator: validate, logger: logger}
}

// Load returns the caller's full schedule keyed by day.
func (s *ScheduleService) Load(ctx context.Context, p Principal) (schedule.Store, error) {
	if p.Guest() {
		var rows []schedule.Row
		if err := s.guests.Get(ctx, p.ID, guestScheduleResource, &rows); err != nil {
			if errors.Is(err, appErrors.ErrNotFound) {
				return schedule.Store{}, nil
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guest schedule")
		}
		return schedule.FromRows(rows), nil
	}

	dbRows, err := s.repo.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	return schedule.FromRows(toDomainRows(dbRows)), nil
}

// Save replaces the caller's schedule wholesale. The incoming document
// wins; there is no merging with what was stored before.
func (s *ScheduleService) Save(ctx context.Context, p Principal, store schedule.Store) error {
	rows := schedule.ToRows(store, nil)

	if p.Guest() {
		if err := s.guests.Set(ctx, p.ID, guestScheduleResource, rows); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save guest schedule")
		}
		return nil
	}

	if err := s.repo.ReplaceForUser(ctx, p.ID, toModelRows(rows)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	if err := s.cache.Invalidate(ctx, "sched:"+p.ID+":*"); err != nil {
		s.logger.Warn("failed to invalidate schedule cache", zap.Error(err))
	}
	return nil
}

// OccurrencesOn expands the schedule for one day, direct entries first
// and recurring instances after, each group sorted by start time.
func (s *ScheduleService) OccurrencesOn(ctx context.Context, p Principal, dayKey string) ([]schedule.Occurrence, error) {
	day, ok := schedule.DayKey(dayKey).Parse()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid day key")
	}

	cacheKey := "sched:" + p.ID + ":occ:" + dayKey
	if !p.Guest() {
		var cached []schedule.Occurrence
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return cached, nil
		}
	}

	store, err := s.Load(ctx, p)
	if err != nil {
		return nil, err
	}

	occurrences := schedule.OccurrencesOn(store, day)
	schedule.SortByTime(occurrences)

	if !p.Guest() {
		if err := s.cache.Set(ctx, cacheKey, occurrences, 0); err != nil {
			s.logger.Debug("failed to cache occurrences", zap.Error(err))
		}
	}
	return occurrences, nil
}

// Resolve applies one occurrence-level mutation and persists the result.
// Updates on a virtual occurrence first split the recurrence according
// to scope, then write the replacement entry at the resolved position.
func (s *ScheduleService) Resolve(ctx context.Context, p Principal, req ResolveRequest) (*ResolveResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resolve payload")
	}

	occKey := schedule.DayKey(req.DayKey)
	if !occKey.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid day key")
	}

	store, err := s.Load(ctx, p)
	if err != nil {
		return nil, err
	}

	var result ResolveResult
	var next schedule.Store

	switch req.Action {
	case "update":
		if req.Entry == nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "update requires an entry")
		}
		scope := schedule.Scope(req.Scope)
		if scope == "" {
			scope = schedule.ScopeSingle
		}
		resolution := schedule.Resolve(store, occKey, req.Index, req.Meta, scope)
		if resolution.Found {
			entries := resolution.Store[resolution.TargetDayKey]
			if resolution.TargetIndex >= 0 && resolution.TargetIndex < len(entries) {
				entries[resolution.TargetIndex] = *req.Entry
			}
		}
		next = resolution.Store
		result = ResolveResult{
			TargetDayKey: string(resolution.TargetDayKey),
			TargetIndex:  resolution.TargetIndex,
			Found:        resolution.Found,
		}
	case "delete":
		next = schedule.DeleteOccurrence(store, occKey, req.Index, req.Meta)
		result = ResolveResult{Found: true, TargetIndex: -1}
	case "delete-future":
		next = schedule.DeleteFuture(store, occKey, req.Index, req.Meta)
		result = ResolveResult{Found: true, TargetIndex: -1}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown resolve action")
	}

	if err := s.Save(ctx, p, next); err != nil {
		return nil, err
	}
	return &result, nil
}

// Weeks returns the 7-day partition of a year aligned to the caller's
// preferred week start day. Guests get the default Monday alignment.
func (s *ScheduleService) Weeks(ctx context.Context, p Principal, year int) ([]schedule.WeekMeta, error) {
	if year < 1 || year > 9999 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "year out of range")
	}

	weekStartDay := 1
	if !p.Guest() {
		profile, err := s.profiles.GetByUser(ctx, p.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
		}
		weekStartDay = profile.WeekStartDay
	}

	return schedule.BuildWeeksForYear(year, weekStartDay), nil
}

func toDomainRows(rows []models.ScheduleRow) []schedule.Row {
	out := make([]schedule.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schedule.Row{
			DayKey:      r.DayKey,
			Position:    r.Position,
			Time:        r.Time,
			EndTime:     r.EndTime,
			Title:       r.Title,
			Color:       r.Color,
			Repeat:      r.Repeat,
			RepeatUntil: r.RepeatUntil,
			RepeatDays:  r.RepeatDays,
			SkipDates:   r.SkipDates,
		})
	}
	return out
}

func toModelRows(rows []schedule.Row) []models.ScheduleRow {
	out := make([]models.ScheduleRow, 0, len(rows))
	now := time.Now().UTC()
	for _, r := range rows {
		out = append(out, models.ScheduleRow{
			DayKey:      r.DayKey,
			Position:    r.Position,
			Time:        r.Time,
			EndTime:     r.EndTime,
			Title:       r.Title,
			Color:       r.Color,
			Repeat:      r.Repeat,
			RepeatUntil: r.RepeatUntil,
			RepeatDays:  r.RepeatDays,
			SkipDates:   r.SkipDates,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}
