package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

type goalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Goal, error)
	ReplaceForUser(ctx context.Context, userID string, goals []models.Goal) error
}

const guestGoalsResource = "goals"

// GoalService manages goals and their nested key results.
type GoalService struct {
	repo      goalRepository
	guests    guestStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGoalService constructs a GoalService instance.
func NewGoalService(repo goalRepository, guests guestStore, validate *validator.Validate, logger *zap.Logger) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &GoalService{repo: repo, guests: guests, validator: validate, logger: logger}
}

// List returns the caller's goals with key results attached.
func (s *GoalService) List(ctx context.Context, p Principal) ([]models.Goal, error) {
	if p.Guest() {
		var out []models.Goal
		if err := s.guests.Get(ctx, p.ID, guestGoalsResource, &out); err != nil {
			if errors.Is(err, appErrors.ErrNotFound) {
				return nil, nil
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guest goals")
		}
		return out, nil
	}
	out, err := s.repo.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load goals")
	}
	return out, nil
}

// Save replaces the caller's goals wholesale. Positions are reassigned
// from slice order for both goals and their key results.
func (s *GoalService) Save(ctx context.Context, p Principal, goals []models.Goal) error {
	for i := range goals {
		if goals[i].Title == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("goal %d is missing a title", i))
		}
		goals[i].Position = i
		for j := range goals[i].KeyResults {
			if goals[i].KeyResults[j].Title == "" {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("goal %d key result %d is missing a title", i, j))
			}
			goals[i].KeyResults[j].Position = j
		}
	}

	if p.Guest() {
		if err := s.guests.Set(ctx, p.ID, guestGoalsResource, goals); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save guest goals")
		}
		return nil
	}
	if err := s.repo.ReplaceForUser(ctx, p.ID, goals); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save goals")
	}
	return nil
}
