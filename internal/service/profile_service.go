package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

type profileRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// ProfileUpdateRequest carries the editable profile settings.
type ProfileUpdateRequest struct {
	DisplayName   string  `json:"display_name" validate:"max=120"`
	WeekStartDay  int     `json:"week_start_day" validate:"gte=0,lte=6"`
	BirthDate     *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	RetentionDays int     `json:"retention_days" validate:"gte=0,lte=3650"`
}

// ProfileService reads and writes per-user presentation settings.
// Guests have no account row; they see defaults and cannot save.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService instance.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// Get returns the caller's profile, falling back to defaults when none
// has been saved yet.
func (s *ProfileService) Get(ctx context.Context, p Principal) (*models.Profile, error) {
	if p.Guest() {
		return &models.Profile{WeekStartDay: 1, RetentionDays: 400}, nil
	}
	profile, err := s.repo.GetByUser(ctx, p.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// Update persists the caller's profile settings.
func (s *ProfileService) Update(ctx context.Context, p Principal, req ProfileUpdateRequest) (*models.Profile, error) {
	if p.Guest() {
		return nil, appErrors.Clone(appErrors.ErrGuestReadOnly, "guests cannot edit profile settings")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	profile := &models.Profile{
		UserID:        p.ID,
		DisplayName:   req.DisplayName,
		WeekStartDay:  req.WeekStartDay,
		BirthDate:     req.BirthDate,
		RetentionDays: req.RetentionDays,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}
	return profile, nil
}
