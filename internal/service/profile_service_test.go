package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

type mockProfileRepo struct {
	profile  *models.Profile
	upserted *models.Profile
}

func (m *mockProfileRepo) GetByUser(ctx context.Context, userID string) (*models.Profile, error) {
	return m.profile, nil
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	m.upserted = profile
	return nil
}

func TestProfileServiceGet(t *testing.T) {
	repo := &mockProfileRepo{profile: &models.Profile{UserID: "u-1", WeekStartDay: 0, RetentionDays: 90}}
	svc := NewProfileService(repo, nil, zap.NewNop())

	profile, err := svc.Get(context.Background(), userPrincipal("u-1"))
	require.NoError(t, err)
	assert.Equal(t, 0, profile.WeekStartDay)
	assert.Equal(t, 90, profile.RetentionDays)
}

func TestProfileServiceGetGuestDefaults(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, nil, zap.NewNop())

	profile, err := svc.Get(context.Background(), guestPrincipal("g-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, profile.WeekStartDay)
	assert.Equal(t, 400, profile.RetentionDays)
}

func TestProfileServiceUpdate(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewProfileService(repo, nil, zap.NewNop())
	birthDate := "1990-06-15"

	profile, err := svc.Update(context.Background(), userPrincipal("u-1"), ProfileUpdateRequest{
		DisplayName:   "Sam",
		WeekStartDay:  0,
		BirthDate:     &birthDate,
		RetentionDays: 180,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "u-1", profile.UserID)
	assert.Equal(t, 180, profile.RetentionDays)
}

func TestProfileServiceUpdateValidation(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), userPrincipal("u-1"), ProfileUpdateRequest{WeekStartDay: 7})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	bad := "15/06/1990"
	_, err = svc.Update(context.Background(), userPrincipal("u-1"), ProfileUpdateRequest{BirthDate: &bad})
	require.Error(t, err)
}

func TestProfileServiceUpdateGuestReadOnly(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), guestPrincipal("g-1"), ProfileUpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrGuestReadOnly.Code, appErrors.FromError(err).Code)
}
