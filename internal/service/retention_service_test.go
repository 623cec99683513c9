package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/schedule"
)

type mockUserLister struct {
	ids []string
}

func (m *mockUserLister) ListIDs(ctx context.Context) ([]string, error) {
	return m.ids, nil
}

func newTestRetentionService(repo *mockScheduleRepo, profiles *mockProfileReader, lister *mockUserLister) *RetentionService {
	schedules := newTestScheduleService(repo, profiles, nil)
	return NewRetentionService(lister, schedules, profiles, nil, zap.NewNop(), RetentionConfig{
		Enabled:     true,
		DefaultDays: 400,
		Workers:     2,
	})
}

func TestRetentionServiceSweepDropsExpiredRows(t *testing.T) {
	recent := string(schedule.KeyFor(time.Now().UTC().AddDate(0, 0, -1)))
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: "2020-1-6", Position: 0, Time: "9:00", Title: "Ancient"},
		{DayKey: recent, Position: 0, Time: "9:00", Title: "Recent"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 30}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{})

	require.NoError(t, svc.SweepUser(context.Background(), "u-1"))
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, "Recent", repo.replaced[0].Title)
}

func TestRetentionServiceSweepKeepsMalformedKeys(t *testing.T) {
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: "legacy", Position: 0, Time: "9:00", Title: "Unparseable"},
		{DayKey: "2020-1-6", Position: 0, Time: "9:00", Title: "Ancient"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 30}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{})

	require.NoError(t, svc.SweepUser(context.Background(), "u-1"))
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, "Unparseable", repo.replaced[0].Title)
}

func TestRetentionServiceSweepKeepsLiveRecurrence(t *testing.T) {
	// An old origin whose recurrence has no end date still produces
	// occurrences, so the sweep must not drop it.
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: "2020-1-6", Position: 0, Time: "9:00", Title: "Standing sync", Repeat: "weekly"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 30}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{})

	require.NoError(t, svc.SweepUser(context.Background(), "u-1"))
	assert.Nil(t, repo.replaced)
}

func TestRetentionServiceSweepNoopWhenNothingExpired(t *testing.T) {
	recent := string(schedule.KeyFor(time.Now().UTC()))
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: recent, Position: 0, Time: "9:00", Title: "Today"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 30}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{})

	require.NoError(t, svc.SweepUser(context.Background(), "u-1"))
	assert.Nil(t, repo.replaced)
}

func TestRetentionServiceSweepDefaultsRetentionDays(t *testing.T) {
	// A profile with no retention preference uses the configured default
	// window, so a year-old row survives a 400-day default.
	yearOld := string(schedule.KeyFor(time.Now().UTC().AddDate(0, 0, -365)))
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: yearOld, Position: 0, Time: "9:00", Title: "Last year"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 0}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{})

	require.NoError(t, svc.SweepUser(context.Background(), "u-1"))
	assert.Nil(t, repo.replaced)
}

func TestRetentionServiceRunOnce(t *testing.T) {
	repo := &mockScheduleRepo{rows: []models.ScheduleRow{
		{DayKey: "2020-1-6", Position: 0, Time: "9:00", Title: "Ancient"},
	}}
	profiles := &mockProfileReader{profile: &models.Profile{RetentionDays: 30}}
	svc := newTestRetentionService(repo, profiles, &mockUserLister{ids: []string{"u-1"}})

	require.NoError(t, svc.RunOnce(context.Background()))
	require.NotNil(t, repo.replaced)
	assert.Empty(t, repo.replaced)
}
