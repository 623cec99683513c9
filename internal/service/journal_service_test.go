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

type mockRatingRepo struct {
	ratings  []models.Rating
	replaced []models.Rating
}

func (m *mockRatingRepo) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	return m.ratings, nil
}

func (m *mockRatingRepo) ReplaceForUser(ctx context.Context, userID string, ratings []models.Rating) error {
	m.replaced = ratings
	return nil
}

type mockNoteRepo struct {
	weekly        []models.WeeklyNote
	monthly       []models.MonthNote
	weeklySaved   []models.WeeklyNote
	monthlySaved  []models.MonthNote
	monthlyCalled bool
}

func (m *mockNoteRepo) ListWeeklyByUser(ctx context.Context, userID string) ([]models.WeeklyNote, error) {
	return m.weekly, nil
}

func (m *mockNoteRepo) ReplaceWeeklyForUser(ctx context.Context, userID string, notes []models.WeeklyNote) error {
	m.weeklySaved = notes
	return nil
}

func (m *mockNoteRepo) ListMonthByUser(ctx context.Context, userID string) ([]models.MonthNote, error) {
	return m.monthly, nil
}

func (m *mockNoteRepo) ReplaceMonthForUser(ctx context.Context, userID string, notes []models.MonthNote) error {
	m.monthlyCalled = true
	m.monthlySaved = notes
	return nil
}

type mockFocusRepo struct {
	areas    []models.FocusArea
	replaced []models.FocusArea
}

func (m *mockFocusRepo) ListByUser(ctx context.Context, userID string) ([]models.FocusArea, error) {
	return m.areas, nil
}

func (m *mockFocusRepo) ReplaceForUser(ctx context.Context, userID string, areas []models.FocusArea) error {
	m.replaced = areas
	return nil
}

type mockDayOffRepo struct {
	days     []models.DayOff
	replaced []models.DayOff
}

func (m *mockDayOffRepo) ListByUser(ctx context.Context, userID string) ([]models.DayOff, error) {
	return m.days, nil
}

func (m *mockDayOffRepo) ReplaceForUser(ctx context.Context, userID string, days []models.DayOff) error {
	m.replaced = days
	return nil
}

type journalMocks struct {
	ratings *mockRatingRepo
	notes   *mockNoteRepo
	focus   *mockFocusRepo
	dayOffs *mockDayOffRepo
	guests  *mockGuestStore
}

func newTestJournalService() (*JournalService, *journalMocks) {
	mocks := &journalMocks{
		ratings: &mockRatingRepo{},
		notes:   &mockNoteRepo{},
		focus:   &mockFocusRepo{},
		dayOffs: &mockDayOffRepo{},
		guests:  &mockGuestStore{},
	}
	svc := NewJournalService(mocks.ratings, mocks.notes, mocks.focus, mocks.dayOffs, mocks.guests, nil, zap.NewNop())
	return svc, mocks
}

func TestJournalServiceSaveRatings(t *testing.T) {
	svc, mocks := newTestJournalService()

	err := svc.SaveRatings(context.Background(), userPrincipal("u-1"), []models.Rating{
		{DayKey: "2026-3-9", Score: 4},
		{DayKey: "2026-3-10", Score: 0},
	})
	require.NoError(t, err)
	assert.Len(t, mocks.ratings.replaced, 2)
}

func TestJournalServiceSaveRatingsInvalidDayKey(t *testing.T) {
	svc, _ := newTestJournalService()

	err := svc.SaveRatings(context.Background(), userPrincipal("u-1"), []models.Rating{
		{DayKey: "some day", Score: 3},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestJournalServiceSaveRatingsScoreOutOfRange(t *testing.T) {
	svc, _ := newTestJournalService()

	err := svc.SaveRatings(context.Background(), userPrincipal("u-1"), []models.Rating{
		{DayKey: "2026-3-9", Score: 6},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestJournalServiceGuestRatingsRoundTrip(t *testing.T) {
	svc, _ := newTestJournalService()
	p := guestPrincipal("g-1")

	ratings, err := svc.Ratings(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	require.NoError(t, svc.SaveRatings(context.Background(), p, []models.Rating{
		{DayKey: "2026-3-9", Score: 5},
	}))

	ratings, err = svc.Ratings(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Score)
}

func TestJournalServiceSaveWeeklyNotes(t *testing.T) {
	svc, mocks := newTestJournalService()

	err := svc.SaveWeeklyNotes(context.Background(), userPrincipal("u-1"), []models.WeeklyNote{
		{WeekKey: "2026-W11", Body: "good sprint"},
	})
	require.NoError(t, err)
	assert.Len(t, mocks.notes.weeklySaved, 1)
}

func TestJournalServiceSaveWeeklyNotesInvalidKey(t *testing.T) {
	svc, _ := newTestJournalService()

	err := svc.SaveWeeklyNotes(context.Background(), userPrincipal("u-1"), []models.WeeklyNote{
		{WeekKey: "week eleven", Body: "oops"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestJournalServiceSaveMonthNotes(t *testing.T) {
	svc, mocks := newTestJournalService()

	err := svc.SaveMonthNotes(context.Background(), userPrincipal("u-1"), []models.MonthNote{
		{MonthKey: "2026-3", Body: "steady"},
	})
	require.NoError(t, err)
	assert.True(t, mocks.notes.monthlyCalled)
}

func TestJournalServiceSaveMonthNotesInvalidKey(t *testing.T) {
	svc, _ := newTestJournalService()

	for _, key := range []string{"2026-13", "march"} {
		err := svc.SaveMonthNotes(context.Background(), userPrincipal("u-1"), []models.MonthNote{
			{MonthKey: key},
		})
		require.Error(t, err, key)
	}
}

func TestJournalServiceSaveFocusAreasReassignsPositions(t *testing.T) {
	svc, mocks := newTestJournalService()

	err := svc.SaveFocusAreas(context.Background(), userPrincipal("u-1"), []models.FocusArea{
		{Label: "Deep work", Position: 7, WeeklyHours: 12},
		{Label: "Reading", Position: 2, WeeklyHours: 4},
	})
	require.NoError(t, err)
	require.Len(t, mocks.focus.replaced, 2)
	assert.Equal(t, 0, mocks.focus.replaced[0].Position)
	assert.Equal(t, 1, mocks.focus.replaced[1].Position)
}

func TestJournalServiceSaveFocusAreasValidation(t *testing.T) {
	svc, _ := newTestJournalService()

	err := svc.SaveFocusAreas(context.Background(), userPrincipal("u-1"), []models.FocusArea{
		{Label: "", WeeklyHours: 4},
	})
	require.Error(t, err)

	err = svc.SaveFocusAreas(context.Background(), userPrincipal("u-1"), []models.FocusArea{
		{Label: "Reading", WeeklyHours: -1},
	})
	require.Error(t, err)
}

func TestJournalServiceSaveDayOffs(t *testing.T) {
	svc, mocks := newTestJournalService()

	err := svc.SaveDayOffs(context.Background(), userPrincipal("u-1"), []models.DayOff{
		{DayKey: "2026-3-14", Reason: "vacation"},
	})
	require.NoError(t, err)
	assert.Len(t, mocks.dayOffs.replaced, 1)

	err = svc.SaveDayOffs(context.Background(), userPrincipal("u-1"), []models.DayOff{
		{DayKey: "someday"},
	})
	require.Error(t, err)
}
