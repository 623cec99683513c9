package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestFindByProviderSubject(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "provider", "subject", "name", "avatar_url", "last_login", "created_at", "updated_at"}).
		AddRow("u1", "user@example.com", "google", "sub-123", "User", "", now, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, provider, subject, name, avatar_url, last_login, created_at, updated_at FROM users WHERE provider = $1 AND subject = $2 LIMIT 1")).
		WithArgs("google", "sub-123").
		WillReturnRows(rows)

	user, err := repo.FindByProviderSubject(context.Background(), "google", "sub-123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserAssignsID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))

	user := &models.User{Email: "user@example.com", Provider: "google", Subject: "sub-123"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRefreshToken(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO refresh_tokens").WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRefreshToken(context.Background(), &models.RefreshToken{
		ID: "t1", UserID: "u1", Token: "token", ExpiresAt: time.Now(), CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScheduleRowsByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "day_key", "position", "start_time", "end_time", "title", "color", "repeat", "repeat_until", "repeat_days", "skip_dates", "created_at", "updated_at"}).
		AddRow("s1", "u1", "2024-3-4", 0, "09:00", "", "Standup", "", "weekly", "", "", "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM schedule_entries WHERE user_id = \\$1 ORDER BY day_key, position").
		WithArgs("u1").
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Standup", result[0].Title)
	assert.Equal(t, "weekly", result[0].Repeat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceScheduleForUserIsTransactional(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedule_entries WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO schedule_entries").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO schedule_entries").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rows := []models.ScheduleRow{
		{DayKey: "2024-3-4", Time: "09:00", Title: "Standup", Repeat: "weekly"},
		{DayKey: "2024-3-6", Time: "18:00", Title: "Gym"},
	}
	require.NoError(t, repo.ReplaceForUser(context.Background(), "u1", rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceScheduleRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedule_entries WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schedule_entries").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	rows := []models.ScheduleRow{{DayKey: "2024-3-4", Time: "09:00", Title: "Standup"}}
	err := repo.ReplaceForUser(context.Background(), "u1", rows)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRatingsForUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ratings WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO ratings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceForUser(context.Background(), "u1", []models.Rating{{DayKey: "2024-3-4", Score: 4}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileDefaultsWhenMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1 LIMIT 1").
		WithArgs("u1").
		WillReturnError(sql.ErrNoRows)

	profile, err := repo.GetByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.WeekStartDay)
	assert.Equal(t, 400, profile.RetentionDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalReplaceInsertsKeyResults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM goals WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO goals").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO key_results").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO key_results").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	goals := []models.Goal{{
		Title: "Read more",
		KeyResults: []models.KeyResult{
			{Title: "Books", Target: 12, Current: 3},
			{Title: "Pages per week", Target: 200, Current: 120},
		},
	}}
	require.NoError(t, repo.ReplaceForUser(context.Background(), "u1", goals))
	assert.NoError(t, mock.ExpectationsWereMet())
}
