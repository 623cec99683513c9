package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// GoalRepository persists goals and their key results.
type GoalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository constructs a goal repository.
func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// ListByUser returns the user's goals with key results attached.
func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]models.Goal, error) {
	const goalQuery = `SELECT id, user_id, position, title, notes, color, target_date, done, created_at, updated_at
FROM goals WHERE user_id = $1 ORDER BY position`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, goalQuery, userID); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	if len(goals) == 0 {
		return goals, nil
	}

	const krQuery = `SELECT kr.id, kr.goal_id, kr.position, kr.title, kr.target, kr.current, kr.unit, kr.done
FROM key_results kr
JOIN goals g ON g.id = kr.goal_id
WHERE g.user_id = $1 ORDER BY kr.goal_id, kr.position`
	var results []models.KeyResult
	if err := r.db.SelectContext(ctx, &results, krQuery, userID); err != nil {
		return nil, fmt.Errorf("list key results: %w", err)
	}

	byGoal := make(map[string][]models.KeyResult, len(goals))
	for _, kr := range results {
		byGoal[kr.GoalID] = append(byGoal[kr.GoalID], kr)
	}
	for i := range goals {
		goals[i].KeyResults = byGoal[goals[i].ID]
	}
	return goals, nil
}

// ReplaceForUser swaps the user's goal collection, key results included.
func (r *GoalRepository) ReplaceForUser(ctx context.Context, userID string, goals []models.Goal) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace goals: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// key_results cascade from goals.
	if _, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}

	now := time.Now().UTC()
	const insertGoal = `INSERT INTO goals (id, user_id, position, title, notes, color, target_date, done, created_at, updated_at)
VALUES (:id, :user_id, :position, :title, :notes, :color, :target_date, :done, :created_at, :updated_at)`
	const insertKR = `INSERT INTO key_results (id, goal_id, position, title, target, current, unit, done)
VALUES (:id, :goal_id, :position, :title, :target, :current, :unit, :done)`

	for i := range goals {
		goal := goals[i]
		if goal.ID == "" {
			goal.ID = uuid.NewString()
		}
		goal.UserID = userID
		goal.Position = i
		if goal.CreatedAt.IsZero() {
			goal.CreatedAt = now
		}
		goal.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insertGoal, goal); err != nil {
			return fmt.Errorf("insert goal: %w", err)
		}
		for j := range goal.KeyResults {
			kr := goal.KeyResults[j]
			if kr.ID == "" {
				kr.ID = uuid.NewString()
			}
			kr.GoalID = goal.ID
			kr.Position = j
			if _, err := tx.NamedExecContext(ctx, insertKR, kr); err != nil {
				return fmt.Errorf("insert key result: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace goals: %w", err)
	}
	return nil
}
