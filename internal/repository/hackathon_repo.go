package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type HackathonRepository struct {
	pool *pgxpool.Pool
}

func NewHackathonRepository(pool *pgxpool.Pool) *HackathonRepository {
	return &HackathonRepository{pool: pool}
}

// Get returns the singleton event row, or nil before first configuration.
func (r *HackathonRepository) Get(ctx context.Context) (*model.Hackathon, error) {
	var h model.Hackathon
	err := r.pool.QueryRow(ctx, `
		SELECT hackathon_id, name, description, start_at, end_at,
		       reg_start_at, reg_end_at, min_team_size, max_team_size,
		       published, updated_at
		FROM hackathon WHERE hackathon_id = 1
	`).Scan(&h.HackathonID, &h.Name, &h.Description, &h.StartAt, &h.EndAt,
		&h.RegStartAt, &h.RegEndAt, &h.MinTeamSize, &h.MaxTeamSize,
		&h.Published, &h.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load hackathon: %w", err)
	}
	return &h, nil
}

func (r *HackathonRepository) Upsert(ctx context.Context, req model.Hackathon) error {
	_, err := r.pool.Exec(ctx,
		`SELECT sp_upsert_hackathon($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.Name, req.Description, req.StartAt, req.EndAt,
		req.RegStartAt, req.RegEndAt, req.MinTeamSize, req.MaxTeamSize, req.Published)
	if err != nil {
		return asRuleViolation(fmt.Errorf("upsert hackathon: %w", err))
	}
	return nil
}
