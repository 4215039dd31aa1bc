package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type PrizeRepository struct {
	pool *pgxpool.Pool
}

func NewPrizeRepository(pool *pgxpool.Pool) *PrizeRepository {
	return &PrizeRepository{pool: pool}
}

func (r *PrizeRepository) Board(ctx context.Context) (model.PrizeBoard, error) {
	board := model.PrizeBoard{Prizes: make([]model.Prize, 0), Awards: make([]model.PrizeAward, 0)}

	rows, err := r.pool.Query(ctx,
		`SELECT prize_id, name, description, quantity, prize_value FROM prizes ORDER BY name`)
	if err != nil {
		return board, fmt.Errorf("list prizes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Prize
		if err := rows.Scan(&p.PrizeID, &p.Name, &p.Description, &p.Quantity, &p.PrizeValue); err != nil {
			return board, fmt.Errorf("scan prize: %w", err)
		}
		board.Prizes = append(board.Prizes, p)
	}
	if err := rows.Err(); err != nil {
		return board, err
	}

	awardRows, err := r.pool.Query(ctx,
		`SELECT award_id, prize_id, team_id, awarded_at FROM prize_awards ORDER BY awarded_at`)
	if err != nil {
		return board, fmt.Errorf("list prize awards: %w", err)
	}
	defer awardRows.Close()

	for awardRows.Next() {
		var a model.PrizeAward
		if err := awardRows.Scan(&a.AwardID, &a.PrizeID, &a.TeamID, &a.AwardedAt); err != nil {
			return board, fmt.Errorf("scan prize award: %w", err)
		}
		board.Awards = append(board.Awards, a)
	}
	return board, awardRows.Err()
}

func (r *PrizeRepository) Create(ctx context.Context, req model.CreatePrizeRequest) (model.Prize, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var p model.Prize
	err := r.pool.QueryRow(ctx, `
		INSERT INTO prizes (name, description, quantity, prize_value)
		VALUES ($1, $2, $3, $4)
		RETURNING prize_id, name, description, quantity, prize_value
	`, req.Name, req.Description, quantity, req.PrizeValue).
		Scan(&p.PrizeID, &p.Name, &p.Description, &p.Quantity, &p.PrizeValue)
	if err != nil {
		return model.Prize{}, fmt.Errorf("create prize: %w", err)
	}
	return p, nil
}

func (r *PrizeRepository) Award(ctx context.Context, prizeID int64, teamID int64) error {
	if _, err := r.pool.Exec(ctx, `SELECT sp_award_prize($1, $2)`, prizeID, teamID); err != nil {
		return asRuleViolation(fmt.Errorf("award prize: %w", err))
	}
	return nil
}
