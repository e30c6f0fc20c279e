package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.EscalationRepository = (*EscalationRepository)(nil)

// EscalationRepository — цепочки эскалации на Postgres.
type EscalationRepository struct {
	pool *pgxpool.Pool
}

func NewEscalationRepository(pool *pgxpool.Pool) *EscalationRepository {
	return &EscalationRepository{pool: pool}
}

func (r *EscalationRepository) List(ctx context.Context) ([]*domain.EscalationChain, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, team_id FROM escalation_chains ORDER BY name, id`)
	if err != nil {
		return nil, mapError("select escalation chains", err)
	}
	defer rows.Close()

	var out []*domain.EscalationChain
	for rows.Next() {
		var c domain.EscalationChain
		if err := rows.Scan(&c.ID, &c.Name, &c.TeamID); err != nil {
			return nil, fmt.Errorf("scan escalation chain: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("escalation chains rows: %w", err)
	}
	return out, nil
}

func (r *EscalationRepository) Create(ctx context.Context, chain *domain.EscalationChain) error {
	if _, err := r.pool.Exec(ctx, `INSERT INTO escalation_chains (id, name, team_id) VALUES ($1, $2, $3)`,
		chain.ID, chain.Name, chain.TeamID); err != nil {
		return mapError("insert escalation chain", err)
	}
	return nil
}

func (r *EscalationRepository) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM escalation_chains WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, mapError("select escalation chain", err)
	}
	return ok, nil
}
