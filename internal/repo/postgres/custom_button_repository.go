package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.CustomButtonRepository = (*CustomButtonRepository)(nil)

// CustomButtonRepository — пользовательские действия интеграций на Postgres.
type CustomButtonRepository struct {
	pool *pgxpool.Pool
}

func NewCustomButtonRepository(pool *pgxpool.Pool) *CustomButtonRepository {
	return &CustomButtonRepository{pool: pool}
}

// ListByIntegration — действия интеграции в порядке создания.
func (r *CustomButtonRepository) ListByIntegration(ctx context.Context, integrationID string) ([]*domain.CustomButton, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, integration_id, name, webhook, data, forward_whole_payload
		FROM custom_buttons WHERE integration_id = $1
		ORDER BY created_at, id
	`, integrationID)
	if err != nil {
		return nil, mapError("select custom buttons", err)
	}
	defer rows.Close()

	out := make([]*domain.CustomButton, 0, 4)
	for rows.Next() {
		var b domain.CustomButton
		if err := rows.Scan(&b.ID, &b.IntegrationID, &b.Name, &b.Webhook, &b.Data, &b.ForwardWholePayload); err != nil {
			return nil, fmt.Errorf("scan custom button: %w", err)
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("custom buttons rows: %w", err)
	}
	return out, nil
}

func (r *CustomButtonRepository) Create(ctx context.Context, b *domain.CustomButton) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO custom_buttons (id, integration_id, name, webhook, data, forward_whole_payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.IntegrationID, b.Name, b.Webhook, b.Data, b.ForwardWholePayload); err != nil {
		return mapError("insert custom button", err)
	}
	return nil
}

func (r *CustomButtonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM custom_buttons WHERE id = $1`, id)
	if err != nil {
		return mapError("delete custom button "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete custom button %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
