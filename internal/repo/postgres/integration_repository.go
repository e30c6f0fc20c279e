package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.IntegrationRepository = (*IntegrationRepository)(nil)

// IntegrationRepository — интеграции, их счётчики и шаблоны на Postgres.
type IntegrationRepository struct {
	pool *pgxpool.Pool
}

// NewIntegrationRepository — конструктор IntegrationRepository.
func NewIntegrationRepository(pool *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{pool: pool}
}

const integrationColumns = `id, verbal_name, kind, team_id, description, inbound_email, is_able_to_autoresolve, created_at`

func scanIntegration(row pgx.Row) (*domain.Integration, error) {
	var in domain.Integration
	if err := row.Scan(
		&in.ID, &in.VerbalName, &in.Kind, &in.TeamID, &in.Description, &in.InboundEmail, &in.IsAbleToAutoresolve, &in.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &in, nil
}

// List — интеграции по подстроке имени, в порядке создания.
// limit <= 0 — без ограничения. Второе значение — общее число совпадений.
func (r *IntegrationRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Integration, int, error) {
	if offset < 0 {
		offset = 0
	}
	const where = `WHERE $1 = '' OR verbal_name ILIKE '%' || $1 || '%'`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM integrations `+where, search).Scan(&total); err != nil {
		return nil, 0, mapError("count integrations", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+integrationColumns+` FROM integrations `+where+`
		ORDER BY created_at, id
		LIMIT NULLIF($2, 0) OFFSET $3
	`, search, max(limit, 0), offset)
	if err != nil {
		return nil, 0, mapError("select integrations", err)
	}
	defer rows.Close()

	out := make([]*domain.Integration, 0, 8)
	for rows.Next() {
		in, err := scanIntegration(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan integration: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("integrations rows: %w", err)
	}
	return out, total, nil
}

func (r *IntegrationRepository) GetByID(ctx context.Context, id string) (*domain.Integration, error) {
	in, err := scanIntegration(r.pool.QueryRow(ctx, `SELECT `+integrationColumns+` FROM integrations WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("select integration "+id, err)
	}
	return in, nil
}

// Create — интеграция и её маршрут по умолчанию в одной транзакции.
func (r *IntegrationRepository) Create(ctx context.Context, in *domain.Integration, defaultRoute *domain.Route) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO integrations (id, verbal_name, kind, team_id, description, inbound_email, is_able_to_autoresolve)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, in.ID, in.VerbalName, in.Kind, in.TeamID, in.Description, in.InboundEmail, in.IsAbleToAutoresolve); err != nil {
		return mapError("insert integration", err)
	}

	if defaultRoute != nil {
		if _, err := tx.Exec(ctx, `
			INSERT INTO routes (id, integration_id, position, is_default, escalation_chain_id, notify_in_slack, notify_in_telegram)
			VALUES ($1, $2, 0, TRUE, $3, $4, $5)
		`, defaultRoute.ID, in.ID, defaultRoute.EscalationChainID, defaultRoute.NotifyInSlack, defaultRoute.NotifyInTelegram); err != nil {
			return mapError("insert default route", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("commit", err)
	}
	return nil
}

func (r *IntegrationRepository) Update(ctx context.Context, in *domain.Integration) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE integrations SET verbal_name = $2, team_id = $3, description = $4
		WHERE id = $1
	`, in.ID, in.VerbalName, in.TeamID, in.Description)
	if err != nil {
		return mapError("update integration", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("integration %s: %w", in.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete — маршруты и шаблоны уходят каскадом.
func (r *IntegrationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM integrations WHERE id = $1`, id)
	if err != nil {
		return mapError("delete integration", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("integration %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *IntegrationRepository) Counters(ctx context.Context) (map[string]domain.Counters, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, alerts_count, alert_groups_count FROM integrations`)
	if err != nil {
		return nil, mapError("select counters", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Counters)
	for rows.Next() {
		var (
			id string
			c  domain.Counters
		)
		if err := rows.Scan(&id, &c.AlertsCount, &c.AlertGroupsCount); err != nil {
			return nil, fmt.Errorf("scan counters: %w", err)
		}
		out[id] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counters rows: %w", err)
	}
	return out, nil
}

func (r *IntegrationRepository) IncrementCounters(ctx context.Context, id string, alerts, groups int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE integrations
		SET alerts_count = alerts_count + $2, alert_groups_count = alert_groups_count + $3
		WHERE id = $1
	`, id, alerts, groups)
	if err != nil {
		return mapError("increment counters", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("integration %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetTemplates — только заданные шаблоны интеграции.
func (r *IntegrationRepository) GetTemplates(ctx context.Context, id string) (domain.Templates, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, body FROM integration_templates WHERE integration_id = $1`, id)
	if err != nil {
		return nil, mapError("select templates", err)
	}
	defer rows.Close()

	out := make(domain.Templates)
	for rows.Next() {
		var (
			name string
			body string
		)
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out[name] = &body
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("templates rows: %w", err)
	}
	return out, nil
}

// SaveTemplates — upsert переданных шаблонов; nil удаляет шаблон.
func (r *IntegrationRepository) SaveTemplates(ctx context.Context, id string, templates domain.Templates) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	batch := &pgx.Batch{}
	for name, body := range templates {
		if body == nil {
			batch.Queue(`DELETE FROM integration_templates WHERE integration_id = $1 AND name = $2`, id, name)
			continue
		}
		batch.Queue(`
			INSERT INTO integration_templates (integration_id, name, body) VALUES ($1, $2, $3)
			ON CONFLICT (integration_id, name) DO UPDATE SET body = EXCLUDED.body
		`, id, name, *body)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapError("save templates", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("commit", err)
	}
	return nil
}
