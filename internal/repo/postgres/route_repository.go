package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.RouteRepository = (*RouteRepository)(nil)

// RouteRepository — маршруты на Postgres. Позиции внутри интеграции непрерывны
// (0..n-1), маршрут по умолчанию всегда на последней.
type RouteRepository struct {
	pool *pgxpool.Pool
}

// NewRouteRepository — конструктор RouteRepository.
func NewRouteRepository(pool *pgxpool.Pool) *RouteRepository { return &RouteRepository{pool: pool} }

const routeColumns = `id, integration_id, position, filtering_term, filtering_term_type, is_default,
	escalation_chain_id, notify_in_slack, notify_in_telegram, slack_channel_id, telegram_channel_id, created_at`

func scanRoute(row pgx.Row) (*domain.Route, error) {
	var r domain.Route
	if err := row.Scan(
		&r.ID, &r.IntegrationID, &r.Order, &r.FilteringTerm, &r.FilteringTermType, &r.IsDefault,
		&r.EscalationChainID, &r.NotifyInSlack, &r.NotifyInTelegram, &r.SlackChannelID, &r.TelegramChannelID, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByIntegration — маршруты интеграции по позиции. Неизвестная интеграция — ErrNotFound.
func (r *RouteRepository) ListByIntegration(ctx context.Context, integrationID string) ([]*domain.Route, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM integrations WHERE id = $1)`, integrationID).
		Scan(&exists); err != nil {
		return nil, mapError("select integration", err)
	}
	if !exists {
		return nil, fmt.Errorf("integration %s: %w", integrationID, domain.ErrNotFound)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+routeColumns+` FROM routes WHERE integration_id = $1 ORDER BY position`, integrationID)
	if err != nil {
		return nil, mapError("select routes", err)
	}
	defer rows.Close()

	out := make([]*domain.Route, 0, 4)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		out = append(out, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routes rows: %w", err)
	}
	return out, nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	route, err := scanRoute(r.pool.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("select route "+id, err)
	}
	return route, nil
}

// Create — вставка перед маршрутом по умолчанию: default сдвигается на одну позицию.
func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	var lockedID string
	if err := tx.QueryRow(ctx, `SELECT id FROM integrations WHERE id = $1 FOR UPDATE`, route.IntegrationID).
		Scan(&lockedID); err != nil {
		return nil, mapError("lock integration "+route.IntegrationID, err)
	}

	var position int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM routes WHERE integration_id = $1 AND NOT is_default`, route.IntegrationID).
		Scan(&position); err != nil {
		return nil, mapError("count routes", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE routes SET position = $2 + 1 WHERE integration_id = $1 AND is_default`,
		route.IntegrationID, position); err != nil {
		return nil, mapError("shift default route", err)
	}

	created, err := scanRoute(tx.QueryRow(ctx, `
		INSERT INTO routes (
			id, integration_id, position, filtering_term, filtering_term_type, is_default,
			escalation_chain_id, notify_in_slack, notify_in_telegram, slack_channel_id, telegram_channel_id
		) VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, $9, $10)
		RETURNING `+routeColumns,
		route.ID, route.IntegrationID, position, route.FilteringTerm, route.FilteringTermType,
		route.EscalationChainID, route.NotifyInSlack, route.NotifyInTelegram, route.SlackChannelID, route.TelegramChannelID,
	))
	if err != nil {
		return nil, mapError("insert route", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError("commit", err)
	}
	return created, nil
}

// Update — изменяемые поля маршрута; позиция и признак default не трогаются.
func (r *RouteRepository) Update(ctx context.Context, route *domain.Route) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE routes SET
			filtering_term = $2,
			filtering_term_type = $3,
			escalation_chain_id = $4,
			notify_in_slack = $5,
			notify_in_telegram = $6,
			slack_channel_id = $7,
			telegram_channel_id = $8
		WHERE id = $1
	`, route.ID, route.FilteringTerm, route.FilteringTermType, route.EscalationChainID,
		route.NotifyInSlack, route.NotifyInTelegram, route.SlackChannelID, route.TelegramChannelID)
	if err != nil {
		return mapError("update route", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("route %s: %w", route.ID, domain.ErrNotFound)
	}
	return nil
}

// Move — перестановка внутри интеграции под блокировкой всех её маршрутов.
// Маршрут по умолчанию не двигается, и на его место встать нельзя.
func (r *RouteRepository) Move(ctx context.Context, id string, position int) (*domain.Route, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	var integrationID string
	if err := tx.QueryRow(ctx, `SELECT integration_id FROM routes WHERE id = $1`, id).Scan(&integrationID); err != nil {
		return nil, mapError("select route "+id, err)
	}

	rows, err := tx.Query(ctx, `SELECT id FROM routes WHERE integration_id = $1 ORDER BY position FOR UPDATE`, integrationID)
	if err != nil {
		return nil, mapError("lock routes", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("collect routes", err)
	}

	from := -1
	for i, v := range ids {
		if v == id {
			from = i
		}
	}
	last := len(ids) - 1
	switch {
	case from < 0:
		return nil, fmt.Errorf("route %s: %w", id, domain.ErrNotFound)
	case from == last:
		return nil, fmt.Errorf("%w: default route cannot be moved", domain.ErrValidation)
	case position >= last:
		return nil, fmt.Errorf("%w: position %d is out of range [0,%d)", domain.ErrValidation, position, last)
	}

	next, err := domain.MoveID(ids, from, position)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE routes SET position = v.pos - 1
		FROM unnest($1::text[]) WITH ORDINALITY AS v(id, pos)
		WHERE routes.id = v.id
	`, next); err != nil {
		return nil, mapError("rewrite positions", err)
	}

	moved, err := scanRoute(tx.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("select moved route", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, mapError("commit", err)
	}
	return moved, nil
}

// Delete — удаление с уплотнением позиций хвоста.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	var (
		integrationID string
		position      int
		isDefault     bool
	)
	if err := tx.QueryRow(ctx, `SELECT integration_id, position, is_default FROM routes WHERE id = $1 FOR UPDATE`, id).
		Scan(&integrationID, &position, &isDefault); err != nil {
		return mapError("select route "+id, err)
	}
	if isDefault {
		return fmt.Errorf("%w: default route cannot be deleted", domain.ErrValidation)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id); err != nil {
		return mapError("delete route", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE routes SET position = position - 1 WHERE integration_id = $1 AND position > $2`,
		integrationID, position); err != nil {
		return mapError("compact positions", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("commit", err)
	}
	return nil
}
