package center

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/dbmetrics"
	"github.com/ctcplatform/CTC-VoiceService/pkg/psqlbuilder"
)

// Repository PostgreSQL-хранилище центров. Расписание, тарифы и способы
// оплаты лежат в JSONB-колонках: их структура определяется доменом,
// а не схемой БД.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория центров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает центр по идентификатору
func (r *Repository) Get(ctx context.Context, id string) (*domain.Center, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"agent_id",
		"average_control_duration",
		"opening_hours",
		"pricing_grid",
		"allow_early_drop_off",
		"payment_methods",
		"online_calendar_url",
	).
		From("centers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		center        domain.Center
		agentID       sql.NullString
		calendarURL   sql.NullString
		openingHours  []byte
		pricingGrid   []byte
		paymentMethod []byte
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&center.ID,
		&center.Name,
		&center.Phone,
		&agentID,
		&center.AverageControlDuration,
		&openingHours,
		&pricingGrid,
		&center.AllowEarlyDropOff,
		&paymentMethod,
		&calendarURL,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCenterNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
	}

	center.AgentID = agentID.String
	center.OnlineCalendarURL = calendarURL.String

	if err := json.Unmarshal(openingHours, &center.OpeningHours); err != nil {
		return nil, fmt.Errorf("%w: Get - decode opening_hours: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(pricingGrid, &center.PricingGrid); err != nil {
		return nil, fmt.Errorf("%w: Get - decode pricing_grid: %v", ErrScanRow, err)
	}
	if len(paymentMethod) > 0 {
		if err := json.Unmarshal(paymentMethod, &center.PaymentMethods); err != nil {
			return nil, fmt.Errorf("%w: Get - decode payment_methods: %v", ErrScanRow, err)
		}
	}

	return &center, nil
}

// UpdateAgentID сохраняет идентификатор голосового агента центра
func (r *Repository) UpdateAgentID(ctx context.Context, id, agentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("centers").
		Set("agent_id", agentID).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAgentID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAgentID - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAgentID - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCenterNotFound
	}

	return nil
}
