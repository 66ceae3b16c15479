package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/dbmetrics"
	"github.com/ctcplatform/CTC-VoiceService/pkg/psqlbuilder"
)

// Repository PostgreSQL-хранилище бронирований. Подключается вместо
// in-memory заглушки, когда в конфигурации включена база данных.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. Бронирования создаются один раз и
// никогда не обновляются, поэтому транзакция не требуется.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stored := *booking
	stored.ID = "booking_" + uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"center_id",
			"slot_id",
			"first_name",
			"last_name",
			"phone",
			"email",
			"vehicle_brand",
			"vehicle_model",
			"license_plate",
			"status",
		).
		Values(
			stored.ID,
			stored.CenterID,
			stored.SlotID,
			stored.Client.FirstName,
			stored.Client.LastName,
			stored.Client.Phone,
			stored.Client.Email,
			stored.Client.VehicleBrand,
			stored.Client.VehicleModel,
			stored.Client.LicensePlate,
			stored.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	stored.CreatedAt = createdAt.Time
	return &stored, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"center_id",
		"slot_id",
		"first_name",
		"last_name",
		"phone",
		"email",
		"vehicle_brand",
		"vehicle_model",
		"license_plate",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		booking domain.Booking
		email   sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CenterID,
		&booking.SlotID,
		&booking.Client.FirstName,
		&booking.Client.LastName,
		&booking.Client.Phone,
		&email,
		&booking.Client.VehicleBrand,
		&booking.Client.VehicleModel,
		&booking.Client.LicensePlate,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	if email.Valid {
		booking.Client.Email = &email.String
	}

	return &booking, nil
}
