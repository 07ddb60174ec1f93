package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения конфигурации услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID вместе с шагом бронирования ее типа
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.service_type_id",
		"s.name",
		"st.step_minutes",
		"s.price",
		"s.duration_minutes",
		"s.begin_time",
		"s.end_time",
	).
		From("services s").
		Join("service_types st ON st.id = s.service_type_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.ServiceTypeID,
		&service.Name,
		&service.StepMinutes,
		&service.Price,
		&service.DurationMinutes,
		&service.Begin,
		&service.End,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}
