package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения событий расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var eventColumns = []string{
	"id",
	"section_id",
	"name",
	"status_id",
	"start_date",
	"end_date",
	"rec_type",
	"event_length",
	"event_pid",
}

// FindBaseEvents возвращает базовые события секции на указанный день:
// - события, начинающиеся в этот день (event_pid = 0), либо
// - уже идущие события с положительной длительностью, которые начались
//   раньше и заканчиваются не раньше начала дня (event_pid = 0)
// Результат отсортирован по start_date - порядок значим для применения
// override-ов ("первое совпадение побеждает")
func (r *Repository) FindBaseEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error) {
	dayStart, dayEnd := dayBounds(day)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"section_id": sectionID, "event_pid": 0}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"start_date": dayStart},
				squirrel.Lt{"start_date": dayEnd},
			},
			squirrel.And{
				squirrel.Gt{"event_length": 0},
				squirrel.LtOrEq{"start_date": dayStart},
				squirrel.GtOrEq{"end_date": dayStart},
			},
		}).
		OrderBy("start_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBaseEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBaseEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// FindOverrideEvents возвращает события-исключения секции на указанный день:
// дочерние записи (event_pid > 0), меняющие или отменяющие одно вхождение
// повторяющегося события. Порядок по start_date
func (r *Repository) FindOverrideEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error) {
	dayStart, dayEnd := dayBounds(day)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"section_id": sectionID}).
		Where(squirrel.Gt{"event_pid": 0}).
		Where(squirrel.GtOrEq{"start_date": dayStart}).
		Where(squirrel.Lt{"start_date": dayEnd}).
		OrderBy("start_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverrideEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverrideEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// scanEvents сканирует результаты запроса в слайс событий
func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)

	for rows.Next() {
		var event domain.Event
		var recType sql.NullString

		err := rows.Scan(
			&event.ID,
			&event.SectionID,
			&event.Name,
			&event.StatusID,
			&event.Start,
			&event.End,
			&recType,
			&event.LengthSeconds,
			&event.ParentID,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		event.RecType = recType.String
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// dayBounds возвращает границы календарного дня [начало, начало следующего)
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
