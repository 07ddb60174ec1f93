package events

import "github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы репозиторий работал и с *sql.DB, и с оберткой метрик
type DBExecutor = dbmetrics.DBExecutor
