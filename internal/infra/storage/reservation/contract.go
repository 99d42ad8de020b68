package reservation

import "github.com/kairodigital/KD-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
