package override_priority

import "context"

// PriorityQueueService интерфейс сервиса очереди приоритетов
type PriorityQueueService interface {
	AdminOverride(ctx context.Context, memberID int64, newPosition int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
