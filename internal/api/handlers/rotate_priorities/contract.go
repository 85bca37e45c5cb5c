package rotate_priorities

import "context"

// PriorityQueueService интерфейс сервиса очереди приоритетов
type PriorityQueueService interface {
	Rotate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
