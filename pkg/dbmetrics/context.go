package dbmetrics

import "context"

type ctxKey struct{}

var executorKey ctxKey

// WithExecutor кладет транзакционный исполнитель в context
// Используется transaction manager'ом, чтобы репозитории внутри транзакции
// работали через неё, не меняя сигнатур
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, executor)
}

// GetExecutor возвращает исполнитель из context, если там есть активная
// транзакция, иначе переданный по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey).(DBExecutor); ok {
		return executor
	}
	return def
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(DBExecutor)
	return ok
}
