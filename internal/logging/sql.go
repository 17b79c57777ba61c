package logging

import (
	"strings"

	"go.uber.org/zap"
)

func LogSQLQuery(logger *zap.Logger, sql string, args ...any) {
	logger.Debug(strings.Join(strings.Fields(sql), " "), zap.Any("args", args))
}
