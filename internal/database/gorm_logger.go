package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobswipe_backend/internal/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slogGormLogger транслирует вывод GORM в общий slog-логгер приложения.
type slogGormLogger struct{}

func NewGormLogger() gormlogger.Interface {
	return &slogGormLogger{}
}

func (l *slogGormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	// Уровень контролирует сам slog-логгер
	return l
}

func (l *slogGormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}

func (l *slogGormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *slogGormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	logger.Error(fmt.Sprintf(msg, args...))
}

func (l *slogGormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()

	// ErrRecordNotFound — штатный исход, не ошибка запроса
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}
	logger.DBLog("query", sql, time.Since(begin), err)
}
