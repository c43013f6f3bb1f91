package main

// Инициация уровня логирования в текущем

import (
	"github.com/go-trading/alor"
	"go.uber.org/zap"
)

var l *zap.Logger

func init() {
	logger, _ := zap.NewProduction()
	l = logger
}

func initDebugLogger() {
	logger, _ := zap.NewDevelopment()
	l = logger
	alor.SetLogger(l)
}
