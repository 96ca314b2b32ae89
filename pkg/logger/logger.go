// Package logger 基于zerolog的结构化日志
// 设计说明：
// 1. 全局初始化一次,业务代码通过包级函数输出
// 2. debug模式输出人类可读的Console格式,release输出JSON
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init 初始化全局日志
// level: debug | info | warn | error
// format: console | json
func Init(level, format string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Info 信息日志(带结构化字段)
func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

// Debug 调试日志
func Debug(msg string) {
	log.Debug().Msg(msg)
}

// Warn 警告日志
func Warn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}

// Error 错误日志
func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
