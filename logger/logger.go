package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logFile *os.File
	current atomic.Pointer[zap.SugaredLogger]
)

func init() {
	current.Store(newLogger(zapcore.Lock(os.Stdout)))
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func newLogger(ws zapcore.WriteSyncer) *zap.SugaredLogger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), ws, zapcore.DebugLevel)
	return zap.New(core).Sugar()
}

// Init는 로거를 초기화하고 로그 파일을 생성합니다
func Init() error {
	// logs 디렉토리 생성
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	// 로그 파일명: logs/lotto_2026-01-13.log
	logFileName := fmt.Sprintf("lotto_%s.log", time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(logsDir, logFileName)

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("로그 파일 생성 실패: %w", err)
	}
	logFile = f

	// 콘솔과 파일 둘 다에 출력
	ws := zapcore.NewMultiWriteSyncer(zapcore.Lock(os.Stdout), zapcore.AddSync(logFile))
	current.Store(newLogger(ws))

	Info("✅ 로그 파일 초기화 완료: %s", logFilePath)
	return nil
}

// Close는 버퍼를 비우고 로그 파일을 닫습니다
func Close() {
	_ = current.Load().Sync()
	if logFile != nil {
		logFile.Close()
	}
}

// Use는 로거를 교체하고 이전 로거로 되돌리는 함수를 반환합니다
func Use(l *zap.SugaredLogger) (restore func()) {
	prev := current.Swap(l)
	return func() { current.Store(prev) }
}

// Info는 정보 로그를 출력합니다
func Info(format string, v ...interface{}) {
	current.Load().Infof(format, v...)
}

// Error는 에러 로그를 출력합니다
func Error(format string, v ...interface{}) {
	current.Load().Errorf(format, v...)
}

// Warning은 경고 로그를 출력합니다
func Warning(format string, v ...interface{}) {
	current.Load().Warnf(format, v...)
}

// Debug는 디버그 로그를 출력합니다
func Debug(format string, v ...interface{}) {
	current.Load().Debugf(format, v...)
}
