package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 全局日誌實例
	Logger  *zap.Logger
	LogMode string // 只宣告，不初始化

	// 定義日誌級別的顏色
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // 青色
		zapcore.InfoLevel:  "\033[32m", // 綠色
		zapcore.WarnLevel:  "\033[33m", // 黃色
		zapcore.ErrorLevel: "\033[31m", // 紅色
		zapcore.FatalLevel: "\033[35m", // 紫色
	}
	resetColor = "\033[0m"
)

// 自定義編碼器配置
func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "", // 移除 logger 名稱
		CallerKey:      "", // 移除調用者信息
		MessageKey:     "msg",
		StacktraceKey:  "", // 移除堆棧跟踪
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil, // 移除調用者編碼器
	}
}

// 自定義時間格式
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000")) // 添加毫秒級別的時間戳
}

// 自定義級別編碼器（添加顏色）
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	// 統一級別顯示長度
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// parseLevel 解析日誌級別字串
func parseLevel(logLevel string) zapcore.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger 初始化日誌系統
func InitLogger(logLevel string) error {
	level := parseLevel(logLevel)

	// 讀取 LOG_MODE（必須在 .env 載入後）
	LogMode = os.Getenv("LOG_MODE")

	// 創建日誌目錄
	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// 創建日誌文件
	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// 創建多個輸出目標
	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	// 創建多個核心
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	// 合併多個核心
	core := zapcore.NewTee(fileCore, consoleCore)

	// 創建 logger，移除一些默認字段
	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "recipe-tools"),
		),
	)

	// 替換全局 logger
	zap.ReplaceGlobals(Logger)

	return nil
}

// InitStderrLogger 初始化只輸出到 stderr 的日誌系統
// stdio 傳輸模式下 stdout 保留給協議本身，日誌必須走 stderr
func InitStderrLogger(logLevel string) error {
	level := parseLevel(logLevel)
	LogMode = os.Getenv("LOG_MODE")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		level,
	)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "recipe-tools"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// LogInfo 記錄信息日誌
func LogInfo(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	if LogMode == "concise" {
		// 只允許 API middleware logger.go 的 "請求完成" log 以及伺服器啟動/關閉訊息輸出
		if msg != "請求完成" && msg != "啟動應用" && msg != "Server exited" && msg != "Shutting down server..." {
			return
		}
	}
	Logger.Info(msg, fields...)
}

// LogError 記錄錯誤日誌
func LogError(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Error(msg, fields...)
}

// LogWarn 記錄警告日誌
func LogWarn(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Warn(msg, fields...)
}

// LogDebug 記錄調試日誌
func LogDebug(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Debug(msg, fields...)
}

// LogFatal 記錄致命錯誤日誌
func LogFatal(msg string, fields ...zap.Field) {
	if Logger == nil {
		os.Exit(1)
	}
	Logger.Fatal(msg, fields...)
}

// Sync 同步日誌緩衝
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogUpstreamCall 記錄外部食譜 API 的調用結果
func LogUpstreamCall(endpoint string, duration time.Duration, err error, requestID string) {
	if err != nil {
		LogError("外部 API 請求失敗",
			zap.String("endpoint", endpoint),
			zap.Error(err),
			zap.Duration("耗時", duration),
			zap.String("request_id", requestID),
		)
		return
	}
	LogInfo("外部 API 請求成功",
		zap.String("endpoint", endpoint),
		zap.Duration("耗時", duration),
		zap.String("request_id", requestID),
	)
}

// LogToolInvocation 記錄工具調用（agent_id 僅用於觀測）
func LogToolInvocation(tool, agentID, requestID string) {
	LogInfo("工具調用開始",
		zap.String("tool", tool),
		zap.String("agent_id", agentID),
		zap.String("request_id", requestID),
	)
}
