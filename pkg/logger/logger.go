package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger 全局日志实例（Init 之前也可用，默认 info 级别输出到 stderr）
	Logger = logrus.New()

	currentLogFile string
	logMu          sync.Mutex
)

// Config 日志配置
type Config struct {
	Level      string // 日志级别: debug, info, warn, error
	OutputFile string // 日志文件路径（可选，为空则只输出到控制台）
	MaxSize    int    // 日志文件最大大小（MB）
	MaxBackups int
	MaxAge     int // 保留旧日志文件的天数
	Compress   bool
	// Console 控制台输出，为 nil 时使用 os.Stdout
	Console io.Writer
}

const timestampFormat = "06-01-02 15:04:05"

// Init 初始化日志（同时配置 logrus 标准 logger）
func Init(config Config) error {
	logMu.Lock()
	defer logMu.Unlock()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	console := config.Console
	if console == nil {
		console = os.Stdout
	}
	writers := []io.Writer{console}

	logFile := ""
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
		logFile = config.OutputFile
	}

	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	}
	out := io.MultiWriter(writers...)

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(formatter)
	l.SetOutput(out)

	logrus.SetOutput(out)
	logrus.SetLevel(level)
	logrus.SetFormatter(formatter)

	Logger = l
	currentLogFile = logFile
	return nil
}

// InitDefault 使用默认配置初始化：info 级别，输出到控制台和 logs/cryptsy.log
func InitDefault() error {
	return Init(Config{
		Level:      "info",
		OutputFile: "logs/cryptsy.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	})
}

// GetCurrentLogFile 获取当前日志文件路径，仅控制台输出时为空
func GetCurrentLogFile() string {
	logMu.Lock()
	defer logMu.Unlock()
	return currentLogFile
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Info(args ...interface{}) {
	Logger.Info(args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}

// IsDebug 是否启用 debug 级别
func IsDebug() bool {
	return Logger.IsLevelEnabled(logrus.DebugLevel)
}

// WithField 添加字段到日志上下文
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithFields 添加多个字段到日志上下文
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}
