package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/elements/pkg/envs"
)

// 查询日志（记录每次元素查询，仅在配置了日志目录时启用）
var lookupLogger *logrus.Logger

// 查询日志所在目录及文件，目录变化时需要重建
var (
	lookupLogDir    string
	lookupLogWriter io.Writer
)

const (
	LogTypeSystem = "system"
	LogTypeLookup = "lookup"
)

func InitLogger() {
	initSystemLogger()

	initLookupLogger()
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetLookupLogger() *logrus.Logger {
	if lookupLogger == nil {
		return GetSystemLogger()
	}
	return lookupLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func initLookupLogger() {
	if lookupLogger != nil && lookupLogDir == envs.LogFileBaseDir {
		return
	}
	if closer, ok := lookupLogWriter.(io.Closer); ok {
		_ = closer.Close()
	}
	lookupLogger, lookupLogWriter, lookupLogDir = nil, nil, envs.LogFileBaseDir
	if envs.LogFileBaseDir == "" {
		return
	}
	// 与 LOG_LEVEL 无关，每次查询都要记录
	lookupLogger, lookupLogWriter = newJsonLogger(LogTypeLookup, logrus.InfoLevel)
}

func newJsonLogger(logType string, level logrus.Level) (*logrus.Logger, io.Writer) {
	logger := logrus.New()
	// 查询日志只写文件，不污染终端
	writer, err := getFileWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	logger.SetLevel(level)

	return logger, writer
}

// 解析日志等级，非法值回退为 warn（标准输出留给查询结果）
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
