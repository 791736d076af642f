package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/elements/pkg/envs"
)

// 获取日志 Writer，配置了日志目录时返回双写 Writer（stderr & file）
func getWriter(logType string) (io.Writer, error) {
	// stdout 用于输出查询结果，日志统一走 stderr
	stderrWriter, _ := getOSWriter()
	if envs.LogFileBaseDir == "" {
		return stderrWriter, nil
	}
	// 文件日志
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(stderrWriter, fileWriter), nil
}

func getOSWriter() (io.Writer, error) {
	return os.Stderr, nil
}

func getFileWriter(logType string) (io.Writer, error) {
	// 不同的日志类型分目录存储
	path := filepath.Join(envs.LogFileBaseDir, logType)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
	}
	filename := logType + ".log"

	// 使用 lumberjack 实现日志切割归档，命令行工具日志量很小，参数写死即可
	writer := &lumberjack.Logger{
		Filename: filepath.Join(path, filename),
		// megabytes
		MaxSize:    16,
		MaxBackups: 3,
		// days
		MaxAge:    30,
		LocalTime: true,
	}
	return writer, nil
}
