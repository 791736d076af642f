package envs

import (
	"github.com/narasux/elements/pkg/utils/envx"
)

// 以下变量值可通过环境变量指定，仅影响诊断日志，不影响查询结果
var (
	// LogFileBaseDir 日志存放目录，为空则不写日志文件
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", "")

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "warn")
)
