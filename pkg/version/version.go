package version

import (
	"fmt"
	"runtime"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	// Version 版本号
	Version = "0.1.0"
	// GitCommit 提交哈希
	GitCommit = "--"
	// BuildTime 构建时间
	BuildTime = "--"
)

// GetVersion 获取完整的版本信息
func GetVersion() string {
	return fmt.Sprintf(
		"Version: %s, GitCommit: %s, BuildTime: %s, GoVersion: %s",
		Version, GitCommit, BuildTime, runtime.Version(),
	)
}
