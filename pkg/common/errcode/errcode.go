package errcode

// 进程退出码，成功时正常返回即为 0
//
// 注：查询不到元素与参数不合法对外约定的退出码都是 1，这里分开命名只为区分调用处的语义
const (
	// ElementNotFound 查询不到元素
	ElementNotFound = 1
	// InvalidArgs 命令行参数不合法（缺少 / 冲突的查询条件，非法的原子序数等）
	InvalidArgs = 1
)
