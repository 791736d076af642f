package periodic

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/narasux/elements/pkg/model"
)

// ErrNotFound 元素不存在
var ErrNotFound = errors.New("chemical element not found")

// NotFoundError 按指定方式查询不到元素
type NotFoundError struct {
	Criterion model.Criterion
	// Value 用户输入的原始查询值
	Value string
}

// Error 直接作为命令行的错误提示
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("There is no chemical element with the %s %s.", e.Criterion, e.Value)
}

// Is 使 errors.Is(err, ErrNotFound) 成立
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func newNotFoundError(criterion model.Criterion, value string) error {
	return &NotFoundError{Criterion: criterion, Value: value}
}
