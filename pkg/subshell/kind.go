package subshell

import "fmt"

// Kind 亚层类型
type Kind byte

const (
	// KindS s 亚层
	KindS Kind = 's'
	// KindP p 亚层
	KindP Kind = 'p'
	// KindD d 亚层
	KindD Kind = 'd'
	// KindF f 亚层
	KindF Kind = 'f'
)

// Capacity 亚层可容纳的最大电子数
func (k Kind) Capacity() int {
	switch k {
	case KindS:
		return 2
	case KindP:
		return 6
	case KindD:
		return 10
	case KindF:
		return 14
	}
	panic(fmt.Sprintf("subshell: unknown kind %q", byte(k)))
}

// Letter 展示用字母，s / p 大写，d / f 小写
func (k Kind) Letter() string {
	switch k {
	case KindS:
		return "S"
	case KindP:
		return "P"
	case KindD:
		return "d"
	case KindF:
		return "f"
	}
	panic(fmt.Sprintf("subshell: unknown kind %q", byte(k)))
}

// String ...
func (k Kind) String() string {
	return string([]byte{byte(k)})
}

// MarshalText 序列化为小写字母（s/p/d/f）
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
