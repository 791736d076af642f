package subshell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var superscriptDigits = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// Subshell 已填充（或部分填充）的亚层
type Subshell struct {
	Period    int  `json:"period"`
	Kind      Kind `json:"kind"`
	Electrons int  `json:"electrons"`
}

// String 形如 1S² / 3d¹⁰
func (s Subshell) String() string {
	return strconv.Itoa(s.Period) + s.Kind.Letter() + Superscript(s.Electrons)
}

// Configuration 电子排布，按填充顺序排列
type Configuration []Subshell

// String 以单个空格连接各亚层
func (c Configuration) String() string {
	return strings.Join(lo.Map(c, func(s Subshell, _ int) string { return s.String() }), " ")
}

// Electrons 排布中的电子总数
func (c Configuration) Electrons() int {
	return lo.Reduce(c, func(sum int, s Subshell, _ int) int { return sum + s.Electrons }, 0)
}

// Fill 按 FillOrder 依次填充电子，除最后一个亚层外均为满填充
//
// 注：electrons 超过 TotalCapacity() 时填充顺序会被耗尽，结果中的电子数会少于入参，
// 调用方需保证 electrons 在合法原子序数范围（1-118）内
func Fill(electrons int) Configuration {
	remaining := electrons
	config := Configuration{}

	for _, spec := range FillOrder {
		capacity := spec.Kind.Capacity()
		if capacity >= remaining {
			config = append(config, Subshell{Period: spec.Period, Kind: spec.Kind, Electrons: remaining})
			break
		}
		config = append(config, Subshell{Period: spec.Period, Kind: spec.Kind, Electrons: capacity})
		remaining -= capacity
	}
	return config
}

// Superscript 将 0-14 转换为上标数字，超出范围属于编程错误，直接 panic
func Superscript(n int) string {
	if n < 0 || n > KindF.Capacity() {
		panic(fmt.Sprintf("subshell: electron count %d out of range", n))
	}
	var sb strings.Builder
	for _, digit := range strconv.Itoa(n) {
		sb.WriteString(superscriptDigits[digit-'0'])
	}
	return sb.String()
}
