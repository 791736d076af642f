package model

import "strconv"

// Element 化学元素
type Element struct {
	AtomicNumber int    `json:"atomicNumber"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
}

// Criterion 元素查询方式
type Criterion string

const (
	// ByAtomicNumber 按原子序数查询
	ByAtomicNumber Criterion = "atomic number"
	// ByName 按名称查询
	ByName Criterion = "name"
	// BySymbol 按符号查询
	BySymbol Criterion = "symbol"
)

// Query 元素查询条件
type Query struct {
	Criterion Criterion
	// AtomicNumber 仅当 Criterion 为 ByAtomicNumber 时有效
	AtomicNumber int
	// Text 名称或符号
	Text string
}

// Value 查询值的字符串形式
func (q Query) Value() string {
	if q.Criterion == ByAtomicNumber {
		return strconv.Itoa(q.AtomicNumber)
	}
	return q.Text
}
