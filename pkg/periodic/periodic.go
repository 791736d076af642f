package periodic

import (
	"strconv"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/narasux/elements/pkg/logging"
	"github.com/narasux/elements/pkg/model"
	"github.com/narasux/elements/pkg/utils/textx"
)

type entry struct {
	name   string
	symbol string
}

func (e entry) toElement(idx int) model.Element {
	return model.Element{AtomicNumber: idx + 1, Name: e.name, Symbol: e.symbol}
}

// Size 元素总数
func Size() int {
	return len(table)
}

// All 按原子序数顺序返回所有元素
func All() []model.Element {
	return lo.Map(table[:], func(e entry, idx int) model.Element { return e.toElement(idx) })
}

// ByNumber 根据原子序数（从 1 开始）获取元素
func ByNumber(n int) (model.Element, error) {
	if n < 1 || n > Size() {
		return model.Element{}, newNotFoundError(model.ByAtomicNumber, strconv.Itoa(n))
	}
	return table[n-1].toElement(n - 1), nil
}

// ByName 根据名称获取元素，忽略大小写及重音
func ByName(name string) (model.Element, error) {
	target := textx.Normalize(name)
	return find(model.ByName, name, func(e entry) bool { return textx.Normalize(e.name) == target })
}

// BySymbol 根据符号获取元素，忽略大小写
func BySymbol(symbol string) (model.Element, error) {
	target := textx.Normalize(symbol)
	return find(model.BySymbol, symbol, func(e entry) bool { return textx.Normalize(e.symbol) == target })
}

// Resolve 根据查询条件获取元素
func Resolve(query model.Query) (element model.Element, err error) {
	switch query.Criterion {
	case model.ByAtomicNumber:
		element, err = ByNumber(query.AtomicNumber)
	case model.ByName:
		element, err = ByName(query.Text)
	case model.BySymbol:
		element, err = BySymbol(query.Text)
	default:
		return model.Element{}, errors.Errorf("unknown query criterion: %q", query.Criterion)
	}

	logger := logging.GetLookupLogger().WithField("criterion", query.Criterion).WithField("query", query.Value())
	if err != nil {
		logger.Info("element not found")
		return element, err
	}
	logger.WithField("atomicNumber", element.AtomicNumber).Info("element resolved")
	return element, nil
}

// 线性扫描，原子序数最小的匹配项优先
func find(criterion model.Criterion, value string, predicate func(e entry) bool) (model.Element, error) {
	e, idx, ok := lo.FindIndexOf(table[:], predicate)
	if !ok {
		return model.Element{}, newNotFoundError(criterion, value)
	}
	return e.toElement(idx), nil
}

// Validate 校验元素表：名称与符号非空，且归一化后互不重复
func Validate() error {
	names, symbols := set.NewStringSet(), set.NewStringSet()
	for idx, e := range table {
		if e.name == "" || e.symbol == "" {
			return errors.Errorf("element %d has empty name or symbol", idx+1)
		}
		if len(e.symbol) > 2 {
			return errors.Errorf("element %d has invalid symbol %s", idx+1, e.symbol)
		}
		name, symbol := textx.Normalize(e.name), textx.Normalize(e.symbol)
		if names.Has(name) {
			return errors.Errorf("duplicate element name %s (atomic number %d)", e.name, idx+1)
		}
		if symbols.Has(symbol) {
			return errors.Errorf("duplicate element symbol %s (atomic number %d)", e.symbol, idx+1)
		}
		names.Add(name)
		symbols.Add(symbol)
	}
	return nil
}
