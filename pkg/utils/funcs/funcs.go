package funcs

import (
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/narasux/elements/pkg/subshell"
)

func NewFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	// 根据原子序数计算电子排布
	funcMap["subshells"] = func(atomicNumber int) string {
		return subshell.Fill(atomicNumber).String()
	}
	return funcMap
}
