package cmd

import (
	"encoding/json"
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/narasux/elements/pkg/model"
	"github.com/narasux/elements/pkg/subshell"
	"github.com/narasux/elements/pkg/utils/funcs"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var elementTmpl = `
Symbol: {{ .Symbol }}, Name: {{ .Name }}, AtomicNumber: {{ .AtomicNumber }}

Subshells:
{{ subshells .AtomicNumber }}
`

var elementsTmpl = `
{{- range . -}}
{{ .AtomicNumber | toString | printf "%3s" }}  {{ printf "%-2s" .Symbol }}  {{ printf "%-12s" .Name }}  {{ subshells .AtomicNumber }}
{{ end -}}
`

var (
	elementTemplate  = template.Must(newTemplate("element", strings.TrimLeft(elementTmpl, "\n")))
	elementsTemplate = template.Must(newTemplate("elements", strings.TrimLeft(elementsTmpl, "\n")))
)

func newTemplate(name, text string) (*template.Template, error) {
	return template.New(name).Funcs(funcs.NewFuncMap()).Parse(text)
}

// elementView json 输出的元素信息
type elementView struct {
	model.Element
	Configuration string                 `json:"configuration"`
	Subshells     subshell.Configuration `json:"subshells"`
}

func newElementView(element model.Element) elementView {
	config := subshell.Fill(element.AtomicNumber)
	return elementView{Element: element, Configuration: config.String(), Subshells: config}
}

func validateOutputFormat(format string) error {
	if !lo.Contains([]string{outputText, outputJSON}, format) {
		return errors.Errorf("unsupported output format %q, must be %s or %s", format, outputText, outputJSON)
	}
	return nil
}

func renderElement(w io.Writer, format string, element model.Element) error {
	if format == outputJSON {
		return writeJSON(w, newElementView(element))
	}
	return errors.Wrap(elementTemplate.Execute(w, element), "failed to render element")
}

func renderElements(w io.Writer, format string, elements []model.Element) error {
	if format == outputJSON {
		return writeJSON(w, lo.Map(elements, func(e model.Element, _ int) elementView { return newElementView(e) }))
	}
	return errors.Wrap(elementsTemplate.Execute(w, elements), "failed to render elements")
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	// 保留上标等字符原样输出
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "failed to encode json")
}
