package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/narasux/elements/pkg/common/errcode"
	"github.com/narasux/elements/pkg/logging"
	"github.com/narasux/elements/pkg/model"
	"github.com/narasux/elements/pkg/periodic"
	"github.com/narasux/elements/pkg/version"
)

const (
	flagAtomicNumber = "atomic-number"
	flagSymbol       = "symbol"
	flagName         = "name"
	flagOutput       = "output"
)

var rootCmd = NewRootCmd()

type rootOptions struct {
	atomicNumber uint8
	symbol       string
	name         string
	output       string
}

// 根据设置的 flag 生成查询条件，flag 的互斥 / 必填已由 cobra 校验
func (o *rootOptions) query(cmd *cobra.Command) model.Query {
	flags := cmd.Flags()
	switch {
	case flags.Changed(flagAtomicNumber):
		return model.Query{Criterion: model.ByAtomicNumber, AtomicNumber: int(o.atomicNumber)}
	case flags.Changed(flagSymbol):
		return model.Query{Criterion: model.BySymbol, Text: o.symbol}
	default:
		return model.Query{Criterion: model.ByName, Text: o.name}
	}
}

// NewRootCmd ...
func NewRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := cobra.Command{
		Use:           "elements",
		Short:         "elements shows a chemical element and its electron subshells.",
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogger()
			if err := periodic.Validate(); err != nil {
				return errors.Wrap(err, "invalid element table")
			}
			return validateOutputFormat(opts.output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// 参数已通过校验，后续的查询失败不需要打印用法
			cmd.SilenceUsage = true

			element, err := periodic.Resolve(opts.query(cmd))
			if err != nil {
				return err
			}
			return renderElement(cmd.OutOrStdout(), opts.output, element)
		},
	}

	flags := cmd.Flags()
	flags.Uint8VarP(&opts.atomicNumber, flagAtomicNumber, "a", 0, "Search an element by its atomic number")
	flags.StringVarP(&opts.symbol, flagSymbol, "s", "", "Search an element by its symbol")
	flags.StringVarP(&opts.name, flagName, "n", "", "Search an element by its name")
	cmd.MarkFlagsOneRequired(flagAtomicNumber, flagSymbol, flagName)
	cmd.MarkFlagsMutuallyExclusive(flagAtomicNumber, flagSymbol, flagName)

	cmd.PersistentFlags().StringVarP(&opts.output, flagOutput, "o", outputText, "Output format, text or json")

	cmd.AddCommand(newVersionCmd(), newListCmd(&opts))
	return &cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(handleError(rootCmd.ErrOrStderr(), err))
	}
}

// 打印错误信息并返回退出码
func handleError(w io.Writer, err error) int {
	red := newColor(w, color.FgRed)

	var notFound *periodic.NotFoundError
	if errors.As(err, &notFound) {
		printLine(w, red, notFound.Error())
		return errcode.ElementNotFound
	}
	printLine(w, red, "Error: "+err.Error())
	return errcode.InvalidArgs
}

// color 只根据 os.Stdout 判断是否着色，这里改为根据实际输出的目标判断
func newColor(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if f, ok := w.(*os.File); ok && !color.NoColor && isTerminal(f) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// 换行不包含在着色范围内
func printLine(w io.Writer, c *color.Color, msg string) {
	_, _ = c.Fprint(w, msg)
	_, _ = fmt.Fprintln(w)
}
