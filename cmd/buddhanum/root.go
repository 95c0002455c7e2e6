package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"buddha-num-conv/internal/config"
	"buddha-num-conv/internal/conv"
	"buddha-num-conv/internal/form"
	"buddha-num-conv/internal/render"
	"buddha-num-conv/internal/scale"
)

// errConversionFailed marks an error that was already written to stderr.
var errConversionFailed = errors.New("conversion failed")

type convertFlags struct {
	exp       string
	number    string
	format    string
	noRuby    bool
	kanji     bool
	comma     bool
	noSpacing bool
}

func (f *convertFlags) options() conv.Options {
	opts := conv.DefaultOptions()
	opts.IncludeReadings = !f.noRuby
	opts.AllDigitsNamed = f.kanji
	opts.RakushaAsComma = f.comma
	opts.SpacingAfterScale = !f.noSpacing
	return opts
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "buddhanum [coefficient]",
		Short: "Write coefficient × 10^exponent with Buddhist large-number words",
		Example: `  buddhanum 1.5 --exp 21
  buddhanum --number 12,345,678 --format annotated
  buddhanum --kanji --exp 10 -- -1234`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			var in form.Input
			switch {
			case cmd.Flags().Changed("number"):
				if len(args) > 0 || cmd.Flags().Changed("exp") {
					return errors.New("--number cannot be combined with a coefficient or --exp")
				}
				in = form.PlainNumber(flags.number)
			case len(args) == 1:
				in = form.Expression(args[0], flags.exp)
			default:
				return errors.New("a coefficient argument or --number is required")
			}

			tokens, err := conv.Convert(in.Coefficient, in.Exponent, flags.options())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), render.Error(format, err))
				return errConversionFailed
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Tokens(format, tokens))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.exp, "exp", "e", "0", "power of ten the coefficient is multiplied by")
	f.StringVarP(&flags.number, "number", "n", "", "plain number, commas allowed, instead of coefficient and --exp")
	f.StringVarP(&flags.format, "format", "f", string(cfg.DefaultFormat), "output format: text, html or annotated")
	f.BoolVar(&flags.noRuby, "no-ruby", false, "omit kana readings")
	f.BoolVar(&flags.kanji, "kanji", false, "write digits in kanji")
	f.BoolVar(&flags.comma, "comma", false, `write 洛叉 as ","`)
	f.BoolVar(&flags.noSpacing, "no-spacing", false, "no space after scale words")

	cmd.AddCommand(newScalesCmd())
	return cmd
}

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the scale words and their powers of ten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, def := range scale.All() {
				fmt.Fprintf(out, "%d\t%s\t%s\t10^%s\n", def.Ordinal, def.Name, def.Reading, def.Zeros())
			}
			return nil
		},
	}
}
