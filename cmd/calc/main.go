package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calclab/calc"
)

var (
	echo     bool
	noColor  bool
	histPath string
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression ...]",
	Short: "Evaluate arithmetic expressions using + - * / % ^ ( )",
	Long: `calc evaluates arithmetic expressions built from decimal literals,
the operators + - * / % ^, unary negation, and parentheses.

With arguments, each argument is evaluated as one expression. With no
arguments, calc starts an interactive prompt with line editing and history;
an expression left unfinished continues on the next line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			disableStyles()
		}
		if len(args) == 0 {
			return repl()
		}
		ok := true
		for _, arg := range args {
			if !evalOnce(arg) {
				ok = false
			}
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&echo, "echo", false, "print parse trees before results")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	rootCmd.Flags().StringVar(&histPath, "history", "", "history file (default ~/"+historyFile+")")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// evalOnce evaluates a single argument expression and prints the result or
// a rendered error. Reports whether the expression evaluated cleanly.
func evalOnce(src string) bool {
	e, err := calc.Parse(src)
	if err != nil {
		printInputError(os.Stderr, src, err)
		return false
	}
	if echo {
		fmt.Printf("%v : ", e)
	}
	fmt.Printf("%g\n", e.Eval())
	return true
}

// errIndent is the number of spaces the input is indented by when an error
// is rendered under it.
const errIndent = 2

// printInputError echoes the input and draws a caret under the error
// column, followed by a short message. Continuation newlines are flattened
// to spaces so the caret offset stays valid.
func printInputError(w io.Writer, input string, err error) {
	var ie calc.InputError
	if !errors.As(err, &ie) {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
		return
	}
	flat := strings.Map(func(r rune) rune {
		if r == '\n' {
			return ' '
		}
		return r
	}, input)
	fmt.Fprintf(w, "\n%s%s\n", strings.Repeat(" ", errIndent), flat)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", errIndent+ie.Pos()), errorStyle.Render("^ "+message(ie)))
}

// message is the caret-line text for an input error. The error's own
// rendering carries the column, which the caret already shows.
func message(err error) string {
	switch err.(type) {
	case *calc.SymbolError:
		return "unknown symbol"
	case *calc.TokenError:
		return "not expected here"
	}
	return err.Error()
}
