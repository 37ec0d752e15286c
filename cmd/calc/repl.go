package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/calclab/calc"
)

const (
	historyFile = ".calc_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

// repl runs the interactive loop: read one expression, possibly spanning
// several lines, evaluate it, print the result or a caret-aligned error.
func repl() error {
	fmt.Println("Evaluate math expressions using + - * / % ^ ( )")

	path := histPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(path); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		input, ok := readExpr(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		e, err := calc.Parse(input)
		if err != nil {
			printInputError(os.Stderr, input, err)
			ln.AppendHistory(flatten(input))
			continue
		}
		if echo {
			fmt.Printf("%v : ", e)
		}
		fmt.Printf("%g\n", e.Eval())
		ln.AppendHistory(flatten(input))
	}
}

// readExpr reads one expression from the line editor, prompting with the
// continuation prompt and growing the buffer for as long as the buffer
// parses as incomplete. The second result is false when the user exits.
func readExpr(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptStyle.Render(promptMain)
		if b.Len() > 0 {
			prompt = promptStyle.Render(promptCont)
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, err := calc.Parse(src); calc.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
