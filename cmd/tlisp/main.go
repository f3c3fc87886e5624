// Released under an MIT license. See LICENSE.

// Tlisp is a small, case-sensitive Lisp-1 interpreter: an interactive
// prompt that reads one physical line at a time, evaluates each form on
// it, and prints each result on its own line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/tlisp/tlisp/internal/boot"
	"github.com/tlisp/tlisp/internal/builtin"
	"github.com/tlisp/tlisp/internal/eval"
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/printer"
	"github.com/tlisp/tlisp/internal/reader"
)

const library = "library.lisp"

func main() {
	e := builtin.Env()

	bootstrap(e)

	if text, err := os.ReadFile(library); err == nil {
		fmt.Printf("Reading %s...\n", library)
		load(os.Stdout, e, string(text))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		interact(e)

		return
	}

	repl(os.Stdin, os.Stdout, e)
}

// bootstrap evaluates the bundled prelude. The prelude is data shipped
// with the interpreter, so a failure here is a build defect, not a user
// error.
func bootstrap(e cell.T) {
	r := reader.New()
	r.Feed(boot.Script())

	for {
		form, err := r.ReadExpr()
		if err != nil {
			if reader.AtEOF(err) {
				return
			}

			panic(err)
		}

		if _, err := eval.Eval(form, e); err != nil {
			panic(err)
		}
	}
}

// load evaluates every form in text against e, echoing each form's
// value — or the form and a diagnostic — one per line.
func load(w io.Writer, e cell.T, text string) {
	r := reader.New()
	r.Feed(text)

	for {
		form, err := r.ReadExpr()
		if err != nil {
			if !reader.AtEOF(err) {
				fmt.Fprintln(w, diagnose(err))
			}

			return
		}

		v, err := eval.Eval(form, e)
		if err != nil {
			fmt.Fprintln(w, "Error in expression:")
			fmt.Fprintf(w, "\t%s\n", printer.Print(form))
			fmt.Fprintln(w, diagnose(err))
		} else {
			fmt.Fprintln(w, printer.Print(v))
		}

		eval.Collect()
	}
}

// line evaluates one physical line: wrapped in parentheses, read as a
// single list, each element evaluated and printed on its own line.
func line(w io.Writer, e cell.T, text string) {
	r := reader.New()
	r.Feed("(" + text + ")")

	forms, err := r.ReadExpr()
	if err != nil {
		fmt.Fprintln(w, diagnose(err))

		return
	}

	for ; pair.Is(forms); forms = pair.Cdr(forms) {
		v, err := eval.Eval(pair.Car(forms), e)
		if err != nil {
			fmt.Fprintln(w, diagnose(err))
		} else {
			fmt.Fprintln(w, printer.Print(v))
		}
	}

	eval.Collect()
}

// repl reads lines from in without any terminal handling; used when
// stdin is not a tty (piped input, tests).
func repl(in io.Reader, w io.Writer, e cell.T) {
	s := bufio.NewScanner(in)

	for {
		fmt.Fprint(w, "> ")

		if !s.Scan() {
			return
		}

		line(w, e, s.Text())
	}
}

// interact drives the prompt through liner, toggling the terminal
// between raw mode for editing and cooked mode for evaluation output.
func interact(e cell.T) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli.SetCtrlCAborts(true)

	for {
		if err := uncooked.ApplyMode(); err != nil {
			println(err.Error())
			os.Exit(1)
		}

		text, err := cli.Prompt("> ")

		if merr := cooked.ApplyMode(); merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		switch err {
		case nil:
			cli.AppendHistory(text)
		case liner.ErrPromptAborted:
			fmt.Println()

			continue
		default:
			fmt.Println()

			return
		}

		line(os.Stdout, e, text)
	}
}

// diagnose maps an error to the fixed diagnostic lines the interpreter
// prints.
func diagnose(err error) string {
	if e, ok := err.(*lisperrors.Error); ok {
		return e.Kind.String()
	}

	return err.Error()
}
