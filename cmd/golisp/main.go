package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jpschroeder/golisp"
	"github.com/jpschroeder/golisp/internal/config"
)

const promptCont = "... "

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvVar+")")
	expr := flag.String("e", "", "evaluate a single program and exit")
	maxDepth := flag.Int("max-depth", -1, "evaluation depth limit, 0 disables it (overrides the config file)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("golisp: ")

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		log.Fatal(err)
	}
	if *maxDepth >= 0 {
		cfg.MaxDepth = *maxDepth
	}

	in := golisp.NewInterpreter(
		golisp.WithMaxDepth(cfg.MaxDepth),
		golisp.WithLogger(log.Default()),
	)
	if err := cfg.Apply(in); err != nil {
		log.Fatal(err)
	}

	switch {
	case *expr != "":
		out, err := in.Evaluate(*expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	case isInputRedirected():
		if err := ReadEvalPrint(in, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		ReadEvalPrintLoop(in, cfg)
	}
}

// ReadEvalPrint evaluates every datum in r, printing each result. It stops
// at the first error.
func ReadEvalPrint(in *golisp.Interpreter, r *bufio.Reader, w io.Writer) error {
	for {
		val, err := golisp.Read(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		res, err := in.EvalValue(val)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, golisp.Print(res))
	}
}

func ReadEvalPrintLoop(in *golisp.Interpreter, cfg config.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit, :reset to clear definitions.")
	for {
		src, ok := readProgram(ln, cfg.Prompt)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(src)
		switch trimmed {
		case "":
			continue
		case ":quit":
			return
		case ":reset":
			in.Reset()
			if err := cfg.Apply(in); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		out, err := in.Evaluate(src)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
}

// readProgram keeps prompting while the input so far is an unterminated
// list.
func readProgram(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := golisp.Parse(src); golisp.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

func isInputRedirected() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
