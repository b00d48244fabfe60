package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	lox "glox"
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: glox [-config file] [-debug] [script]")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glox: ")

	configPath := flag.String("config", lox.DefaultConfigPath(), "path to a YAML config file")
	debug := flag.Bool("debug", false, "log the parsed syntax tree before evaluating")
	flag.Usage = usage
	flag.Parse()

	cfg, err := lox.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Debug = cfg.Debug || *debug

	// we say glox instead of jlox bc its golox not javalox!
	switch args := flag.Args(); len(args) {
	case 0:
		os.Exit(runPrompt(cfg))
	case 1:
		os.Exit(runFile(args[0], cfg))
	default:
		usage()
		os.Exit(lox.ExitUsage)
	}
}

func runFile(path string, cfg lox.Config) int {
	buff, err := os.ReadFile(path)
	if err != nil {
		log.Print(err)
		return lox.ExitUsage
	}

	interpreter := lox.NewInterpreter(os.Stdout)
	result := run(string(buff), interpreter, cfg)
	result.Report(os.Stderr)

	return result.ExitCode()
}

func runPrompt(cfg lox.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
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
	}

	// Globals persist between lines; diagnostics do not.
	interpreter := lox.NewInterpreter(os.Stdout)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println("bye")
			return lox.ExitOK
		}
		if err != nil {
			log.Print(err)
			return lox.ExitSoftware
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return lox.ExitOK
		}
		ln.AppendHistory(line)

		result := run(line, interpreter, cfg)
		for _, err := range result.Errors() {
			msg := err.Error()
			if cfg.Color {
				msg = red(msg)
			}
			fmt.Fprintln(os.Stderr, msg)
		}
	}
}

func run(source string, interpreter *lox.Interpreter, cfg lox.Config) *lox.Result {
	result := lox.Parse(source)
	if cfg.Debug && !result.HadError() {
		for _, stmt := range result.Statements {
			log.Printf("ast: %s", stmt)
		}
	}

	return result.Evaluate(interpreter)
}
