/*
File    : rugo/cmd/rugo/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for rugo, a front-end over the parser
module. It has two modes:

 1. File mode: rugo <path-to-file.rb>
    Parses the file and prints either the human-readable AST dump or,
    if .rugo.yaml sets dump: true, the binary tree to DumpPath.

 2. REPL mode (default, no file argument)
    Reads one line at a time, parses it standalone, and prints its
    dump and any diagnostics.

rugo never evaluates anything: there is no interpreter behind the
parser, only a printer of what the parser produced.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/parser"
	"github.com/akashmaji946/rugo/serialize"
)

const (
	version = "v0.1.0"
	author  = "Akash Maji"
	license = "MIT"
	prompt  = "rugo >>> "
	line    = "--------------------------------------------------------------"
)

var banner = strings.Join([]string{
	`            _        ___ ___`,
	`  _ __ _  _| |__ _  / _ \ _ \`,
	` | '_ \ || | / _| || (_) | _/`,
	` | .__/\_,_|_\__|\_,_\___/_|`,
	` |_|`,
}, "\n")

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

func main() {
	cfg, err := loadConfig(".rugo.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	if !cfg.Color {
		color.NoColor = true
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
		runFile(os.Args[1], cfg)
		return
	}

	runRepl(cfg)
}

func showHelp() {
	cyanColor.Println("rugo - a standalone Ruby lexer/parser front-end")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  rugo                    Start interactive parse-and-dump REPL")
	yellowColor.Println("  rugo <path-to-file>     Parse a Ruby source file and dump its tree")
	yellowColor.Println("  rugo --help             Display this help message")
	yellowColor.Println("  rugo --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("CONFIG:")
	yellowColor.Println("  .rugo.yaml in the working directory controls dump/dump_path/color")
}

func showVersion() {
	cyanColor.Println("rugo - a standalone Ruby lexer/parser front-end")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile parses a file and either dumps its binary serialization (per
// config) or prints the human-readable AST tree, plus any diagnostics.
func runFile(path string, cfg Config) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(src)
	prog := p.Parse()

	printDiagnostics(os.Stderr, p)

	if cfg.Dump {
		out := serialize.Dump(prog)
		if err := os.WriteFile(cfg.DumpPath, out, 0o644); err != nil {
			redColor.Fprintf(os.Stderr, "[DUMP ERROR] could not write '%s': %v\n", cfg.DumpPath, err)
			os.Exit(1)
		}
		cyanColor.Printf("wrote binary tree to %s (%d bytes)\n", cfg.DumpPath, len(out))
		return
	}

	fmt.Println(ast.Dump(prog))

	if p.Diagnostics().HasErrors() {
		os.Exit(1)
	}
}

// runRepl parses each line standalone: there is no shared scope or
// statement continuation across lines, matching a parser front-end
// rather than an interpreter session.
func runRepl(cfg Config) {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		text, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(os.Stdout, "Good Bye!")
			return
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == ".exit" {
			fmt.Fprintln(os.Stdout, "Good Bye!")
			return
		}
		rl.SaveHistory(text)

		parseAndPrint(os.Stdout, text, cfg)
	}
}

func parseAndPrint(w *os.File, src string, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(w, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	p := parser.New([]byte(src))
	prog := p.Parse()

	printDiagnostics(w, p)

	if cfg.Dump {
		out := serialize.Dump(prog)
		yellowColor.Fprintf(w, "%d bytes of binary tree\n", len(out))
		return
	}
	yellowColor.Fprintln(w, ast.Dump(prog))
}

func printDiagnostics(w *os.File, p *parser.Parser) {
	for _, d := range p.Diagnostics().All() {
		redColor.Fprintf(w, "%s\n", d.String())
	}
}

func printBanner(w *os.File) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Version: "+version+" | Author: "+author+" | License: "+license)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Welcome to rugo!")
	cyanColor.Fprintln(w, "Type a Ruby expression and press enter to see its parse tree")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", line)
}
