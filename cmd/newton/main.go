// Package main implements the newton CLI: a thin driver over the front end
// that dumps its two intermediate stages, the token stream and the parsed
// program, for inspection. It builds no evaluator and does no semantic
// analysis of its own.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/parser"
	"github.com/newton-lang/newton/source"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

var cmdRoot = &cobra.Command{
	Use:           "newton",
	Short:         "Newton front end: lexer, parser, and AST inspection",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cmdTokens = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the lexical token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and dump its Program as an indented tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

// Execute wires up and runs the root command; it is also the entry point an
// external caller (e.g. a test harness) can invoke directly instead of going
// through main's os.Exit path.
func Execute() error {
	cmdParse.Flags().Bool("errors-only", false, "print only the parser's error count, not the tree")
	cmdRoot.AddCommand(cmdTokens, cmdParse)
	return cmdRoot.Execute()
}

func readSource(path string) (*source.Source, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return source.New(path, string(code)), nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	lex := lexer.NewLexer(src)
	for _, item := range lex.All() {
		if item.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %s\n", item.Err.Span.String(), item.Err.Node.Error())
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", item.Token.Span.String(), item.Token.Node.String())
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	p := parser.New(src)
	program := p.Parse()

	errorsOnly, _ := cmd.Flags().GetBool("errors-only")
	if !errorsOnly {
		fmt.Fprint(cmd.OutOrStdout(), ast.PrintProgram(program))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d error(s)\n", p.ErrorCount)
	return nil
}
