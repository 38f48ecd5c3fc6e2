package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"guu/internal/debugger"
	"guu/internal/logger"
	"guu/pkg/interpreter"
	"guu/pkg/parser"

	"github.com/charmbracelet/log"
)

// Main entry point for the Guu debugger.
func main() {
	options := debugger.Debugger{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.ConfigFile, "c", "", "YAML config file")
	flag.IntVar(&options.MaxDepth, "d", 0, "Maximum call depth (default from config, 10000)")
	flag.StringVar(&options.DumpFile, "dump", "", "Write variables and the saved stack as JSON to this file")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Debug commands: i (step in), o (step over), trace, var, save")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if len(args) != 1 {
		log.Fatal("Expected exactly one source file", "found", len(args), "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	err := options.Run()
	var syntaxErr *parser.SyntaxError
	switch {
	case err == nil:
	case errors.As(err, &syntaxErr):
		// already reported with its source position
		os.Exit(1)
	case errors.Is(err, interpreter.ErrCallDepthExceeded):
		log.Fatal("Stack overflowed", "error", err)
	default:
		log.Fatal("Debugging failed", "error", err)
	}
}
