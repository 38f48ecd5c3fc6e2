package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"guu/internal/config"
	"guu/internal/logger"
	"guu/pkg/color"
	"guu/pkg/interpreter"
	"guu/pkg/parser"
	"guu/pkg/program"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type Debugger struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	MaxDepth   int    // Call depth limit, 0 keeps the configured value
	ConfigFile string // Path to an optional YAML config
	SourceFile string // Path to the Guu source file
	DumpFile   string // Path to write the final state as JSON, optional

	Input       io.Reader // debug commands, defaults to stdin
	Output      io.Writer // program and debugger output, defaults to stdout
	Diagnostics io.Writer // syntax error reports, defaults to stderr
}

// Config resolves the effective configuration: defaults, then the config file, then flags
func (d *Debugger) Config() (*config.Config, error) {
	cfg := config.Default()
	if d.ConfigFile != "" {
		loaded, err := config.Load(d.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if d.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", d.MaxDepth)
	}
	if d.MaxDepth > 0 {
		cfg.MaxDepth = d.MaxDepth
	}
	cfg.Verbose = cfg.Verbose || d.Verbose
	cfg.NoColor = cfg.NoColor || d.NoColor

	return cfg, cfg.Validate()
}

// Load reads and parses the source file
func (d *Debugger) Load() (program.FunctionTable, error) {
	log.Info("Processing file", "file", d.SourceFile)

	input, err := os.ReadFile(d.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("file %s can't be read: %w", d.SourceFile, err)
	}

	functions, err := parser.Parse(string(input))
	if err != nil {
		fmt.Fprintln(d.diagnostics(), color.BrightRedText("=== Syntax Error ==="))
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(d.diagnostics(), syntaxErr.Pretty())
		}
		return nil, fmt.Errorf("parsing failed: %w", err)
	}

	log.Debug("Parsed program", "functions", len(functions))
	return functions, nil
}

// Run parses the source file and debugs main, reading commands from Input
func (d *Debugger) Run() error {
	cfg, err := d.Config()
	if err != nil {
		return err
	}

	logger.Init(cfg.Verbose, cfg.NoColor)
	if cfg.NoColor {
		color.EnableColor(false)
	}

	functions, err := d.Load()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		d.listFunctions(functions)
	}

	opts := []interpreter.Option{
		interpreter.WithWriter(d.output()),
		interpreter.WithCommands(d.input()),
		interpreter.WithMaxDepth(cfg.MaxDepth),
	}
	if d.interactive() {
		opts = append(opts, interpreter.WithPrompt(cfg.Prompt))
	}

	intr := interpreter.NewInterpreter(functions, opts...)
	runErr := intr.Process()
	log.Debug("Session finished", "steps", intr.Steps(), "variables", intr.Variables().Len())

	if d.DumpFile != "" {
		if err := d.dump(intr); err != nil {
			log.Error("Failed to write state", "file", d.DumpFile, "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("execution failed: %w", runErr)
	}

	return nil
}

// listFunctions prints the parsed function table
func (d *Debugger) listFunctions(functions program.FunctionTable) {
	out := d.output()
	fmt.Fprintln(out, color.GreenText("=== Functions ==="))
	if len(functions) == 0 {
		fmt.Fprintln(out, color.GrayText("No functions declared."))
		return
	}

	for _, name := range functions.Names() {
		fn := functions[name]
		fmt.Fprintln(out, color.Function(fn.StartLine, fn.Name))
		for idx, in := range fn.Instructions {
			fmt.Fprintf(out, "%s:     %s\n", color.Line(fn.LineOf(idx)), color.BlueText(in.String()))
		}
	}
	fmt.Fprintln(out, color.GreenText("=== Session ==="))
}

// dump writes the interpreter state to DumpFile
func (d *Debugger) dump(intr *interpreter.Interpreter) error {
	file, err := os.Create(d.DumpFile)
	if err != nil {
		return err
	}

	if err := intr.WriteState(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// interactive reports whether commands come from a terminal
func (d *Debugger) interactive() bool {
	f, ok := d.input().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (d *Debugger) input() io.Reader {
	if d.Input == nil {
		return os.Stdin
	}
	return d.Input
}

func (d *Debugger) diagnostics() io.Writer {
	if d.Diagnostics == nil {
		return os.Stderr
	}
	return d.Diagnostics
}

func (d *Debugger) output() io.Writer {
	if d.Output == nil {
		return os.Stdout
	}
	return d.Output
}
