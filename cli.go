package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"m6502/emu/log"
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Load a program image and run it." default:"withargs"`
		Disasm  Disasm  `cmd:"" help:"Disassemble a program image."`
		Version Version `cmd:"" help:"Show version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
	}

	Run struct {
		Image   string  `arg:"" optional:"" name:"/path/to/image" help:"${image_help}" type:"existingfile"`
		Offset  addr16  `help:"Load offset for the image." default:"0x8000"`
		Machine string  `help:"Machine description file (TOML)." type:"existingfile"`
		Entry   *addr16 `help:"Override the reset vector."`
		Cycles  int64   `help:"Cycle budget for the run." default:"100000"`

		Trace    *outfile `help:"Write execution trace." placeholder:"FILE|stdout|stderr"`
		StateOut string   `name:"state-out" help:"Write final CPU state (JSON)." type:"path"`
		StateIn  string   `name:"state-in" help:"Resume from a CPU state snapshot (JSON)." type:"existingfile"`
	}

	Disasm struct {
		Image  string `arg:"" name:"/path/to/image" help:"Raw program image." type:"existingfile"`
		Offset addr16 `help:"Load offset for the image." default:"0x8000"`
		Count  int    `help:"Number of instructions to list." default:"32"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"image_help": "Raw program image, loaded verbatim at --offset.",
	"log_help":   "Enable debug logging for specified modules.",
}

func parseArgs(args []string) (CLI, *kong.Context) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("m6502"),
		kong.Description("Cycle-counted 6502 emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")
	return cli, ctx
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

// addr16 is a 16-bit address flag accepting 0x-prefixed hex, octal or
// decimal.
//
// Implements kong.MapperValue interface.
type addr16 uint16

func (a *addr16) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		s = fmt.Sprint(tok.Value)
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("%s: not a 16-bit address", s)
	}
	*a = addr16(v)
	return nil
}

func (a addr16) String() string { return fmt.Sprintf("$%04X", uint16(a)) }

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
