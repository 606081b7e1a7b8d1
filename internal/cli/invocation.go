package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calclab/calc/internal/config"
	"github.com/calclab/calc/internal/engine"
)

// Process exit codes.
const (
	ExitSuccess           = 0
	ExitEvalFailure       = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
)

// Mode selects how the invocation is evaluated.
type Mode string

const (
	ModeOperation  Mode = "operation"  // calc add 2 3
	ModeExpression Mode = "expression" // calc eval "(2*3)+5"
	ModeREPL       Mode = "repl"       // calc
)

// Invocation is the canonicalized description of a run. All argument parsing
// happens here, before any engine code is invoked.
type Invocation struct {
	Mode        Mode
	Op          engine.Op
	Operands    []float64
	RawOperands []string // original operand text, used by precise mode
	Expression  string

	JSON       bool
	Precise    bool
	Precision  int // output decimal places; -1 means shortest exact rendering
	LogLevel   string
	ConfigPath string

	setFlags map[string]bool
}

// InvocationError reports an invalid command line together with the exit
// code the process should terminate with.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...interface{}) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// preciseOps are the operations the precision module supports.
var preciseOps = map[engine.Op]bool{
	engine.OpAdd:      true,
	engine.OpSubtract: true,
	engine.OpMultiply: true,
	engine.OpDivide:   true,
}

// ParseInvocation parses command-line arguments into an Invocation.
// Parsing errors are returned, not printed. A help request surfaces as
// flag.ErrHelp.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var inv Invocation
	fs.BoolVar(&inv.JSON, "json", false, "Print results as a JSON envelope")
	fs.BoolVar(&inv.Precise, "precise", false, "Use arbitrary-precision decimal arithmetic (add, subtract, multiply, divide)")
	fs.IntVar(&inv.Precision, "precision", -1, "Decimal places for output (and precise-mode working precision)")
	fs.StringVar(&inv.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&inv.ConfigPath, "config", "", "Path to TOML config file")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return Invocation{}, flag.ErrHelp
		}
		return Invocation{}, invalidInvocationf("%v", err)
	}

	inv.setFlags = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { inv.setFlags[f.Name] = true })

	positional := fs.Args()
	switch {
	case len(positional) == 0:
		inv.Mode = ModeREPL

	case positional[0] == "eval":
		if len(positional) < 2 {
			return Invocation{}, invalidInvocationf("eval requires an expression argument")
		}
		inv.Mode = ModeExpression
		inv.Expression = strings.Join(positional[1:], " ")

	default:
		op := engine.Op(positional[0])
		if _, ok := engine.Lookup(op); ok {
			inv.Mode = ModeOperation
			inv.Op = op
			inv.RawOperands = positional[1:]
			inv.Operands = make([]float64, 0, len(positional)-1)
			for _, raw := range positional[1:] {
				n, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return Invocation{}, invalidInvocationf("invalid operand %q: not a number", raw)
				}
				inv.Operands = append(inv.Operands, n)
			}
			break
		}
		if len(positional) == 1 {
			// Single non-operation argument is treated as an expression.
			inv.Mode = ModeExpression
			inv.Expression = positional[0]
			break
		}
		return Invocation{}, invalidInvocationf("unknown operation %q", positional[0])
	}

	if inv.Precise {
		if inv.Mode != ModeOperation {
			return Invocation{}, invalidInvocationf("-precise requires a fixed operation (add, subtract, multiply, divide)")
		}
		if !preciseOps[inv.Op] {
			return Invocation{}, invalidInvocationf("operation %q does not support -precise", inv.Op)
		}
	}

	return inv, nil
}

// ApplyConfig fills in settings the command line left unset.
func (inv *Invocation) ApplyConfig(cfg *config.Config) {
	if !inv.setFlags["json"] {
		inv.JSON = cfg.Output.JSON
	}
	if !inv.setFlags["precision"] {
		inv.Precision = cfg.Output.Precision
	}
	if inv.LogLevel == "" {
		inv.LogLevel = cfg.Logging.Level
	}
}

// Usage returns the full usage text, including the operation table.
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  calc [flags] <operation> <operand>...\n")
	b.WriteString("  calc [flags] eval \"<expression>\"\n")
	b.WriteString("  calc [flags]              (interactive)\n\n")
	b.WriteString("Operations:\n")
	for _, s := range engine.Specs() {
		fmt.Fprintf(&b, "  %-10s %s\n", s.Op, s.Description)
	}
	b.WriteString("\nFlags:\n")
	b.WriteString("  -json             print results as a JSON envelope\n")
	b.WriteString("  -precise          arbitrary-precision decimal arithmetic\n")
	b.WriteString("  -precision N      decimal places for output\n")
	b.WriteString("  -log-level LEVEL  debug, info, warn or error\n")
	b.WriteString("  -config PATH      TOML config file\n")
	return b.String()
}
