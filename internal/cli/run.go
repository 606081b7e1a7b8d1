// Package cli canonicalizes command-line input into an Invocation and drives
// the calculator engine, keeping stdout as the single result channel.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/calclab/calc/internal/config"
	"github.com/calclab/calc/internal/engine"
	"github.com/calclab/calc/internal/expr"
	"github.com/calclab/calc/internal/logging"
)

// Runner executes invocations against the engine.
type Runner struct {
	engine *engine.Engine
	eval   *expr.Evaluator
	out    io.Writer
	errOut io.Writer
	in     io.Reader
	log    *logging.Logger

	jsonMode bool
}

// NewRunner creates a runner writing results to out, errors and prompts to
// errOut, and reading interactive input from in.
func NewRunner(out, errOut io.Writer, in io.Reader, log *logging.Logger) *Runner {
	eng := engine.New()
	return &Runner{
		engine: eng,
		eval:   expr.New(eng),
		out:    out,
		errOut: errOut,
		in:     in,
		log:    log,
	}
}

// Run evaluates inv and returns the process exit code.
func (r *Runner) Run(inv Invocation, cfg *config.Config) int {
	r.jsonMode = inv.JSON

	switch inv.Mode {
	case ModeOperation:
		return r.runOperation(inv, cfg)
	case ModeExpression:
		return r.runExpression(inv)
	case ModeREPL:
		return r.runREPL(inv)
	default:
		fmt.Fprintf(r.errOut, "unknown mode %q\n", inv.Mode)
		return ExitInvalidInvocation
	}
}

func (r *Runner) runOperation(inv Invocation, cfg *config.Config) int {
	if inv.Precise {
		digits := cfg.Precise.Digits
		if inv.Precision > 0 {
			digits = uint(inv.Precision)
		}
		result, err := r.engine.EvaluatePrecise(inv.Op, inv.RawOperands, digits)
		if err != nil {
			return r.fail(err)
		}
		r.log.Debug("evaluated precise operation",
			zap.String("op", string(inv.Op)),
			zap.String("result", result))
		r.printText(result)
		return ExitSuccess
	}

	result, err := r.engine.Evaluate(inv.Op, inv.Operands)
	if err != nil {
		return r.fail(err)
	}
	r.log.Debug("evaluated operation",
		zap.String("op", string(inv.Op)),
		zap.Float64s("operands", inv.Operands),
		zap.Float64("result", result))
	r.printNumber(result, inv.Precision)
	return ExitSuccess
}

func (r *Runner) runExpression(inv Invocation) int {
	result, err := r.eval.Evaluate(inv.Expression)
	if err != nil {
		return r.fail(err)
	}
	r.log.Debug("evaluated expression",
		zap.String("expression", inv.Expression),
		zap.Float64("result", result))
	r.printNumber(result, inv.Precision)
	return ExitSuccess
}

// runREPL reads one expression per line from stdin until EOF or quit/exit.
// Evaluation errors are reported but do not end the session; the prompt goes
// to stderr so piped output stays clean.
func (r *Runner) runREPL(inv Invocation) int {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.errOut, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		result, err := r.eval.Evaluate(line)
		if err != nil {
			r.printError(err)
			continue
		}
		r.printNumber(result, inv.Precision)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(r.errOut, "read error: %v\n", err)
		return ExitEvalFailure
	}
	return ExitSuccess
}

// fail reports err and maps it to an exit code.
func (r *Runner) fail(err error) int {
	r.printError(err)
	return exitCodeFor(err)
}

func exitCodeFor(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}
	var parseErr *expr.ParseError
	if errors.As(err, &parseErr) {
		return ExitInvalidInvocation
	}
	var countErr *engine.OperandCountError
	if errors.As(err, &countErr) {
		return ExitInvalidInvocation
	}
	return ExitEvalFailure
}
