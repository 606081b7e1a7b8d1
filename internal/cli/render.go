package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// envelope is the machine-readable result format for -json mode.
type envelope struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// printNumber renders a float64 result.
func (r *Runner) printNumber(x float64, precision int) {
	if r.jsonMode {
		r.printJSON(envelope{Result: x})
		return
	}
	fmt.Fprintln(r.out, formatNumber(x, precision))
}

// printText renders an already-formatted result, e.g. a precise-mode decimal.
func (r *Runner) printText(s string) {
	if r.jsonMode {
		r.printJSON(envelope{Result: s})
		return
	}
	fmt.Fprintln(r.out, s)
}

// printError renders an error. In JSON mode the envelope goes to stdout so
// consumers see exactly one document per evaluation; the message is repeated
// on stderr either way.
func (r *Runner) printError(err error) {
	if r.jsonMode {
		r.printJSON(envelope{Error: err.Error()})
	}
	fmt.Fprintf(r.errOut, "calc: %v\n", err)
}

func (r *Runner) printJSON(env envelope) {
	data, err := sonic.Marshal(env)
	if err != nil {
		fmt.Fprintf(r.errOut, "calc: failed to encode result: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, string(data))
}

// formatNumber renders x with the requested number of decimal places,
// trimming trailing fraction zeros. precision < 0 means the shortest
// rendering that round-trips.
func formatNumber(x float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
