package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calclab/calc/internal/config"
	"github.com/calclab/calc/internal/logging"
)

// run parses args, applies default config and executes, capturing output.
func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	inv, err := ParseInvocation(args)
	require.NoError(t, err)
	cfg := config.Default()
	inv.ApplyConfig(cfg)

	var out, errOut bytes.Buffer
	r := NewRunner(&out, &errOut, strings.NewReader(stdin), logging.NewNop())
	return r.Run(inv, cfg), out.String(), errOut.String()
}

func TestRunOperation(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		code, stdout, _ := run(t, "", "add", "2", "3")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "5\n", stdout)
	})

	t.Run("Divide", func(t *testing.T) {
		code, stdout, _ := run(t, "", "divide", "10", "2")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "5\n", stdout)
	})

	t.Run("Divide by zero exits non-zero", func(t *testing.T) {
		code, stdout, stderr := run(t, "", "divide", "1", "0")
		assert.Equal(t, ExitEvalFailure, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "division by zero")
	})

	t.Run("Wrong operand count is an invocation error", func(t *testing.T) {
		code, _, stderr := run(t, "", "divide", "1")
		assert.Equal(t, ExitInvalidInvocation, code)
		assert.Contains(t, stderr, "divide")
	})

	t.Run("Precision flag rounds output", func(t *testing.T) {
		code, stdout, _ := run(t, "", "-precision", "4", "divide", "1", "3")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "0.3333\n", stdout)
	})

	t.Run("Precise mode", func(t *testing.T) {
		code, stdout, _ := run(t, "", "-precise", "add", "0.1", "0.2")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "0.3\n", stdout)
	})
}

func TestRunExpression(t *testing.T) {
	t.Run("Eval", func(t *testing.T) {
		code, stdout, _ := run(t, "", "eval", "(2*3)+5")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "11\n", stdout)
	})

	t.Run("Bare expression", func(t *testing.T) {
		code, stdout, _ := run(t, "", "2+2")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "4\n", stdout)
	})

	t.Run("Malformed expression", func(t *testing.T) {
		code, _, stderr := run(t, "", "eval", "2 +")
		assert.Equal(t, ExitInvalidInvocation, code)
		assert.Contains(t, stderr, "invalid expression")
	})

	t.Run("Division by zero in expression", func(t *testing.T) {
		code, _, stderr := run(t, "", "eval", "1/0")
		assert.Equal(t, ExitEvalFailure, code)
		assert.Contains(t, stderr, "division by zero")
	})
}

func TestRunJSON(t *testing.T) {
	t.Run("Result envelope", func(t *testing.T) {
		code, stdout, _ := run(t, "", "-json", "add", "2", "3")
		assert.Equal(t, ExitSuccess, code)

		var env struct {
			Result float64 `json:"result"`
			Error  string  `json:"error"`
		}
		require.NoError(t, sonic.Unmarshal([]byte(stdout), &env))
		assert.Equal(t, 5.0, env.Result)
		assert.Empty(t, env.Error)
	})

	t.Run("Error envelope", func(t *testing.T) {
		code, stdout, _ := run(t, "", "-json", "divide", "1", "0")
		assert.Equal(t, ExitEvalFailure, code)

		var env struct {
			Error string `json:"error"`
		}
		require.NoError(t, sonic.Unmarshal([]byte(stdout), &env))
		assert.Contains(t, env.Error, "division by zero")
	})
}

func TestRunREPL(t *testing.T) {
	t.Run("Evaluates lines until quit", func(t *testing.T) {
		code, stdout, _ := run(t, "2+2\nsqrt(16)\nquit\n")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "4\n4\n", stdout)
	})

	t.Run("Errors do not end the session", func(t *testing.T) {
		code, stdout, stderr := run(t, "1/0\n3*3\n")
		assert.Equal(t, ExitSuccess, code)
		assert.Contains(t, stderr, "division by zero")
		assert.Equal(t, "9\n", stdout)
	})

	t.Run("Blank lines are skipped", func(t *testing.T) {
		code, stdout, _ := run(t, "\n\n1+1\nexit\n")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "2\n", stdout)
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", formatNumber(5, -1))
	assert.Equal(t, "0.5", formatNumber(0.5, -1))
	assert.Equal(t, "0.33", formatNumber(1.0/3.0, 2))
	assert.Equal(t, "2", formatNumber(2.0000, 4))
	assert.Equal(t, "0", formatNumber(-0.00001, 2))
}
