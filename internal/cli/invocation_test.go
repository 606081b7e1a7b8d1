package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calclab/calc/internal/config"
	"github.com/calclab/calc/internal/engine"
)

func TestParseInvocation(t *testing.T) {
	t.Run("Operation form", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"add", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, ModeOperation, inv.Mode)
		assert.Equal(t, engine.OpAdd, inv.Op)
		assert.Equal(t, []float64{2, 3}, inv.Operands)
		assert.Equal(t, []string{"2", "3"}, inv.RawOperands)
	})

	t.Run("Eval form", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"eval", "(2*3)+5"})
		require.NoError(t, err)
		assert.Equal(t, ModeExpression, inv.Mode)
		assert.Equal(t, "(2*3)+5", inv.Expression)
	})

	t.Run("Eval joins arguments", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"eval", "2", "+", "3"})
		require.NoError(t, err)
		assert.Equal(t, "2 + 3", inv.Expression)
	})

	t.Run("Bare expression", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"2+2"})
		require.NoError(t, err)
		assert.Equal(t, ModeExpression, inv.Mode)
		assert.Equal(t, "2+2", inv.Expression)
	})

	t.Run("No arguments means REPL", func(t *testing.T) {
		inv, err := ParseInvocation(nil)
		require.NoError(t, err)
		assert.Equal(t, ModeREPL, inv.Mode)
	})

	t.Run("Flags", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"-json", "-precision", "4", "divide", "10", "3"})
		require.NoError(t, err)
		assert.True(t, inv.JSON)
		assert.Equal(t, 4, inv.Precision)
		assert.Equal(t, engine.OpDivide, inv.Op)
	})

	t.Run("Bad operand", func(t *testing.T) {
		_, err := ParseInvocation([]string{"add", "2", "banana"})
		var invErr *InvocationError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
	})

	t.Run("Unknown operation with operands", func(t *testing.T) {
		_, err := ParseInvocation([]string{"cube", "2", "3"})
		var invErr *InvocationError
		require.ErrorAs(t, err, &invErr)
	})

	t.Run("Unknown flag", func(t *testing.T) {
		_, err := ParseInvocation([]string{"-frobnicate"})
		var invErr *InvocationError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
	})

	t.Run("Help", func(t *testing.T) {
		_, err := ParseInvocation([]string{"-h"})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})

	t.Run("Eval without expression", func(t *testing.T) {
		_, err := ParseInvocation([]string{"eval"})
		var invErr *InvocationError
		require.ErrorAs(t, err, &invErr)
	})

	t.Run("Precise requires basic operation", func(t *testing.T) {
		_, err := ParseInvocation([]string{"-precise", "sqrt", "2"})
		var invErr *InvocationError
		require.ErrorAs(t, err, &invErr)

		_, err = ParseInvocation([]string{"-precise", "eval", "1+1"})
		require.ErrorAs(t, err, &invErr)

		inv, err := ParseInvocation([]string{"-precise", "add", "0.1", "0.2"})
		require.NoError(t, err)
		assert.True(t, inv.Precise)
	})
}

func TestApplyConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.JSON = true
	cfg.Output.Precision = 6
	cfg.Logging.Level = "debug"

	t.Run("Config fills unset flags", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"add", "1", "2"})
		require.NoError(t, err)
		inv.ApplyConfig(cfg)
		assert.True(t, inv.JSON)
		assert.Equal(t, 6, inv.Precision)
		assert.Equal(t, "debug", inv.LogLevel)
	})

	t.Run("Explicit flags win", func(t *testing.T) {
		inv, err := ParseInvocation([]string{"-json=false", "-precision", "2", "add", "1", "2"})
		require.NoError(t, err)
		inv.ApplyConfig(cfg)
		assert.False(t, inv.JSON)
		assert.Equal(t, 2, inv.Precision)
	})
}

func TestUsageListsOperations(t *testing.T) {
	usage := Usage()
	for _, s := range engine.Specs() {
		assert.Contains(t, usage, string(s.Op))
	}
}
