package args

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (Context, *bytes.Buffer) {
	b := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return Context{Logger: logger}, b
}

func TestContextLogsScan(t *testing.T) {
	ctx, b := newTestContext()

	a, err := ctx.Parse("x,y#", []string{"-x", "-y", "42", "rest"})
	require.NoError(t, err)
	assert.Equal(t, 3, a.ExtraArgumentsIndex())

	out := b.String()
	assert.Contains(t, out, `msg="registered flag" id=x kind=bool`)
	assert.Contains(t, out, `msg="registered flag" id=y kind=int`)
	assert.Contains(t, out, `msg="consumed flag" id=y kind=int cursor=3`)
	assert.Contains(t, out, `msg="scan finished" extraArgumentsIndex=3`)
}

func TestContextLogsFailure(t *testing.T) {
	ctx, b := newTestContext()

	a, err := ctx.Parse("x#", []string{"-x", "nope"})
	assert.Nil(t, a)
	require.Error(t, err)

	out := b.String()
	assert.Contains(t, out, `msg="argument scan failed"`)
	assert.Contains(t, out, `code=invalid_integer`)
	assert.Contains(t, out, `id=x`)

	b.Reset()
	_, err = ctx.Parse("1", nil)
	require.Error(t, err)
	assert.Contains(t, b.String(), `msg="schema compilation failed"`)
	assert.Contains(t, b.String(), `code=invalid_argument_name`)
}

func TestZeroContext(t *testing.T) {
	a, err := Context{}.Parse("x*", []string{"-x", "v"})
	require.NoError(t, err)
	v, err := a.GetString('x')
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}
