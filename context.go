package args

import (
	"fmt"
	"io"
	"log/slog"
)

// Context carries the collaborators used while parsing. The zero value is
// usable and behaves like DefaultContext.
type Context struct {
	Logger *slog.Logger
}

// DefaultContext discards all log output.
var DefaultContext = Context{
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
}

func (ctx Context) logger() *slog.Logger {
	if ctx.Logger == nil {
		return DefaultContext.Logger
	}
	return ctx.Logger
}

// Parse compiles schema and scans arguments against it. On failure it
// returns a nil *Args and an *Error; no partially parsed result is ever
// returned.
func (ctx Context) Parse(schema string, arguments []string) (*Args, error) {
	logger := ctx.logger()

	reg, err := compileSchema(schema, logger)
	if err != nil {
		logFailure(logger, "schema compilation failed", err)
		return nil, err
	}

	s := newScanner(reg, arguments, logger)
	if err := s.scan(); err != nil {
		logFailure(logger, "argument scan failed", err)
		return nil, err
	}

	return &Args{
		marshalers: reg,
		found:      s.found,
		arguments:  append([]string(nil), arguments...),
		extraIndex: s.cursor,
	}, nil
}

// MustParse is like Parse, but panics on error. It is intended for schemas
// and argument vectors that are fixed at compile time, such as in tests.
func (ctx Context) MustParse(schema string, arguments []string) *Args {
	a, err := ctx.Parse(schema, arguments)
	if err != nil {
		panic(fmt.Sprintf("args: %s", err))
	}
	return a
}

func logFailure(logger *slog.Logger, msg string, err error) {
	attrs := []any{"err", err}
	if argsErr, ok := AsError(err); ok {
		attrs = append(attrs, "code", argsErr.Code)
		if argsErr.ArgumentID != 0 {
			attrs = append(attrs, "id", string(argsErr.ArgumentID))
		}
	}
	logger.Debug(msg, attrs...)
}
