package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/isobit/args"
)

type Options struct {
	Level slog.Level
	JSON  bool
}

// FromArgs reads logging options from parsed arguments. levelID must name a
// string flag holding a level such as "debug" or "warn"; jsonID must name a
// boolean flag. Either may be 0 to skip it.
func FromArgs(a *args.Args, levelID, jsonID rune) (Options, error) {
	opts := Options{Level: slog.LevelInfo}

	if levelID != 0 {
		level, err := a.GetStringOrDefault(levelID, "")
		if err != nil {
			return opts, err
		}
		if level != "" {
			if err := opts.Level.UnmarshalText([]byte(level)); err != nil {
				return opts, err
			}
		}
	}

	if jsonID != 0 {
		json, err := a.GetBool(jsonID)
		if err != nil {
			return opts, err
		}
		opts.JSON = json
	}

	return opts, nil
}

func (opts Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) *slog.Logger {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.Level

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func (opts Options) Configure() *slog.Logger {
	return opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
