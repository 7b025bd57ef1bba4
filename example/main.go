package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/isobit/args"
	argslog "github.com/isobit/args/slog"
)

const schema = "l,p#,d*,r##,n[*],v*,j"

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %s\n", err)
		if argsErr, ok := errors.Cause(err).(*args.Error); ok {
			fmt.Fprintf(os.Stderr, "(%s)\n", argsErr.Code)
		}
		os.Exit(2)
	}
}

func run(arguments []string) error {
	a, err := args.Parse(schema, arguments)
	if err != nil {
		return errors.Wrap(err, "parse arguments")
	}

	logOpts, err := argslog.FromArgs(a, 'v', 'j')
	if err != nil {
		return errors.Wrap(err, "configure logging")
	}
	logger := logOpts.Configure()

	// Reparse with the configured logger so scanning is traced at debug level.
	a, err = args.Context{Logger: logger}.Parse(schema, arguments)
	if err != nil {
		return errors.Wrap(err, "parse arguments")
	}

	logging, err := a.GetBool('l')
	if err != nil {
		return err
	}
	port, err := a.GetIntOrDefault('p', 8080)
	if err != nil {
		return err
	}
	directory, err := a.GetStringOrDefault('d', ".")
	if err != nil {
		return err
	}
	ratio, err := a.GetFloat64OrDefault('r', 1.0)
	if err != nil {
		return err
	}
	names, err := a.GetStringList('n')
	if err != nil {
		return err
	}

	fmt.Printf("logging:   %t\n", logging)
	fmt.Printf("port:      %d\n", port)
	fmt.Printf("directory: %s\n", directory)
	fmt.Printf("ratio:     %g\n", ratio)
	fmt.Printf("names:     %v\n", names)
	fmt.Printf("extra:     %v\n", a.ExtraArguments())
	return nil
}
