/*
Package args parses command line arguments against a compact schema string.

A schema is a comma separated list of single letter flags, each followed by
a type marker:

	x     boolean
	x*    string
	x#    integer
	x##   double (float64)
	x[*]  string list, one value per occurrence

Example

	package main

	import (
		"fmt"
		"os"

		"github.com/isobit/args"
	)

	func main() {
		a, err := args.Parse("l,p#,d*", os.Args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			os.Exit(2)
		}
		logging, _ := a.GetBool('l')
		port, _ := a.GetIntOrDefault('p', 8080)
		directory, _ := a.GetString('d')
		fmt.Println(logging, port, directory, a.ExtraArguments())
	}

Usage:

	$ server -lp 9000 -d /srv file1 file2
	true 9000 /srv [file1 file2]

Flags may be clustered ("-lp"). A flag that takes a value always reads the
next whole argument, so in a cluster only the value flags' order matters.
Scanning stops at the first argument that does not start with '-'; it and
everything after it are extra arguments.

Every failure is an *Error carrying an ErrorCode, the offending flag letter
and, where relevant, the offending text. Use errors.Is with the Err*
sentinels, or AsError, to inspect it.
*/
package args
