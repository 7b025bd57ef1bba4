/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package args

import (
	"log/slog"
	"strings"
)

type scanner struct {
	registry registry
	found    map[rune]struct{}
	args     []string
	cursor   int
	logger   *slog.Logger
}

func newScanner(reg registry, arguments []string, logger *slog.Logger) *scanner {
	return &scanner{
		registry: reg,
		found:    map[rune]struct{}{},
		args:     arguments,
		logger:   logger,
	}
}

// scan consumes flag tokens from the front of the argument vector until it
// reaches the end or a token that does not start with '-'. Afterwards
// s.cursor is the index of the first extra argument.
func (s *scanner) scan() error {
	for {
		seen, err := s.scanOne()
		if err != nil {
			return err
		}
		if !seen {
			break
		}
	}
	s.logger.Debug("scan finished", "extraArgumentsIndex", s.cursor)
	return nil
}

func (s *scanner) scanOne() (bool, error) {
	if s.cursor >= len(s.args) {
		return false, nil
	}
	arg := s.args[s.cursor]
	if !strings.HasPrefix(arg, "-") {
		return false, nil
	}
	s.cursor++

	// Every character after the dash is a flag of its own. Flags that take a
	// value read it from the next whole token, never from the rest of the
	// cluster, so "-xy a b" with two value flags gives x "a" and y "b".
	for _, id := range arg[1:] {
		if err := s.scanFlag(id); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *scanner) scanFlag(id rune) error {
	m, ok := s.registry[id]
	if !ok {
		return newError(UnexpectedArgument, id, "")
	}
	s.found[id] = struct{}{}

	cursor, err := m.set(s.args, s.cursor)
	if err != nil {
		if argsErr, ok := err.(*Error); ok {
			argsErr.ArgumentID = id
		}
		return err
	}
	s.logger.Debug("consumed flag", "id", string(id), "kind", m.kind(), "cursor", cursor)
	s.cursor = cursor
	return nil
}
