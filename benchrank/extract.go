// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"fmt"
	"regexp"

	"github.com/arshad-yaseen/parserbench/registry"
)

// An Extractor maps a benchmarked command line to the parser it runs.
// Extract must return registry.Unknown for any command it cannot
// attribute, and must not panic.
type Extractor interface {
	Extract(command string) registry.Parser
}

// ExtractorFunc adapts an ordinary function to the Extractor interface.
type ExtractorFunc func(command string) registry.Parser

// Extract returns f(command).
func (f ExtractorFunc) Extract(command string) registry.Parser {
	return f(command)
}

// DefaultPattern matches parser executables invoked as ./bin/<key>.
const DefaultPattern = `\./bin/(\w+)`

// A CommandPattern extracts a parser key from a command with a
// regular expression and looks it up in a parser set.
type CommandPattern struct {
	re      *regexp.Regexp
	parsers *registry.Parsers
}

// NewCommandPattern returns an Extractor using pattern, whose first
// submatch must capture the parser key.
func NewCommandPattern(pattern string, parsers *registry.Parsers) (*CommandPattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group", pattern)
	}
	return &CommandPattern{re, parsers}, nil
}

// BinExtractor returns the extractor for DefaultPattern.
func BinExtractor(parsers *registry.Parsers) *CommandPattern {
	cp, err := NewCommandPattern(DefaultPattern, parsers)
	if err != nil {
		panic(err)
	}
	return cp
}

// Extract implements Extractor. Only the first match in command is
// considered.
func (cp *CommandPattern) Extract(command string) registry.Parser {
	m := cp.re.FindStringSubmatch(command)
	if m == nil || m[1] == "" {
		return registry.Unknown
	}
	return cp.parsers.Lookup(m[1])
}
