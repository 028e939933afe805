// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry defines the closed sets of benchmarked parsers and
// benchmark input files, together with their static metadata.
//
// A Registry is constructed once at startup and passed explicitly to
// every stage of the report pipeline. Tests construct substitute
// registries with NewParsers and NewInputs.
package registry

import (
	"fmt"
	"regexp"
)

// A Parser identifies one benchmarked parser. Its value is the
// parser's position in the declaration order of its Parsers set.
type Parser int

// Unknown is the Parser returned for commands that do not name any
// registered parser.
const Unknown Parser = -1

// Parsers registered by Default, in declaration order.
const (
	Yuku Parser = iota
	Oxc
	SWC
	Jam
)

// ParserInfo is the static description of a parser.
type ParserInfo struct {
	Key         string // executable name under bin/, e.g. "oxc"
	Name        string // display name
	Language    string
	Description string
	URL         string
}

// Parsers is an ordered, immutable set of parsers.
type Parsers struct {
	infos []ParserInfo
	byKey map[string]Parser
}

var keyRE = regexp.MustCompile(`^\w+$`)

// NewParsers returns a Parsers set in the order given. Keys must be
// non-empty word strings and unique.
func NewParsers(infos ...ParserInfo) (*Parsers, error) {
	ps := &Parsers{
		infos: append([]ParserInfo(nil), infos...),
		byKey: make(map[string]Parser, len(infos)),
	}
	for i, info := range ps.infos {
		if !keyRE.MatchString(info.Key) {
			return nil, fmt.Errorf("parser %d: bad key %q", i, info.Key)
		}
		if _, ok := ps.byKey[info.Key]; ok {
			return nil, fmt.Errorf("parser %d: duplicate key %q", i, info.Key)
		}
		if ps.infos[i].Name == "" {
			ps.infos[i].Name = info.Key
		}
		ps.byKey[info.Key] = Parser(i)
	}
	return ps, nil
}

// MustParsers is like NewParsers but panics on error.
func MustParsers(infos ...ParserInfo) *Parsers {
	ps, err := NewParsers(infos...)
	if err != nil {
		panic(err)
	}
	return ps
}

// Len returns the number of parsers in ps.
func (ps *Parsers) Len() int { return len(ps.infos) }

// All returns every parser in declaration order.
func (ps *Parsers) All() []Parser {
	all := make([]Parser, len(ps.infos))
	for i := range all {
		all[i] = Parser(i)
	}
	return all
}

// Lookup returns the parser with the given key, or Unknown.
func (ps *Parsers) Lookup(key string) Parser {
	if p, ok := ps.byKey[key]; ok {
		return p
	}
	return Unknown
}

// Valid reports whether p belongs to ps.
func (ps *Parsers) Valid(p Parser) bool {
	return p >= 0 && int(p) < len(ps.infos)
}

// Info returns the metadata of p. It panics if p is not in ps.
func (ps *Parsers) Info(p Parser) ParserInfo {
	if !ps.Valid(p) {
		panic(fmt.Sprintf("parser %d not registered", p))
	}
	return ps.infos[p]
}

// An Input identifies one benchmark input file.
type Input int

// Inputs registered by Default, in declaration order.
const (
	TypeScript Input = iota
	Three
	AntDesign
)

// InputInfo is the static description of a benchmark input file.
type InputInfo struct {
	Key         string // result file base name, e.g. "three" for result/three.json
	Name        string
	Description string
	Path        string // path of the input file relative to the repository root
}

// Inputs is an ordered, immutable set of benchmark inputs.
type Inputs struct {
	infos []InputInfo
}

// NewInputs returns an Inputs set in the order given.
func NewInputs(infos ...InputInfo) (*Inputs, error) {
	seen := make(map[string]bool)
	for i, info := range infos {
		if !keyRE.MatchString(info.Key) {
			return nil, fmt.Errorf("input %d: bad key %q", i, info.Key)
		}
		if seen[info.Key] {
			return nil, fmt.Errorf("input %d: duplicate key %q", i, info.Key)
		}
		if info.Path == "" {
			return nil, fmt.Errorf("input %q: empty path", info.Key)
		}
		seen[info.Key] = true
	}
	return &Inputs{infos: append([]InputInfo(nil), infos...)}, nil
}

// MustInputs is like NewInputs but panics on error.
func MustInputs(infos ...InputInfo) *Inputs {
	in, err := NewInputs(infos...)
	if err != nil {
		panic(err)
	}
	return in
}

// Len returns the number of inputs.
func (in *Inputs) Len() int { return len(in.infos) }

// All returns every input in declaration order.
func (in *Inputs) All() []Input {
	all := make([]Input, len(in.infos))
	for i := range all {
		all[i] = Input(i)
	}
	return all
}

// Info returns the metadata of i. It panics if i is not in in.
func (in *Inputs) Info(i Input) InputInfo {
	if i < 0 || int(i) >= len(in.infos) {
		panic(fmt.Sprintf("input %d not registered", i))
	}
	return in.infos[i]
}

// A Registry bundles the parser and input sets of one benchmark suite.
type Registry struct {
	Parsers *Parsers
	Inputs  *Inputs
}

// Default returns the registry of the ECMAScript native parser
// benchmark. Each call returns a fresh value.
func Default() *Registry {
	return &Registry{
		Parsers: MustParsers(
			ParserInfo{
				Key:         "yuku",
				Name:        "Yuku",
				Language:    "Zig",
				Description: "A high-performance & spec-compliant JavaScript/TypeScript compiler written in Zig.",
				URL:         "https://github.com/arshad-yaseen/yuku",
			},
			ParserInfo{
				Key:         "oxc",
				Name:        "Oxc",
				Language:    "Rust",
				Description: "A high-performance JavaScript and TypeScript parser written in Rust.",
				URL:         "https://github.com/oxc-project/oxc",
			},
			ParserInfo{
				Key:         "swc",
				Name:        "SWC",
				Language:    "Rust",
				Description: "An extensible Rust-based platform for compiling and bundling JavaScript and TypeScript.",
				URL:         "https://github.com/swc-project/swc",
			},
			ParserInfo{
				Key:         "jam",
				Name:        "Jam",
				Language:    "Zig",
				Description: "A JavaScript toolchain written in Zig featuring a parser, linter, formatter, printer, and vulnerability scanner.",
				URL:         "https://github.com/srijan-paul/jam",
			},
		),
		Inputs: MustInputs(
			InputInfo{
				Key:         "typescript",
				Name:        "TypeScript",
				Description: "The TypeScript compiler source code bundled into a single file.",
				Path:        "files/typescript.js",
			},
			InputInfo{
				Key:         "three",
				Name:        "Three.js",
				Description: "A popular 3D graphics library for the web.",
				Path:        "files/three.js",
			},
			InputInfo{
				Key:         "antd",
				Name:        "Ant Design",
				Description: "A popular React UI component library with enterprise-class design.",
				Path:        "files/antd.js",
			},
		),
	}
}
