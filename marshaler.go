package args

import (
	"strconv"

	"github.com/huandu/xstrings"
)

// Kind is the value type declared for a flag in the schema.
type Kind int

const (
	Bool Kind = iota
	String
	Int
	Float64
	StringList
)

var kindNames = map[Kind]string{
	Bool:       "Bool",
	String:     "String",
	Int:        "Int",
	Float64:    "Float",
	StringList: "StringList",
}

var kindSuffixes = map[Kind]string{
	Bool:       "",
	String:     "*",
	Int:        "#",
	Float64:    "##",
	StringList: "[*]",
}

// String returns the kebab-case name of the kind, e.g. "string-list".
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return xstrings.ToKebabCase(name)
}

// Suffix returns the schema type marker for the kind.
func (k Kind) Suffix() string {
	return kindSuffixes[k]
}

// marshalers

// A marshaler consumes the value for one flag occurrence. args is the whole
// argument vector and cursor indexes the next unconsumed token; set returns
// the cursor advanced past whatever it consumed.
type marshaler interface {
	set(args []string, cursor int) (int, error)
	kind() Kind
}

func newMarshaler(k Kind) marshaler {
	switch k {
	case Bool:
		return &boolMarshaler{}
	case String:
		return &stringMarshaler{}
	case Int:
		return &intMarshaler{}
	case Float64:
		return &float64Marshaler{}
	case StringList:
		return &stringListMarshaler{}
	default:
		return nil
	}
}

// next returns the token under the cursor, if any.
func next(args []string, cursor int) (string, bool) {
	if cursor < 0 || cursor >= len(args) {
		return "", false
	}
	return args[cursor], true
}

// bool

type boolMarshaler struct {
	value bool
}

func (m *boolMarshaler) set(args []string, cursor int) (int, error) {
	m.value = true
	return cursor, nil
}

func (m *boolMarshaler) kind() Kind { return Bool }

// string

type stringMarshaler struct {
	value string
}

func (m *stringMarshaler) set(args []string, cursor int) (int, error) {
	s, ok := next(args, cursor)
	if !ok {
		return cursor, newError(MissingString, 0, "")
	}
	m.value = s
	return cursor + 1, nil
}

func (m *stringMarshaler) kind() Kind { return String }

// int

type intMarshaler struct {
	value int
}

func (m *intMarshaler) set(args []string, cursor int) (int, error) {
	s, ok := next(args, cursor)
	if !ok {
		return cursor, newError(MissingInteger, 0, "")
	}
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		e := newError(InvalidInteger, 0, s)
		e.cause = err
		return cursor, e
	}
	m.value = int(v)
	return cursor + 1, nil
}

func (m *intMarshaler) kind() Kind { return Int }

// float64

type float64Marshaler struct {
	value float64
}

func (m *float64Marshaler) set(args []string, cursor int) (int, error) {
	s, ok := next(args, cursor)
	if !ok {
		return cursor, newError(MissingDouble, 0, "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		e := newError(InvalidDouble, 0, s)
		e.cause = err
		return cursor, e
	}
	m.value = v
	return cursor + 1, nil
}

func (m *float64Marshaler) kind() Kind { return Float64 }

// string list

type stringListMarshaler struct {
	values []string
}

// set appends, so repeated occurrences of the flag accumulate.
func (m *stringListMarshaler) set(args []string, cursor int) (int, error) {
	s, ok := next(args, cursor)
	if !ok {
		return cursor, newError(MissingString, 0, "")
	}
	m.values = append(m.values, s)
	return cursor + 1, nil
}

func (m *stringListMarshaler) kind() Kind { return StringList }
