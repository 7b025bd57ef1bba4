package args

// Args is the result of a successful Parse. It is never modified after
// construction and is safe for concurrent use.
type Args struct {
	marshalers registry
	found      map[rune]struct{}
	arguments  []string
	extraIndex int
}

// Parse is a convenience function for calling DefaultContext.Parse.
func Parse(schema string, arguments []string) (*Args, error) {
	return DefaultContext.Parse(schema, arguments)
}

// MustParse is a convenience function for calling DefaultContext.MustParse.
func MustParse(schema string, arguments []string) *Args {
	return DefaultContext.MustParse(schema, arguments)
}

// Found reports whether the flag appeared in the argument vector.
func (a *Args) Found(id rune) (bool, error) {
	if _, ok := a.marshalers[id]; !ok {
		return false, newError(UnknownArgumentName, id, "")
	}
	_, ok := a.found[id]
	return ok, nil
}

// Kind returns the kind the schema declared for the flag.
func (a *Args) Kind(id rune) (Kind, error) {
	m, ok := a.marshalers[id]
	if !ok {
		return 0, newError(UnknownArgumentName, id, "")
	}
	return m.kind(), nil
}

// ExtraArgumentsIndex returns the index in the original argument vector of
// the first argument that was not consumed as a flag or flag value. It is
// the length of the vector when every argument was consumed.
func (a *Args) ExtraArgumentsIndex() int {
	return a.extraIndex
}

// ExtraArguments returns the arguments from ExtraArgumentsIndex onward.
func (a *Args) ExtraArguments() []string {
	extra := a.arguments[a.extraIndex:]
	return append(make([]string, 0, len(extra)), extra...)
}

func (a *Args) marshaler(id rune, k Kind) (marshaler, error) {
	m, ok := a.marshalers[id]
	if !ok {
		return nil, newError(UnknownArgumentName, id, "")
	}
	if m.kind() != k {
		return nil, newError(WrongArgumentType, id, k.String())
	}
	return m, nil
}

func (a *Args) isFound(id rune) bool {
	_, ok := a.found[id]
	return ok
}

func (a *Args) GetBool(id rune) (bool, error) {
	m, err := a.marshaler(id, Bool)
	if err != nil {
		return false, err
	}
	return m.(*boolMarshaler).value, nil
}

func (a *Args) GetBoolOrDefault(id rune, fallback bool) (bool, error) {
	v, err := a.GetBool(id)
	if err != nil {
		return false, err
	}
	if !a.isFound(id) {
		return fallback, nil
	}
	return v, nil
}

func (a *Args) GetString(id rune) (string, error) {
	m, err := a.marshaler(id, String)
	if err != nil {
		return "", err
	}
	return m.(*stringMarshaler).value, nil
}

func (a *Args) GetStringOrDefault(id rune, fallback string) (string, error) {
	v, err := a.GetString(id)
	if err != nil {
		return "", err
	}
	if !a.isFound(id) {
		return fallback, nil
	}
	return v, nil
}

func (a *Args) GetInt(id rune) (int, error) {
	m, err := a.marshaler(id, Int)
	if err != nil {
		return 0, err
	}
	return m.(*intMarshaler).value, nil
}

func (a *Args) GetIntOrDefault(id rune, fallback int) (int, error) {
	v, err := a.GetInt(id)
	if err != nil {
		return 0, err
	}
	if !a.isFound(id) {
		return fallback, nil
	}
	return v, nil
}

func (a *Args) GetFloat64(id rune) (float64, error) {
	m, err := a.marshaler(id, Float64)
	if err != nil {
		return 0, err
	}
	return m.(*float64Marshaler).value, nil
}

func (a *Args) GetFloat64OrDefault(id rune, fallback float64) (float64, error) {
	v, err := a.GetFloat64(id)
	if err != nil {
		return 0, err
	}
	if !a.isFound(id) {
		return fallback, nil
	}
	return v, nil
}

// GetStringList returns a copy of the values collected for a list flag, in
// the order they appeared. It is empty, not nil, when the flag was absent.
func (a *Args) GetStringList(id rune) ([]string, error) {
	m, err := a.marshaler(id, StringList)
	if err != nil {
		return nil, err
	}
	values := m.(*stringListMarshaler).values
	return append(make([]string, 0, len(values)), values...), nil
}

func (a *Args) GetStringListOrDefault(id rune, fallback []string) ([]string, error) {
	v, err := a.GetStringList(id)
	if err != nil {
		return nil, err
	}
	if !a.isFound(id) {
		return fallback, nil
	}
	return v, nil
}
