package args

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// registry maps each flag letter declared in the schema to the marshaler
// that owns its value.
type registry map[rune]marshaler

var suffixKinds = map[string]Kind{
	Bool.Suffix():       Bool,
	String.Suffix():     String,
	Int.Suffix():        Int,
	Float64.Suffix():    Float64,
	StringList.Suffix(): StringList,
}

// compileSchema builds the registry for a comma separated schema such as
// "l,p#,d*". Blank elements are skipped. A letter declared twice keeps the
// last declaration.
func compileSchema(schema string, logger *slog.Logger) (registry, error) {
	reg := registry{}
	for _, element := range strings.Split(schema, ",") {
		element = strings.TrimSpace(element)
		if len(element) == 0 {
			continue
		}
		id, kind, err := parseSchemaElement(element)
		if err != nil {
			return nil, err
		}
		reg[id] = newMarshaler(kind)
		logger.Debug("registered flag", "id", string(id), "kind", kind)
	}
	return reg, nil
}

func parseSchemaElement(element string) (rune, Kind, error) {
	id, size := utf8.DecodeRuneInString(element)
	if !unicode.IsLetter(id) {
		return id, 0, newError(InvalidArgumentName, id, "")
	}
	tail := element[size:]
	kind, ok := suffixKinds[tail]
	if !ok {
		return id, 0, newError(InvalidArgumentFormat, id, tail)
	}
	return id, kind, nil
}
