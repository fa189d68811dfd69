package cli

import (
	"math"
	"strconv"
	"strings"
)

// Invocation is the structured form of a raw argument vector: positional
// tokens in input order plus coerced named options.
type Invocation struct {
	Positional []string
	Options    map[string]any
}

// Has reports whether the named option is present.
func (inv *Invocation) Has(name string) bool {
	_, ok := inv.Options[name]
	return ok
}

// String returns the named option as a string, or "" when absent.
func (inv *Invocation) String(name string) string {
	s, _ := inv.Options[name].(string)
	return s
}

// Number returns the named option as a float64, or 0 when absent.
func (inv *Invocation) Number(name string) float64 {
	f, _ := inv.Options[name].(float64)
	return f
}

// Parse converts raw tokens into an Invocation using the given option
// declarations. It never fails:
//
//   - tokens not matching --name syntax are collected, in order, as
//     positional arguments;
//   - --name=value and --name value are both accepted for declared string
//     and number flags; declared bool flags are set true by presence and
//     never consume a following token;
//   - a number flag whose value does not parse is stored as NaN for the
//     validator to reject;
//   - declared flags absent from the input receive their default, if any;
//   - undeclared flags are passed through verbatim as strings; a bare
//     undeclared flag stores "" and never consumes the following token.
func Parse(tokens []string, decls []OptionDecl) *Invocation {
	byName := make(map[string]OptionDecl, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
	}

	inv := &Invocation{Options: make(map[string]any)}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") || len(tok) == 2 {
			inv.Positional = append(inv.Positional, tok)
			continue
		}

		name, inline, hasInline := strings.Cut(tok[2:], "=")
		decl, declared := byName[name]

		if declared && decl.Type == TypeBool {
			inv.Options[name] = true
			continue
		}

		value := inline
		if !hasInline {
			if declared && i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
				i++
				value = tokens[i]
			}
		}

		if !declared {
			inv.Options[name] = value
			continue
		}

		switch decl.Type {
		case TypeNumber:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				f = math.NaN()
			}
			inv.Options[name] = f
		default:
			inv.Options[name] = value
		}
	}

	for _, d := range decls {
		if d.HasDefault {
			if _, ok := inv.Options[d.Name]; !ok {
				inv.Options[d.Name] = d.Default
			}
		}
	}

	return inv
}
