package cli

import "context"

// Dispatch resolves args[0] to a command (unrecognized names fall back to
// help), parses the remaining tokens against that command's option schema,
// validates the result when the command declares rules, and invokes the
// handler. A validation failure aborts before the handler runs.
func (r *Registry) Dispatch(ctx context.Context, args []string) error {
	name := "help"
	var tokens []string
	if len(args) > 0 {
		name = args[0]
		tokens = args[1:]
	}

	spec := r.Lookup(name)
	inv := Parse(tokens, spec.Options)

	if len(spec.Rules) > 0 {
		if err := Validate(inv, spec.Rules); err != nil {
			return err
		}
	}

	return spec.Run(ctx, inv)
}
