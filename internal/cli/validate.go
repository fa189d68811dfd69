package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// violationFormat renders one violation per line so the user sees every
// problem with an invocation in a single pass.
func violationFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return fmt.Sprintf("invalid arguments:\n%s", strings.Join(lines, "\n"))
}

// Validate checks a parsed invocation against a command's rules. Every rule
// is evaluated independently, with no short-circuit, so one run reports all
// simultaneous violations. A nil return passes the invocation through
// unchanged to the handler.
func Validate(inv *Invocation, rules []Rule) error {
	var result *multierror.Error

	for _, rule := range rules {
		value, present := inv.Options[rule.Field]

		switch rule.Kind {
		case RuleRequired:
			if !present {
				result = multierror.Append(result,
					fmt.Errorf("  --%s is required", rule.Field))
				continue
			}
		case RuleOneOf:
			if present {
				s, _ := value.(string)
				if !contains(rule.Allowed, s) {
					result = multierror.Append(result,
						fmt.Errorf("  --%s must be one of: %s (got %q)",
							rule.Field, strings.Join(rule.Allowed, ", "), s))
				}
			}
		case RuleOptional:
			// Presence not required; type checked below.
		}

		// The parser defers malformed numeric input here as NaN.
		if f, isNumber := value.(float64); isNumber && math.IsNaN(f) {
			result = multierror.Append(result,
				fmt.Errorf("  --%s must be a number", rule.Field))
		}
	}

	if result != nil {
		result.ErrorFormat = violationFormat
	}
	return result.ErrorOrNil()
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
