package keyboard

import "strings"

// Context is the set of key/value facts available when a when-clause is
// evaluated. Providers contribute booleans (and occasionally strings) such
// as "editorFocus" or "terminalFocus" at each dispatch.
type Context map[string]any

// truthy reports false for false, nil and ""; every other value,
// including numeric zero, is true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	default:
		return true
	}
}

// ContextProvider contributes keys to the dispatch context. Multiple
// providers are merged in registration order, later providers overriding
// earlier ones on key collision.
type ContextProvider func() Context

// EvalWhen evaluates a when-expression against ctx. An empty expression
// always evaluates true. Supported grammar: bare identifier (truthy lookup),
// "a && b", "a || b", "!a", and "a == \"literal\"". "&&" binds tighter than
// "||"; there is no further expression nesting.
func EvalWhen(expr string, ctx Context) bool {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return true
	}

	if orParts := splitTop(expr, "||"); len(orParts) > 1 {
		for _, part := range orParts {
			if EvalWhen(part, ctx) {
				return true
			}
		}
		return false
	}

	if andParts := splitTop(expr, "&&"); len(andParts) > 1 {
		for _, part := range andParts {
			if !EvalWhen(part, ctx) {
				return false
			}
		}
		return true
	}

	return evalAtom(expr, ctx)
}

func splitTop(expr, sep string) []string {
	raw := strings.Split(expr, sep)
	parts := make([]string, len(raw))
	for i, p := range raw {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func evalAtom(atom string, ctx Context) bool {
	atom = strings.TrimSpace(atom)
	if strings.HasPrefix(atom, "!") {
		return !evalAtom(strings.TrimSpace(atom[1:]), ctx)
	}

	if idx := strings.Index(atom, "=="); idx >= 0 {
		left := strings.TrimSpace(atom[:idx])
		right := strings.TrimSpace(atom[idx+2:])
		right = strings.Trim(right, `"`)
		val, _ := ctx[left].(string)
		return val == right
	}

	return truthy(ctx[atom])
}

// MergeContexts combines providers in order, later ones winning on key
// collision, into a single Context snapshot.
func MergeContexts(providers ...ContextProvider) Context {
	merged := Context{}
	for _, p := range providers {
		if p == nil {
			continue
		}
		for k, v := range p() {
			merged[k] = v
		}
	}
	return merged
}
