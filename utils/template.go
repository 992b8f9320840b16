package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRegex matches {{name}} tokens with ASCII identifier characters.
// There is no escaping mechanism for a literal "{{".
var placeholderRegex = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// RenderTemplate substitutes {{name}} placeholders in a template string.
// Every occurrence of each supplied variable is replaced; placeholders with
// no supplied value survive verbatim in the output. Keys are replaced as
// whole tokens so the result is order-independent.
func RenderTemplate(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Placeholders returns the distinct placeholder names referenced in a
// template string, in order of first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderRegex.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// UnresolvedPlaceholders returns the placeholders in a template that are
// not members of the declared variable set. Templates with unresolved
// placeholders are rejected at save time so missing variables never leak
// into sent mail as literal text.
func UnresolvedPlaceholders(template string, declared []string) []string {
	allowed := make(map[string]bool, len(declared))
	for _, name := range declared {
		allowed[name] = true
	}
	var unresolved []string
	for _, name := range Placeholders(template) {
		if !allowed[name] {
			unresolved = append(unresolved, name)
		}
	}
	return unresolved
}

// ValidateTemplate checks a subject and body against the declared variable
// set and returns an error listing any unresolved placeholders.
func ValidateTemplate(subject, body string, declared []string) error {
	var bad []string
	bad = append(bad, UnresolvedPlaceholders(subject, declared)...)
	for _, name := range UnresolvedPlaceholders(body, declared) {
		found := false
		for _, b := range bad {
			if b == name {
				found = true
				break
			}
		}
		if !found {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("template references undeclared variables: %s", strings.Join(bad, ", "))
	}
	return nil
}
