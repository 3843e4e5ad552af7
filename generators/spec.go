// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// spec.go — splitting a specification string into name and raw tokens.

package generators

import "strings"

// Specification grammar delimiters (stable, documented in doc.go).
const (
	// nameDelimiter separates the model name from its parameter list.
	nameDelimiter = "/"

	// paramDelimiter separates consecutive parameter tokens.
	paramDelimiter = ","
)

// parseSpec splits s at the first nameDelimiter into a model name and the
// ordered raw parameter tokens. An absent delimiter yields no tokens; the
// remainder is split on paramDelimiter verbatim. No numeric interpretation
// happens here and no input is rejected: arity and token validity are the
// binder's job.
//
// Complexity: O(len(s)) time and space.
func parseSpec(s string) (name string, tokens []string) {
	name, rest, found := strings.Cut(s, nameDelimiter)
	if !found {
		return name, nil
	}
	return name, strings.Split(rest, paramDelimiter)
}
