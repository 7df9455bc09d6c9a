// Package token defines lexical token kinds for CSS property values.
// Invariants:
//   - Token.Text is the raw source slice; Token.Span matches it exactly.
//   - Token.Value carries the kind-specific payload: the literal for numbers,
//     the hex digits for hashes, the unescaped body for quoted strings and
//     the offending text for Invalid tokens.
//   - Units are never part of a Number token. "10px" is Number "10" followed
//     by Word "px"; "50%" is Number "50" followed by Percent.
package token
