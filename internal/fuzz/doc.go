// Package fuzztests houses Go fuzz harnesses for the value pipeline
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер, парсер значений и
// парсер value sheet.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast, internal/testkit.
package fuzztests
