// Package diag defines the diagnostic model shared by the lexer, the parser
// and the batch driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1xxx lexical, SYN2xxx syntax, IO4xxx loading), a short
// Message, the Primary span, optional Notes and data-only Fix suggestions.
//
// Producers emit through a Reporter (directly or via ReportBuilder) so they
// never depend on storage or formatting. BagReporter collects into a Bag,
// which supports limits, sorting and deduplication. Rendering lives in
// internal/diagfmt; the one exception is FormatShortDiagnostics, the
// single-line form used by tests and by the CLI's --quiet mode.
package diag
