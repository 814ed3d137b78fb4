// Package diag defines the diagnostic model shared by the reader, the
// formatter driver and the CLI.
//
// # Data model
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form (LEX1002, SYN2001, ...), a short Message and the Primary
// span. Notes carry secondary spans, for example where an unclosed delimiter
// was opened.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter so that emission stays decoupled from storage.
// BagReporter collects into a Bag, which supports a cap, sorting and
// deduplication. Rendering lives in internal/diagfmt; this package does no IO.
package diag
