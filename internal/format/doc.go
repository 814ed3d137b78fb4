// Package format renders a parsed Clojure tree into its canonical layout.
//
// The renderer is a pure function render(column, node) -> node: it walks the
// comment-preserving tree from internal/parser and returns a new tree in which
// whitespace and newline nodes sit exactly where the canonical text needs
// them, so ast.Print of the result is the formatted source.
//
// Pipeline per collection: group children into items (group.go), pair them
// where the layout is key/value shaped (pairs.go), then place every item with
// a lineBuilder (layout.go). Lists headed by a known symbol are laid out by a
// handler from the special-form table (special.go); everything else is a call
// form. ns declarations are normalized first (ns.go). Top-level items are
// joined by the sequencer (sequence.go).
//
// Не делает: IO, кэширование и обход файлов; это internal/driver.
package format
