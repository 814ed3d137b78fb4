// Package fuzztests houses Go fuzz harnesses for the reader and the
// formatter (source -> lexer -> parser -> format). They guard against
// panics, hangs and layout that does not survive a second pass.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер/форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
