package lsp

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/source"
)

func TestPositionForOffsetInFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.clj", []byte("(str \"é🙂\" x)\n(y)"))
	file := fs.Get(id)

	cases := []struct {
		off  uint32
		want position
	}{
		{0, position{0, 0}},
		{5, position{0, 5}},
		// é = 2 байта/1 единица, 🙂 = 4 байта/2 единицы
		{12, position{0, 9}},
		{15, position{0, 12}},
		{16, position{0, 13}}, // сам перевод строки
		{17, position{1, 0}},
		{100, position{1, 3}},
	}
	for _, tc := range cases {
		if got := positionForOffsetInFile(file, tc.off); got != tc.want {
			t.Errorf("offset %d: got %+v, want %+v", tc.off, got, tc.want)
		}
	}
}
