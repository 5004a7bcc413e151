package present

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"demo/storefront/internal/model"
)

const DefaultWidth = 15

// Table renders result sets as left-aligned fixed-width columns under an
// uppercased header line.
type Table struct {
	w     io.Writer
	width int
}

func New(w io.Writer) *Table { return &Table{w: w, width: DefaultWidth} }

func (t *Table) WithWidth(n int) *Table {
	if n > 0 {
		t.width = n
	}
	return t
}

// Present writes rs and reports whether it held any rows. The header is
// written even for an empty result.
func (t *Table) Present(rs model.ResultSet) (bool, error) {
	bw := bufio.NewWriter(t.w)
	for _, c := range rs.Columns {
		fmt.Fprintf(bw, "%-*s", t.width, strings.ToUpper(c))
	}
	bw.WriteByte('\n')
	for _, row := range rs.Rows {
		for _, cell := range row {
			fmt.Fprintf(bw, "%-*s", t.width, cell)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return false, fmt.Errorf("render result: %w", err)
	}
	return !rs.Empty(), nil
}
