package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Table struct {
	Headers TableRow
	Data    []TableRow
}

type TableRow []TableCell

type TableCell struct {
	Contents string
	Color    *color.Color
}

// Render pads the columns to line up. Headers are only printed to a
// terminal unless printHeaders is set.
func (table Table) Render(dst io.Writer, printHeaders bool) error {
	rows := table.Data
	if printHeaders || isTerminal(dst) {
		rows = append([]TableRow{table.Headers}, rows...)
	}

	widths := map[int]int{}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell.Contents) > widths[i] {
				widths[i] = len(cell.Contents)
			}
		}
	}

	for _, row := range rows {
		var line strings.Builder

		for i, cell := range row {
			contents := cell.Contents
			if cell.Color != nil {
				contents = cell.Color.Sprint(contents)
			}

			line.WriteString(contents)

			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-len(cell.Contents)+2))
			}
		}

		_, err := fmt.Fprintln(dst, line.String())
		if err != nil {
			return err
		}
	}

	return nil
}

func isTerminal(dst io.Writer) bool {
	file, ok := dst.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}
