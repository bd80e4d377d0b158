package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/lattice/model"
)

// exportCSV writes the column labels followed by one line per record.
// Every field is quoted; embedded quotes are doubled.
func exportCSV(frame *model.Frame, w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeRow := func(fields []string) {
		for j, field := range fields {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
			bw.WriteByte('"')
		}
		bw.WriteByte('\n')
	}

	writeRow(frame.Columns)
	for _, record := range frame.Records {
		writeRow(record)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}
