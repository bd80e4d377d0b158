package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tsawler/lattice/model"
)

// record marshals as a JSON object whose keys keep column order.
type record struct {
	columns []string
	values  []string
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encode terminates each value with a newline
	writeString := func(s string) error {
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(col); err != nil {
			return nil, err
		}
		buf.WriteByte(':')

		var v string
		if i < len(r.values) {
			v = r.values[i]
		}
		if err := writeString(v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// exportJSON exports the frame as an array of records
func exportJSON(frame *model.Frame, w io.Writer, pretty bool) error {
	records := make([]record, len(frame.Records))
	for i, values := range frame.Records {
		records[i] = record{columns: frame.Columns, values: values}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(records)
}
