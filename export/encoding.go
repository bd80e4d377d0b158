package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// encodingWriter wraps w so text written to it is transcoded into the named
// encoding. The returned writer must be closed to flush the transformer.
func encodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == DefaultEncoding {
		return nopCloser{w}, nil
	}

	return transform.NewWriter(w, enc.NewEncoder()), nil
}

// ValidateEncoding reports whether name is a known output encoding.
func ValidateEncoding(name string) error {
	_, err := encodingWriter(io.Discard, name)
	return err
}
