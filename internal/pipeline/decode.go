package pipeline

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newTextReader strips a leading UTF-8 BOM, decodes UTF-16 input that starts
// with a BOM, and fails with encoding.ErrInvalidUTF8 on malformed UTF-8.
func newTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(transform.Nop),
		encoding.UTF8Validator,
	))
}
