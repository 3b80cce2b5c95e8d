package serializer

import (
	"fmt"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/errs"
	"github.com/lwes/lwes-go/internal/options"
)

// Encoder carries the string encoding for callers that do not pass one on
// every call. It is immutable once built and safe for concurrent use.
type Encoder struct {
	encoding charset.ID
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithEncoding selects the character encoding for string fields.
func WithEncoding(id charset.ID) Option {
	return func(e *Encoder) error {
		if !id.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, int16(id))
		}
		e.encoding = id

		return nil
	}
}

// NewEncoder returns an Encoder using charset.Default unless configured otherwise.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{encoding: charset.Default}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

var defaultEncoder = &Encoder{encoding: charset.Default}

// Default returns the shared Encoder using charset.Default.
func Default() *Encoder {
	return defaultEncoder
}

// Encoding returns the configured character encoding.
func (e *Encoder) Encoding() charset.ID {
	return e.encoding
}

// PutString calls PutString with the configured encoding.
func (e *Encoder) PutString(s string, buf []byte, offset int) int {
	return PutString(s, buf, offset, e.encoding)
}

// EncodeString calls EncodeString with the configured encoding.
func (e *Encoder) EncodeString(s string, buf []byte, offset int) (int, error) {
	return EncodeString(s, buf, offset, e.encoding)
}

// PutEventWord calls PutEventWord with the configured encoding.
func (e *Encoder) PutEventWord(s string, buf []byte, offset int) int {
	return PutEventWord(s, buf, offset, e.encoding)
}

// PutAttributeWord calls PutAttributeWord with the configured encoding.
func (e *Encoder) PutAttributeWord(s string, buf []byte, offset int) int {
	return PutAttributeWord(s, buf, offset, e.encoding)
}

// PutStringArray calls PutStringArray with the configured encoding.
func (e *Encoder) PutStringArray(values []string, buf []byte, offset int) int {
	return PutStringArray(values, buf, offset, e.encoding)
}

// StringSize calls StringSize with the configured encoding.
func (e *Encoder) StringSize(s string) (int, error) {
	return StringSize(s, e.encoding)
}
