package serializer

import (
	"fmt"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/errs"
	"github.com/lwes/lwes-go/format"
)

// StringSize returns the bytes PutString writes for s, prefix included.
func StringSize(s string, enc charset.ID) (int, error) {
	n, err := stringLen(s, enc, format.MaxStringLength)
	if err != nil {
		return 0, err
	}

	return n + 2, nil
}

// EventWordSize returns the bytes PutEventWord writes for s, prefix included.
func EventWordSize(s string, enc charset.ID) (int, error) {
	n, err := stringLen(s, enc, format.MaxWordLength)
	if err != nil {
		return 0, err
	}

	return n + 1, nil
}

// StringArraySize returns the bytes PutStringArray writes for values.
func StringArraySize(values []string, enc charset.ID) (int, error) {
	total := 2
	for i, s := range values {
		n, err := StringSize(s, enc)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}
		total += n
	}

	return total, nil
}

// ArraySize returns the bytes an array of count fixed-width elements occupies.
//
// t may be the element token or the array token. Strings have no fixed width
// and fail with errs.ErrUnknownType; use StringArraySize for them.
func ArraySize(t format.FieldType, count int) (int, error) {
	width := t.ElementType().FixedSize()
	if width < 0 || !t.Valid() {
		return 0, fmt.Errorf("%w: %s", errs.ErrUnknownType, t)
	}

	return 2 + width*count, nil
}
