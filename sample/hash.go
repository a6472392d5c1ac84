package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// HashPrefix is the URL fragment prefix selecting a sample: "#sample-3".
const HashPrefix = "#sample-"

// ParseHash returns the sample id selected by a URL fragment such as
// "#sample-3". The id must be a positive decimal number without a sign;
// any other fragment yields an error wrapping ErrUnknown.
func ParseHash(hash string) (int, error) {
	rest, ok := strings.CutPrefix(hash, HashPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: fragment %q", ErrUnknown, hash)
	}
	id, err := strconv.ParseUint(rest, 10, 31)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: fragment %q", ErrUnknown, hash)
	}
	return int(id), nil
}
