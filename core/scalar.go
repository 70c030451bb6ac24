package core

import (
	"strconv"

	"github.com/sjrdc/pax/errors"
)

// Path is a string type for filesystem path arguments. It decodes like a
// string except that an empty token is rejected.
type Path string

// Scalar is the closed set of types a value-bearing argument can decode.
type Scalar interface {
	int | int64 | uint | float64 | string | Path
}

// decodeScalar converts a single token into a typed value. The whole token
// must decode; trailing characters fail with a DecodeError naming the token.
func decodeScalar[T Scalar](token string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = token
	case *Path:
		if token == "" {
			return v, errors.NewDecode(token, "path")
		}
		*p = Path(token)
	case *int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return v, errors.NewDecode(token, "integer")
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return v, errors.NewDecode(token, "integer")
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(token, 10, strconv.IntSize)
		if err != nil {
			return v, errors.NewDecode(token, "unsigned integer")
		}
		*p = uint(n)
	case *float64:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return v, errors.NewDecode(token, "float")
		}
		*p = f
	}
	return v, nil
}

// encodeScalar renders a typed value back into token form. It is the
// inverse of decodeScalar for every supported type.
func encodeScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case Path:
		return string(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}
