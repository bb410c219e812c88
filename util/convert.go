package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnsupportedType is returned when ConvertString is given a destination
// it does not know how to fill.
var ErrUnsupportedType = errors.New("unsupported conversion target")

// ConvertString converts a stored option value into the scalar pointed to by
// data. Supported targets: *string, *bool, *int, *int64, *uint, *uint64,
// *float32, *float64, *time.Duration and *time.Time (parsed in the local
// timezone, accepting any layout dateparse recognizes).
func ConvertString(value string, data interface{}) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid boolean: %w", value, err)
		}
		*t = val
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%q is not a valid integer: %w", value, err)
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid integer: %w", value, err)
		}
		*t = val
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%q is not a valid unsigned integer: %w", value, err)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid unsigned integer: %w", value, err)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%q is not a valid float: %w", value, err)
		}
		*t = float32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid float: %w", value, err)
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid duration: %w", value, err)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid time: %w", value, err)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	return nil
}
