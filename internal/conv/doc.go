// Package conv provides checked numeric conversions between scalar types.
//
// A Go conversion between numeric types never fails: integers wrap, floats
// round and float-to-integer conversions of out-of-range values are
// implementation-specific. Exact detects those cases so callers can refuse
// lossy conversions instead of silently changing values.
package conv
