package vecmath

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var axisNames = [...]string{"x", "y", "z", "w"}

// String formats v as "(e0, e1, ...)".
func (v Vector[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range len(v.data) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.data[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

// LogValue implements slog.LogValuer. Elements are logged as a group keyed
// x, y, z, w and e4, e5, ... beyond the fourth.
func (v Vector[T, A]) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(v.data))
	for i := range attrs {
		attrs[i] = slog.Any(axisName(i), v.data[i])
	}
	return slog.GroupValue(attrs...)
}

func axisName(i int) string {
	if i < len(axisNames) {
		return axisNames[i]
	}
	return "e" + strconv.Itoa(i)
}
