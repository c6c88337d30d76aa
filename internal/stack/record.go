package stack

import (
	"runtime"
	"strconv"
	"strings"
)

// Record returns a "function(file.go:line)" description of the caller,
// skipping depth additional frames above Record itself.
func Record(depth int) string {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}

	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}

	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}

	var sb strings.Builder
	sb.WriteString(fn)
	sb.WriteByte('(')
	sb.WriteString(file)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(line))
	sb.WriteByte(')')

	return sb.String()
}
