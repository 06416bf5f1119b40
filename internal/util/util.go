package util

import (
	"fmt"
	"runtime"
	"strings"
)

// GetTrace produces the string representation of a stack trace
func GetTrace() string {
	var name, file string
	var line int
	var pc [16]uintptr
	var res strings.Builder
	n := runtime.Callers(3, pc[:])
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", name, file, line)
		}
	}
	return res.String()
}

// FormatMultiError formats multierrors for logging
func FormatMultiError(merrs []error) string {
	var msg = ""
	for i := 0; i < len(merrs); i++ {
		msg += fmt.Sprintf("%+v\n", merrs[i])
	}
	return msg
}

// ContainsAll returns the members of subset which are missing from set, in subset order
func ContainsAll(set []string, subset []string) (missing []string) {
	members := make(map[string]bool, len(set))
	for _, s := range set {
		members[s] = true
	}
	for _, s := range subset {
		if !members[s] {
			missing = append(missing, s)
		}
	}
	return
}

// CopyStrings returns a copy of a string slice, preserving nil
func CopyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	res := make([]string, len(in))
	copy(res, in)
	return res
}
