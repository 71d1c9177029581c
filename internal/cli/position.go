package cli

import (
	"strconv"
	"strings"
)

// parsePosition interprets a leading "+line[:col]" argument as a one-based
// initial cursor position.
func parsePosition(arg string) (line, col int, ok bool) {
	if !strings.HasPrefix(arg, "+") {
		return 0, 0, false
	}
	num := arg[1:]
	colPart := ""
	if i := strings.IndexByte(num, ':'); i >= 0 {
		num, colPart = num[:i], num[i+1:]
	}

	line, err := strconv.Atoi(num)
	if err != nil || line < 1 {
		return 0, 0, false
	}
	col = 1
	if colPart != "" {
		col, err = strconv.Atoi(colPart)
		if err != nil || col < 1 {
			return 0, 0, false
		}
	}
	return line, col, true
}
