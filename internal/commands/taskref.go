package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single task id.
// A reference is a non-negative decimal id, optionally prefixed with '#'
// (e.g. 3 or #3).
func ParseTaskRef(arg string) (int, error) {
	digits := arg
	if len(digits) > 1 && digits[0] == '#' {
		digits = digits[1:]
	}
	if !isAllDigits(digits) {
		return 0, fmt.Errorf("invalid task reference: %s", arg)
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", arg)
	}
	return id, nil
}

// ParseTaskRefs parses one or more task ids.
// Returns ErrTaskRefRequired if args is empty, or the error for the first
// malformed reference.
func ParseTaskRefs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
