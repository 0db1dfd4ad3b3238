package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"weekboard/internal/service"
)

// TaskRef represents a parsed task reference: a bucket plus a 1-based
// position within it.
type TaskRef struct {
	Bucket    service.Bucket // valid only if HasBucket
	TaskNum   int            // 1-based task number
	HasBucket bool           // true if a day was part of the reference
	Consumed  int            // number of leading args the reference used
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Accepted forms:
//  1. All digits (e.g. "3") -> Someday reference, no explicit day
//  2. <day><digits> (e.g. "mon2", "tue12") -> combined reference
//  3. <day> <digits> as two args (e.g. "mon 2") -> separated reference
//  4. A day with no number -> error: task reference required
//  5. Anything else -> error: invalid task reference: <ref>
//
// Day names parse like the --day flag: case-insensitive prefix of at least
// three characters.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	firstArg := args[0]

	// Case 1: all digits, no explicit day
	if isAllDigits(firstArg) {
		num, err := strconv.Atoi(firstArg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", firstArg)
		}
		return TaskRef{TaskNum: num, Consumed: 1}, nil
	}

	// Split a combined reference into its letter prefix and digit suffix.
	dayPart, numPart := splitRef(firstArg)
	if dayPart == "" {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", firstArg)
	}

	bucket, err := service.ParseBucket(dayPart)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", firstArg)
	}

	// Case 2: <day><digits>
	if numPart != "" {
		num, err := strconv.Atoi(numPart)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", firstArg)
		}
		return TaskRef{Bucket: bucket, TaskNum: num, HasBucket: true, Consumed: 1}, nil
	}

	// Case 3: <day> <digits> as separate args
	if len(args) < 2 {
		// Case 4: a day with no number
		return TaskRef{}, ErrTaskRefRequired
	}
	secondArg := args[1]
	if isAllDigits(secondArg) {
		num, err := strconv.Atoi(secondArg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", secondArg)
		}
		return TaskRef{Bucket: bucket, TaskNum: num, HasBucket: true, Consumed: 2}, nil
	}
	return TaskRef{}, fmt.Errorf("invalid task reference: %s", secondArg)
}

// splitRef splits s into a leading run of letters and a trailing run of
// digits. Returns empty strings if s mixes them any other way.
func splitRef(s string) (letters, digits string) {
	i := 0
	for i < len(s) && isRefLetter(rune(s[i])) {
		i++
	}
	letters = s[:i]
	if !isAllDigits(s[i:]) && s[i:] != "" {
		return "", ""
	}
	return letters, s[i:]
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isRefLetter returns true if r is an ASCII letter.
func isRefLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
