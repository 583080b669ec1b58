package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Date represents a calendar date as read from input, before any
// range validation
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseError represents an input token that could not be read as part
// of a "year month day" triple
type ParseError struct {
	Position int    // 1-based field position: 1=year, 2=month, 3=day
	Token    string // offending token, empty when input ran out early
}

func (e *ParseError) Error() string {
	name := fieldName(e.Position)
	if e.Token == "" {
		return fmt.Sprintf("missing %s: expected three integers \"year month day\"", name)
	}
	return fmt.Sprintf("invalid %s %q: expected an integer", name, e.Token)
}

func fieldName(position int) string {
	switch position {
	case 1:
		return "year"
	case 2:
		return "month"
	default:
		return "day"
	}
}

// ReadDate reads three whitespace-separated integers "year month day"
// from r. Any mix of spaces, tabs and newlines separates the tokens.
func ReadDate(r io.Reader) (Date, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var fields [3]int
	for i := range fields {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Date{}, fmt.Errorf("failed to read input: %w", err)
			}
			return Date{}, &ParseError{Position: i + 1}
		}

		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return Date{}, &ParseError{Position: i + 1, Token: scanner.Text()}
		}
		fields[i] = value
	}

	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

// ParseArgs parses a "year month day" triple from command-line arguments
func ParseArgs(args []string) (Date, error) {
	if len(args) > 3 {
		return Date{}, fmt.Errorf("expected 3 arguments (year month day), got %d", len(args))
	}
	if len(args) < 3 {
		return Date{}, &ParseError{Position: len(args) + 1}
	}

	var fields [3]int
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return Date{}, &ParseError{Position: i + 1, Token: arg}
		}
		fields[i] = value
	}

	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}
