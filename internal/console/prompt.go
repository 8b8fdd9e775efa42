package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// errQuit signals that input is exhausted and the console should stop.
var errQuit = errors.New("input closed")

const (
	msgNotInteger   = "That's not a valid number. Please enter an integer."
	msgNotNumber    = "Enter a valid number"
	msgInvalidRange = "Please enter a valid option"
)

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// success prints a confirmation set apart by blank lines.
func (c *Console) success(msg string) {
	c.printf("\n%s\n\n", msg)
}

// prompt prints label and returns the next input line without surrounding blanks.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt re-prompts until the input parses as an integer.
func (c *Console) promptInt(label string) (int, error) {
	for {
		line, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println(msgNotInteger)
	}
}

// promptPrice re-prompts until the input parses as a number and rounds it to cents.
func (c *Console) promptPrice(label string) (float64, error) {
	for {
		line, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		if v, ok := parsePrice(line); ok {
			return v, nil
		}
		c.println(msgNotNumber)
	}
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return math.Round(v*100) / 100, true
}

// choose prints a numbered list and returns the 0-based index of the picked entry.
func (c *Console) choose(label string, entries []string) (int, error) {
	for i, e := range entries {
		c.printf("%d.) %s\n", i+1, e)
	}
	for {
		n, err := c.promptInt(label)
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= len(entries) {
			return n - 1, nil
		}
		c.println(msgInvalidRange)
	}
}

// Optional variants used by the update flows: a blank line keeps the current value.

func (c *Console) promptOptional(label string) (*string, error) {
	line, err := c.prompt(label)
	if err != nil || line == "" {
		return nil, err
	}
	return &line, nil
}

func (c *Console) promptOptionalInt(label string) (*int, error) {
	for {
		line, err := c.prompt(label)
		if err != nil || line == "" {
			return nil, err
		}
		if n, err := strconv.Atoi(line); err == nil {
			return &n, nil
		}
		c.println(msgNotInteger)
	}
}

func (c *Console) promptOptionalPrice(label string) (*float64, error) {
	for {
		line, err := c.prompt(label)
		if err != nil || line == "" {
			return nil, err
		}
		if v, ok := parsePrice(line); ok {
			return &v, nil
		}
		c.println(msgNotNumber)
	}
}

func (c *Console) chooseOptional(label string, entries []string) (*int, error) {
	for i, e := range entries {
		c.printf("%d.) %s\n", i+1, e)
	}
	for {
		n, err := c.promptOptionalInt(label)
		if err != nil || n == nil {
			return nil, err
		}
		if *n >= 1 && *n <= len(entries) {
			idx := *n - 1
			return &idx, nil
		}
		c.println(msgInvalidRange)
	}
}
