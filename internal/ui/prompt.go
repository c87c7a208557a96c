package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// askLine prompts until a line is entered, or returns the empty string right
// away when allowEmpty is set. On end of input the eof flag is raised and the
// partial line returned, so callers can unwind instead of spinning.
func (s *Session) askLine(prompt string, allowEmpty bool) string {
	for {
		fmt.Print(prompt)
		line, err := s.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil {
			s.eof = true
			return line
		}
		if line == "" && !allowEmpty {
			continue
		}
		return line
	}
}

// askInt prompts until an integer in [lo, hi] is entered. Returns lo when the
// input stream ends.
func (s *Session) askInt(prompt string, lo, hi int) int {
	for {
		line := s.askLine(prompt, false)
		if s.eof && line == "" {
			return lo
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < lo || n > hi {
			fmt.Printf("Please enter a number between %d and %d.\n", lo, hi)
			if s.eof {
				return lo
			}
			continue
		}
		return n
	}
}

// askIntDefault behaves like askInt but accepts an empty line as the given
// default value.
func (s *Session) askIntDefault(prompt string, lo, hi, def int) int {
	for {
		line := s.askLine(prompt, true)
		if line == "" {
			return def
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < lo || n > hi {
			fmt.Printf("Please enter a number between %d and %d.\n", lo, hi)
			if s.eof {
				return def
			}
			continue
		}
		return n
	}
}
