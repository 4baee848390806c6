package lsystem

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSymbols bounds the byte length of any expanded string.
const MaxSymbols = 1 << 27

// Grammar is an axiom plus production rules. Symbols absent from Rules
// rewrite to themselves.
type Grammar struct {
	Axiom string
	Rules map[rune]string
}

// Expand is the method form of the package-level Expand.
func (g Grammar) Expand(iterations int) (string, error) {
	return Expand(g.Axiom, g.Rules, iterations)
}

// Expand rewrites axiom for the given number of rounds.
//
// Implementation:
//   - Stage 1: measure the exact byte length of the next string.
//   - Stage 2: reject it with ErrTooLarge when above MaxSymbols.
//   - Stage 3: grow a strings.Builder once and write every replacement.
//
// Errors:
//   - ErrInvalidInput for iterations < 0.
//   - ErrTooLarge when a round would exceed MaxSymbols bytes.
//
// Complexity: O(Σ round lengths) time; O(final length) memory.
func Expand(axiom string, rules map[rune]string, iterations int) (string, error) {
	if iterations < 0 {
		return "", fmt.Errorf("Expand: iterations %d < 0: %w", iterations, ErrInvalidInput)
	}
	cur := axiom
	for round := 0; round < iterations; round++ {
		n := expandedLen(cur, rules)
		if n > MaxSymbols {
			return "", fmt.Errorf("Expand: round %d needs %d bytes, limit %d: %w", round+1, n, MaxSymbols, ErrTooLarge)
		}
		var b strings.Builder
		b.Grow(n)
		for _, r := range cur {
			if rep, ok := rules[r]; ok {
				b.WriteString(rep)
			} else {
				b.WriteRune(r)
			}
		}
		cur = b.String()
	}

	return cur, nil
}

// expandedLen returns the byte length of one rewrite round of s.
func expandedLen(s string, rules map[rune]string) int {
	n := 0
	for _, r := range s {
		if rep, ok := rules[r]; ok {
			n += len(rep)
		} else {
			n += utf8.RuneLen(r)
		}
		if n > MaxSymbols {
			return n
		}
	}

	return n
}

// ExpandedLen returns the byte length Expand would produce, without building
// any string. Lengths saturate at MaxSymbols+1.
// Returns ErrInvalidInput for iterations < 0 and ErrTooLarge past MaxSymbols.
// Complexity: O(iterations × Σ|rule|) time, O(alphabet) memory; stops early
// once no length changes.
func ExpandedLen(axiom string, rules map[rune]string, iterations int) (int, error) {
	if iterations < 0 {
		return 0, fmt.Errorf("ExpandedLen: iterations %d < 0: %w", iterations, ErrInvalidInput)
	}
	// size[r] is the length symbol r reaches after the current round.
	size := make(map[rune]int)
	seed := func(s string) {
		for _, r := range s {
			size[r] = utf8.RuneLen(r)
		}
	}
	seed(axiom)
	for k, rep := range rules {
		seed(string(k))
		seed(rep)
	}

	next := make(map[rune]int, len(size))
	for round := 0; round < iterations; round++ {
		changed := false
		for r, n := range size {
			m := n
			if rep, ok := rules[r]; ok {
				m = 0
				for _, x := range rep {
					m = min(m+size[x], MaxSymbols+1)
				}
			}
			next[r] = m
			changed = changed || m != n
		}
		size, next = next, size
		if !changed || axiomLen(axiom, size) > MaxSymbols {
			break
		}
	}

	total := axiomLen(axiom, size)
	if total > MaxSymbols {
		return 0, fmt.Errorf("ExpandedLen: more than %d bytes: %w", MaxSymbols, ErrTooLarge)
	}

	return total, nil
}

func axiomLen(axiom string, size map[rune]int) int {
	total := 0
	for _, r := range axiom {
		total = min(total+size[r], MaxSymbols+1)
	}

	return total
}
