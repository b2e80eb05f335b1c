// Package charset resolves category flags and exclusions into the ordered set of
// characters a password is drawn from.
package charset

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Category strings, concatenated by Build in this order.
const (
	Alpha   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numeric = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{};:,.<>?/|\\~`"
)

// Options selects the candidate characters.
type Options struct {
	Alpha   bool
	Numeric bool
	Symbols bool

	// Custom replaces the categories when not empty.
	Custom string

	// Exclude lists characters removed from the result.
	Exclude string
}

// Charset is an ordered sequence of unique characters. The zero value is empty.
type Charset struct {
	chars []rune
}

// Build returns the charset described by opts or ErrEmpty if nothing remains.
func Build(opts Options) (Charset, error) {
	if !utf8.ValidString(opts.Custom) || !utf8.ValidString(opts.Exclude) {
		return Charset{}, ErrInvalidEncoding
	}

	var sb strings.Builder

	if opts.Custom != "" {
		sb.WriteString(opts.Custom)
	} else {
		if opts.Alpha {
			sb.WriteString(Alpha)
		}

		if opts.Numeric {
			sb.WriteString(Numeric)
		}

		if opts.Symbols {
			sb.WriteString(Symbols)
		}
	}

	cs := FromString(sb.String()).Without(opts.Exclude)
	if cs.Len() == 0 {
		return Charset{}, ErrEmpty
	}

	return cs, nil
}

// FromString returns the unique characters of s in first-seen order.
func FromString(s string) Charset {
	seen := make(map[rune]struct{}, len(s))
	chars := make([]rune, 0, len(s))

	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		chars = append(chars, r)
	}

	return Charset{chars: chars}
}

// Without returns a copy of c with every character of exclude removed.
func (c Charset) Without(exclude string) Charset {
	if exclude == "" {
		return c
	}

	chars := make([]rune, 0, len(c.chars))

	for _, r := range c.chars {
		if !strings.ContainsRune(exclude, r) {
			chars = append(chars, r)
		}
	}

	return Charset{chars: chars}
}

// Len returns the number of characters.
func (c Charset) Len() int {
	return len(c.chars)
}

// At returns the character at index i.
func (c Charset) At(i int) rune {
	return c.chars[i]
}

// Contains reports whether r is a member of c.
func (c Charset) Contains(r rune) bool {
	return slices.Contains(c.chars, r)
}

// Runes returns a copy of the characters.
func (c Charset) Runes() []rune {
	return slices.Clone(c.chars)
}

func (c Charset) String() string {
	return string(c.chars)
}
