package generator

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pgen-dev/pgen/internal/charset"
	"github.com/pgen-dev/pgen/internal/random"
)

// Assembler turns sampled indices into passwords.
type Assembler struct {
	sampler *random.Sampler
}

// NewAssembler returns an Assembler drawing from sampler.
func NewAssembler(sampler *random.Sampler) *Assembler {
	return &Assembler{sampler: sampler}
}

// Validate checks the preconditions of Assemble for a charset of the given size.
func Validate(length, size int, noRepeat bool) error {
	if length < 1 {
		return errors.Wrapf(ErrInvalidLength, "got %d", length)
	}

	if size < 1 {
		return ErrEmptyCharset
	}

	if noRepeat && length > size {
		return errors.Wrapf(ErrNoRepeatInfeasible, "length %d, charset size %d", length, size)
	}

	return nil
}

// Assemble returns a password of length characters drawn from cs.
// With noRepeat every character is used at most once.
func (a *Assembler) Assemble(length int, cs charset.Charset, noRepeat bool) (string, error) {
	if err := Validate(length, cs.Len(), noRepeat); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(length)

	if !noRepeat {
		for range length {
			sb.WriteRune(cs.At(a.sampler.GenRange(cs.Len())))
		}

		return sb.String(), nil
	}

	used := make(map[int]struct{}, length)

	for range length {
		idx := a.sampler.GenRange(cs.Len())
		for {
			if _, ok := used[idx]; !ok {
				break
			}

			idx = a.sampler.GenRange(cs.Len())
		}

		used[idx] = struct{}{}
		sb.WriteRune(cs.At(idx))
	}

	return sb.String(), nil
}
