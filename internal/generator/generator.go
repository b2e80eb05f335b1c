package generator

import (
	"github.com/pkg/errors"

	"github.com/pgen-dev/pgen/internal/charset"
	"github.com/pgen-dev/pgen/internal/entropy"
	"github.com/pgen-dev/pgen/internal/random"
)

// Config configures a Generator.
type Config struct {
	// Source seeds every stream. Defaults to entropy.OS().
	Source entropy.Source

	// Algorithm names the stream, see random.New.
	Algorithm string

	// SharedStream seeds one stream for the whole batch instead of one per password.
	SharedStream bool

	// Observer receives sampler diagnostics. Optional.
	Observer random.Observer
}

// Request describes one batch.
type Request struct {
	Length   int
	Count    int
	Charset  charset.Charset
	NoRepeat bool
}

// Result holds a generated batch.
type Result struct {
	Passwords []string

	// EntropyBits is the estimated strength of each password.
	EntropyBits float64
}

// Generator runs batches.
type Generator struct {
	cfg Config
}

// New returns a Generator for cfg.
func New(cfg Config) *Generator {
	if cfg.Source == nil {
		cfg.Source = entropy.OS()
	}

	return &Generator{cfg: cfg}
}

// Generate validates req and then produces req.Count passwords.
// A request that fails validation reads no entropy.
func (g *Generator) Generate(req Request) (Result, error) {
	if req.Count < 1 {
		return Result{}, errors.Wrapf(ErrInvalidCount, "got %d", req.Count)
	}

	if err := Validate(req.Length, req.Charset.Len(), req.NoRepeat); err != nil {
		return Result{}, err
	}

	var (
		asm       *Assembler
		passwords = make([]string, 0, req.Count)
	)

	for range req.Count {
		if asm == nil || !g.cfg.SharedStream {
			stream, err := random.New(g.cfg.Source, g.cfg.Algorithm)
			if err != nil {
				return Result{}, err
			}

			asm = NewAssembler(random.NewSampler(stream, g.cfg.Observer))
		}

		pw, err := asm.Assemble(req.Length, req.Charset, req.NoRepeat)
		if err != nil {
			return Result{}, err
		}

		passwords = append(passwords, pw)
	}

	return Result{
		Passwords:   passwords,
		EntropyBits: EstimateEntropy(req.Length, req.Charset.Len()),
	}, nil
}
