package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pgen-dev/pgen/internal/charset"
	"github.com/pgen-dev/pgen/internal/db"
	"github.com/pgen-dev/pgen/internal/db/controller/history"
	"github.com/pgen-dev/pgen/internal/db/models"
	"github.com/pgen-dev/pgen/internal/generator"
	"github.com/pgen-dev/pgen/internal/metrics"
	"github.com/pgen-dev/pgen/internal/output"
)

const (
	sinkStdout    = "stdout"
	sinkClipboard = "clipboard"
	sinkFile      = "file"
)

// drawObserver feeds sampler diagnostics into metrics and the log.
type drawObserver struct {
	metrics   *metrics.Collector
	threshold int
}

func (o drawObserver) Draw(rejections int) {
	o.metrics.Draw(rejections)

	if rejections >= o.threshold {
		log.Warn().Int("rejections", rejections).Msg("sampler rejected an unusual number of words for one draw")
	}
}

func (s *state) generate(cmd *cobra.Command) error {
	g := s.cfg.Generator

	cs, err := charset.Build(charset.Options{
		Alpha:   g.Alpha,
		Numeric: g.Numeric,
		Symbols: g.Symbols,
		Custom:  g.Custom,
		Exclude: g.Exclude,
	})
	if err != nil {
		return err
	}

	gen := generator.New(generator.Config{
		Source:       s.deps.source,
		Algorithm:    g.Algorithm,
		SharedStream: g.SharedStream,
		Observer:     drawObserver{metrics: s.metrics, threshold: g.RejectionWarnThreshold},
	})

	res, err := gen.Generate(generator.Request{
		Length:   g.Length,
		Count:    g.Count,
		Charset:  cs,
		NoRepeat: g.NoRepeat,
	})
	if err != nil {
		return err
	}

	s.metrics.Batch(len(res.Passwords), res.EntropyBits)

	log.Debug().
		Int("length", g.Length).
		Int("count", g.Count).
		Int("charset", cs.Len()).
		Str("algorithm", g.Algorithm).
		Msg("passwords generated")

	if g.Entropy {
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated entropy per password: %.2f bits\n", res.EntropyBits)
	}

	sinks := s.deliver(cmd, res.Passwords)

	if s.cfg.History.Enabled {
		s.record(&models.Generation{
			Length:      g.Length,
			Count:       len(res.Passwords),
			CharsetSize: cs.Len(),
			NoRepeat:    g.NoRepeat,
			EntropyBits: res.EntropyBits,
			Algorithm:   g.Algorithm,
			Sinks:       strings.Join(sinks, ","),
		})
	}

	if path := s.cfg.Metrics.TextfilePath; path != "" {
		if err = s.metrics.WriteTextfile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to write metrics")
		}
	}

	return nil
}

// deliver hands the passwords to the configured sinks and prints them when none succeeded.
// It returns the sinks that received the passwords.
func (s *state) deliver(cmd *cobra.Command, passwords []string) []string {
	var (
		out    = cmd.OutOrStdout()
		errOut = cmd.ErrOrStderr()
		text   = strings.Join(passwords, "\n")
		sinks  []string
	)

	if s.cfg.Output.Clipboard {
		if err := s.deps.clipboard.WriteAll(text); err != nil {
			log.Error().Err(err).Msg("clipboard")
			fmt.Fprintf(errOut, "Failed to copy to clipboard: %v\n", err)
		} else {
			sinks = append(sinks, sinkClipboard)

			if len(passwords) == 1 {
				fmt.Fprintln(out, "Password successfully copied to clipboard")
			} else {
				fmt.Fprintf(out, "%d passwords successfully copied to clipboard\n", len(passwords))
			}
		}
	}

	if path := s.cfg.Output.SavePath; path != "" {
		saver := output.NewFileSaver(s.deps.fs)
		if err := saver.Append(path, text); err != nil {
			log.Error().Err(err).Str("path", path).Msg("save")
			fmt.Fprintf(errOut, "Failed to save to file: %v\n", err)
		} else {
			sinks = append(sinks, sinkFile)

			if len(passwords) == 1 {
				fmt.Fprintf(out, "Password written to file at %s\n", path)
			} else {
				fmt.Fprintf(out, "%d passwords written to file at %s\n", len(passwords), path)
			}
		}
	}

	if len(sinks) > 0 {
		return sinks
	}

	for _, p := range passwords {
		fmt.Fprintf(out, "Password: %s\n", p)
	}

	return []string{sinkStdout}
}

// record stores the generation metadata. Failures are logged only.
func (s *state) record(g *models.Generation) {
	conn, err := db.Open(&s.cfg)
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return
	}

	defer func() {
		if cerr := db.Close(conn); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close history")
		}
	}()

	if err = history.Record(conn, g); err != nil {
		log.Warn().Err(err).Msg("failed to record history")
	}
}
