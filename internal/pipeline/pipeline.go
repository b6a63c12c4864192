// Package pipeline chains configured transformers and applies them to
// text line by line.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dyne/strtasks/internal/config"
	"github.com/dyne/strtasks/internal/log"
	"github.com/dyne/strtasks/internal/transform"
)

type Pipeline struct {
	steps  []transform.Transformer
	logger *log.Logger
}

func Build(cfg *config.Config, logger *log.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	p := &Pipeline{logger: logger}
	for i, sc := range cfg.Steps {
		tr, err := transform.Build(sc)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if tr == nil {
			continue
		}
		p.steps = append(p.steps, tr)
	}
	return p, nil
}

func (p *Pipeline) Len() int { return len(p.steps) }

// Apply runs every step over s in order, stopping at the first error.
func (p *Pipeline) Apply(s string) (string, error) {
	for i, tr := range p.steps {
		out, err := tr.Transform(s)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i+1, tr.Name(), err)
		}
		s = out
	}
	return s, nil
}

// Run applies the pipeline to each line of r and writes one result line to w.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lines++
		out, err := p.Apply(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lines, err)
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if p.logger != nil {
		p.logger.Debugf("processed %d lines through %d steps", lines, len(p.steps))
	}
	return nil
}

// Plan writes the step list in a stable human-readable form.
func (p *Pipeline) Plan(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Plan:"); err != nil {
		return err
	}
	if len(p.steps) == 0 {
		_, err := fmt.Fprintln(w, "  (no steps)")
		return err
	}
	for i, tr := range p.steps {
		line := fmt.Sprintf("  %d. %s", i+1, tr.Name())
		if d, ok := tr.(transform.Describer); ok {
			line += " " + d.Describe()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if p.logger != nil {
		p.logger.Infof("plan complete")
	}
	return nil
}
