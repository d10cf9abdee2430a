// Package shell implements the interactive loop of the arith command: read a
// line, evaluate it, print the result or the error, repeat.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/config"
)

// Shell evaluates expressions read line by line. It is not safe for
// concurrent use.
type Shell struct {
	cfg    config.Config
	in     *bufio.Reader
	out    io.Writer
	log    *slog.Logger
	styles styles
}

// New creates a shell reading from in and writing to out. A nil logger
// discards logs.
func New(cfg config.Config, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
		log:    log,
		styles: newStyles(out, cfg.Color),
	}
}

// Run reads and evaluates lines until the input ends, a line is empty, or a
// line starts with a quit word. Evaluation errors are printed and do not stop
// the loop; the result is non-nil only if reading or writing fails.
func (s *Shell) Run() error {
	for {
		if _, err := io.WriteString(s.out, s.cfg.Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := err != nil
		line = strings.TrimRight(line, "\r\n")
		if s.done(line) {
			if eof && s.cfg.Prompt != "" {
				// Leave the terminal on a fresh line after ^D.
				_, err = io.WriteString(s.out, "\n")
			}
			s.log.Debug("session ended", "eof", eof)
			return err
		}
		if err := s.Print(line); err != nil {
			return err
		}
		if eof {
			return nil
		}
	}
}

// done reports whether line ends the session.
func (s *Shell) done(line string) bool {
	if line == "" {
		return true
	}
	for _, q := range s.cfg.Quit {
		if strings.HasPrefix(line, q) {
			return true
		}
	}
	return false
}

// Print evaluates line and writes the result or a diagnostic.
func (s *Shell) Print(line string) error {
	r, err := s.Eval(line)
	if err != nil {
		_, werr := io.WriteString(s.out, s.diagnose(line, err))
		return werr
	}
	_, err = io.WriteString(s.out, r+"\n")
	return err
}

// Eval evaluates a single expression and formats the result. If Echo is set,
// the result is preceded by the parsed tree.
func (s *Shell) Eval(line string) (string, error) {
	toks, err := arith.Tokenize([]byte(line))
	if err != nil {
		s.log.Debug("tokenize failed", "line", line, "err", err)
		return "", err
	}
	n, err := arith.Build(toks)
	if err != nil {
		s.log.Debug("build failed", "line", line, "tokens", len(toks), "err", err)
		return "", err
	}
	v, err := arith.Eval(n)
	if err != nil {
		s.log.Debug("eval failed", "tree", n.String(), "err", err)
		return "", err
	}
	s.log.Debug("evaluated", "tokens", len(toks), "tree", n.String(), "result", v)
	r := s.styles.result.Render(fmt.Sprintf(s.cfg.Format, v))
	if s.cfg.Echo {
		r = s.styles.tree.Render(n.String()) + " : " + r
	}
	return r, nil
}

// diagnose formats an error. Errors with a position show the line with a caret
// under the offending byte.
func (s *Shell) diagnose(line string, err error) string {
	var b strings.Builder
	var ie arith.InputError
	if errors.As(err, &ie) && ie.Pos() <= len(line) {
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(indent(line[:ie.Pos()]))
		b.WriteString(s.styles.caret.Render("^"))
		b.WriteByte('\n')
	}
	b.WriteString(s.styles.err.Render("error: " + err.Error()))
	b.WriteByte('\n')
	return b.String()
}

// indent blanks out s so that text written after it lines up with the end of
// s. Tabs are kept so they expand the same way.
func indent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
