// Package share hands a deep link to the platform: a configured share
// command when one is available, otherwise the clipboard. As a last resort
// the link is sent as an OSC 52 escape, which the terminal may ignore.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Payload is what gets shared.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// Method reports how a payload was delivered.
type Method int

const (
	MethodNone Method = iota
	MethodPlatform
	MethodClipboard
	// MethodTerminal is unconfirmed: the escape was written but the
	// terminal gives no acknowledgement.
	MethodTerminal
)

func (m Method) String() string {
	switch m {
	case MethodPlatform:
		return "platform"
	case MethodClipboard:
		return "clipboard"
	case MethodTerminal:
		return "terminal"
	default:
		return "none"
	}
}

// Sharer is a platform share capability.
type Sharer interface {
	Available() bool
	Share(ctx context.Context, p Payload) error
}

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Service prefers the platform sharer, then the system clipboard, then the
// terminal clipboard.
type Service struct {
	Platform  Sharer
	Clipboard Copier
	Terminal  Copier
	Logger    *slog.Logger
}

// NewService builds a Service from a share command template. An empty
// template means no platform capability.
func NewService(commandTemplate string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &Service{
		Clipboard: SystemClipboard{},
		Terminal:  NewTerminalClipboard(),
		Logger:    logger,
	}
	if strings.TrimSpace(commandTemplate) != "" {
		svc.Platform = NewCommandSharer(commandTemplate)
	}
	return svc
}

// Share delivers p and reports which method succeeded.
func (s *Service) Share(ctx context.Context, p Payload) (Method, error) {
	if s.Platform != nil && s.Platform.Available() {
		err := s.Platform.Share(ctx, p)
		if err == nil {
			s.Logger.Info("shared via platform", "url", p.URL)
			return MethodPlatform, nil
		}
		s.Logger.Warn("platform share failed, falling back to clipboard", "error", err)
	}
	if s.Clipboard == nil && s.Terminal == nil {
		return MethodNone, errors.New("no share method available")
	}

	var copyErr error
	if s.Clipboard != nil {
		if copyErr = s.Clipboard.Copy(p.URL); copyErr == nil {
			s.Logger.Info("copied link to clipboard", "url", p.URL)
			return MethodClipboard, nil
		}
		s.Logger.Warn("clipboard copy failed", "error", copyErr)
	}
	if s.Terminal != nil {
		err := s.Terminal.Copy(p.URL)
		if err == nil {
			s.Logger.Info("sent link to terminal clipboard", "url", p.URL)
			return MethodTerminal, nil
		}
		copyErr = errors.Join(copyErr, err)
	}
	return MethodNone, fmt.Errorf("copy link: %w", copyErr)
}

// CommandSharer runs an external command. Arguments may contain the
// placeholders {title}, {text} and {url}.
type CommandSharer struct {
	argv     []string
	lookPath func(string) (string, error)
}

// NewCommandSharer splits template on whitespace into an argv template.
func NewCommandSharer(template string) *CommandSharer {
	return &CommandSharer{
		argv:     strings.Fields(template),
		lookPath: exec.LookPath,
	}
}

// Available reports whether the command exists on PATH.
func (c *CommandSharer) Available() bool {
	if c == nil || len(c.argv) == 0 {
		return false
	}
	_, err := c.lookPath(c.argv[0])
	return err == nil
}

// Share runs the command with placeholders expanded.
func (c *CommandSharer) Share(ctx context.Context, p Payload) error {
	args := c.Args(p)
	if len(args) == 0 {
		return errors.New("share command is empty")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Args returns the expanded argv for p.
func (c *CommandSharer) Args(p Payload) []string {
	replacer := strings.NewReplacer("{title}", p.Title, "{text}", p.Text, "{url}", p.URL)
	out := make([]string, len(c.argv))
	for i, arg := range c.argv {
		out[i] = replacer.Replace(arg)
	}
	return out
}

// SystemClipboard writes through the OS clipboard tools.
type SystemClipboard struct{}

// Copy implements Copier.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard tool found")
	}
	return clipboard.WriteAll(text)
}

// TerminalClipboard writes an OSC 52 escape. Success only means the
// escape was written.
type TerminalClipboard struct {
	out  io.Writer
	term string
}

// NewTerminalClipboard targets stderr, which the TUI leaves alone.
func NewTerminalClipboard() TerminalClipboard {
	return TerminalClipboard{out: os.Stderr, term: os.Getenv("TERM")}
}

// Copy implements Copier.
func (t TerminalClipboard) Copy(text string) error {
	if t.out == nil || t.term == "" || t.term == "dumb" {
		return errors.New("terminal has no clipboard support")
	}
	termenv.NewOutput(t.out).Copy(text)
	return nil
}
