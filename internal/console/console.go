// Package console is the line-oriented front end: a numbered menu driven by
// plain text input, suitable for pipes and dumb terminals.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jeanpaul/rolodex/internal/logging"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/theme"
)

const (
	choiceRegister = iota + 1
	choiceUpdate
	choiceRemove
	choiceView
	choiceSearch
	choiceExit
)

// cancelID is the identity answer that backs out of a selection prompt.
const cancelID = 0

type input struct {
	text string
	err  error
}

// Console runs one interactive session against a directory. The reader and
// writer are owned by the caller; nothing here touches os.Stdin directly.
type Console struct {
	dir   store.Directory
	in    io.Reader
	out   io.Writer
	th    theme.Theme
	log   *slog.Logger
	lines <-chan input
}

type Option func(*Console)

func WithTheme(t theme.Theme) Option {
	return func(c *Console) { c.th = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

func New(dir store.Directory, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		dir: dir,
		in:  in,
		out: out,
		th:  theme.Named("green"),
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user exits, the input ends, or ctx is
// cancelled. End of input is a normal exit and returns nil.
func (c *Console) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	c.lines = readLines(c.in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.displayMenu()
		c.printf("Select an option: ")
		choice, err := c.readInt(ctx)
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case choiceRegister:
			err = c.register(ctx)
		case choiceUpdate:
			err = c.update(ctx)
		case choiceRemove:
			err = c.remove(ctx)
		case choiceView:
			err = c.viewDirectory(ctx)
		case choiceSearch:
			err = c.search(ctx)
		case choiceExit:
			c.println(c.th.Title.Render("👋 Exiting system. Goodbye!"))
			return nil
		default:
			c.warn("Invalid choice. Try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.println("")
		c.println(c.th.Title.Render("👋 End of input. Goodbye!"))
		return nil
	}
	return err
}

func (c *Console) displayMenu() {
	rule := c.th.Separator.Render(strings.Repeat("=", 32))
	c.println("")
	c.println(rule)
	c.println(c.th.Title.Render("=== CLIENT MANAGEMENT SYSTEM ==="))
	c.println(rule)
	c.println("1. Register New Client")
	c.println("2. Update Client Record")
	c.println("3. Remove Client Record")
	c.println("4. View Client Directory")
	c.println("5. Search Client Directory")
	c.println("6. Exit Application")
	c.println(c.th.Separator.Render(strings.Repeat("-", 32)))
}

// readLines delivers raw lines from r until EOF or until stop is closed.
func readLines(r io.Reader, stop <-chan struct{}) <-chan input {
	ch := make(chan input)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case ch <- input{text: line}:
				case <-stop:
					return
				}
			}
			if err != nil {
				select {
				case ch <- input{err: err}:
				case <-stop:
				}
				return
			}
		}
	}()
	return ch
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case in, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if in.err != nil {
			return "", in.err
		}
		return strings.TrimSpace(in.text), nil
	}
}

// readInt re-asks until the line parses as an integer.
func (c *Console) readInt(ctx context.Context) (int, error) {
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.printf("%s", c.th.Warn.Render("⚠ Please enter a valid number: "))
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) heading(title string) {
	c.println("")
	c.println(c.th.Title.Render("=== " + title + " ==="))
}

func (c *Console) warn(msg string) {
	c.println(c.th.Warn.Render("⚠ " + msg))
}

func (c *Console) success(msg string) {
	c.println(c.th.Success.Render("✓ " + msg))
}
