// Package console is the line-oriented diagnostic shell on the serial port.
//
// Lines are read on a background goroutine; commands run only from Poll,
// on the caller's goroutine.
package console

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
)

const maxPendingLines = 8

// Command runs one console command. args[0] is the command name.
type Command func(w io.Writer, args []string) error

type entry struct {
	help string
	fn   Command
}

type Console struct {
	out   io.Writer
	lines chan string
	cmds  map[string]entry
}

// New returns a console writing replies to out. Call Start to attach a reader.
func New(out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string, maxPendingLines),
		cmds:  make(map[string]entry),
	}
	c.Handle("help", "list commands", c.help)
	return c
}

// Handle registers fn under name, replacing any previous command.
func (c *Console) Handle(name, help string, fn Command) {
	c.cmds[name] = entry{help: help, fn: fn}
}

// Start reads lines from r until it fails. Lines arriving while
// maxPendingLines are still queued are dropped.
func (c *Console) Start(r io.Reader) {
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			select {
			case c.lines <- line:
			default:
			}
		}
	}()
}

// Poll runs every queued line and returns how many it ran.
func (c *Console) Poll() int {
	n := 0
	for {
		select {
		case line := <-c.lines:
			c.Exec(line)
			n++
		default:
			return n
		}
	}
}

// Exec parses and runs a single line.
func (c *Console) Exec(line string) {
	args, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(c.out, "parse error: %v\n", err)
		return
	}
	if len(args) == 0 {
		return
	}
	e, ok := c.cmds[args[0]]
	if !ok {
		fmt.Fprintf(c.out, "unknown command: %s\n", args[0])
		return
	}
	if err := e.fn(c.out, args); err != nil {
		fmt.Fprintf(c.out, "%s: %v\n", args[0], err)
	}
}

func (c *Console) help(w io.Writer, _ []string) error {
	names := make([]string, 0, len(c.cmds))
	for name := range c.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-8s %s\n", name, c.cmds[name].help)
	}
	return nil
}
