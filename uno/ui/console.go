package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Console is the terminal the human plays on. Every printed line is followed
// by a pause so bot moves can be followed.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, delay: delay}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Printlns(lines []string) {
	c.Println(strings.Join(lines, "\n"))
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

// print writes without pacing, for prompts the user is about to answer.
func (c *Console) print(text string) {
	fmt.Fprintln(c.out, text)
}
