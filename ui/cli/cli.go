package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chessfen/src"
	"chessfen/src/base"

	"golang.org/x/term"
)

type DrawFunc func(mb base.Mailbox)

type CLIProcessing struct {
	builder *src.PositionBuilder
	draw    DrawFunc
	in      *os.File
	out     io.Writer
}

func NewCLI(b *src.PositionBuilder, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: os.Stdin, out: os.Stdout}
}

// line processing
// - enter a FEN to load it
// - 'fen' to print the re-encoded position
// - 'board' to redraw
// - 'q' to quit
// piped input skips the prompts and just validates line by line
func (c *CLIProcessing) RunLineMode() error {
	interactive := term.IsTerminal(int(c.in.Fd()))

	c.draw(c.builder.CurrentBoard())
	c.printStatus()
	if interactive {
		fmt.Fprintln(c.out, "Enter a FEN and press Enter. Commands: 'fen', 'board', 'q' to quit.")
	}

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "Q" {
			return nil
		}
		if line == "fen" {
			fmt.Fprintln(c.out, c.builder.FEN())
			continue
		}
		if line == "board" {
			c.draw(c.builder.CurrentBoard())
			c.printStatus()
			continue
		}
		if err := c.builder.CreateFromFEN(line); err != nil {
			fmt.Fprintf(c.out, "Invalid FEN: %v\n", err)
			continue
		}
		c.draw(c.builder.CurrentBoard())
		c.printStatus()
	}
	return scanner.Err()
}

func (c *CLIProcessing) printStatus() {
	fen := c.builder.FEN()
	parts := strings.Split(fen, " ")
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "FEN: %s\n", fen)
	fmt.Fprintf(c.out, "Turn: %s\n", c.builder.Turn())
	fmt.Fprintf(c.out, "Castling: %s\n", parts[2])
	fmt.Fprintf(c.out, "En passant: %s\n", parts[3])
}
