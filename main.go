package main

import (
	"context"
	"fmt"
	"os"

	"chessfen/src"
	"chessfen/src/base"
	"chessfen/src/logx"
	clic "chessfen/ui/cli"

	"github.com/urfave/cli/v3"
)

func PrintMailbox(m base.Mailbox) {
	// ANSI-code
	const (
		reset   = "\033[0m"
		lightBg = "\033[47m"
		darkBg  = "\033[100m"
		whiteF  = "\033[97m"
		blackF  = "\033[30m"
		dimF    = "\033[90m"
	)

	// Piece -> unicode glyph
	pieceGlyph := func(p base.Piece) string {
		switch p {
		case base.WKing:
			return "♔"
		case base.WQueen:
			return "♕"
		case base.WRook:
			return "♖"
		case base.WBishop:
			return "♗"
		case base.WKnight:
			return "♘"
		case base.WPawn:
			return "♙"
		case base.BKing:
			return "♚"
		case base.BQueen:
			return "♛"
		case base.BRook:
			return "♜"
		case base.BBishop:
			return "♝"
		case base.BKnight:
			return "♞"
		case base.BPawn:
			return "♟"
		case base.EmptyPiece:
			return " "
		default:
			return "?"
		}
	}

	fmt.Println()
	fmt.Println("   a  b  c  d  e  f  g  h")
	// internal rank 0 is rank 8, already top of the picture
	for r := 0; r < 8; r++ {
		rank := 8 - r
		fmt.Printf("%d ", rank)
		for f := 0; f < 8; f++ {
			p := m[r*8+f]
			g := pieceGlyph(p)

			lightSquare := (r+f)%2 == 0

			var bg, fg string
			if lightSquare {
				bg = lightBg
				if g == " " {
					fg = dimF
				} else {
					fg = blackF
				}
			} else {
				bg = darkBg
				if base.PieceIsWhite(p) {
					fg = whiteF
				} else if base.PieceIsBlack(p) {
					fg = blackF
				} else {
					fg = dimF
				}
			}

			fmt.Printf("%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Printf(" %d\n", rank)
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
	fmt.Println()
}

func main() {
	if err := (&cli.Command{
		Name:  "chessfen",
		Usage: "FEN position viewer",
		Commands: []*cli.Command{
			{
				Name: "cli",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "fen",
						Usage: "string FEN format, 4 fields: placement, turn, castling, en-passant (no move clocks)",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "debug|info|warn|error|fatal",
						Value: "info",
					},
					&cli.BoolFlag{
						Name:  "json-log",
						Usage: "JSON log output",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					logger := logx.NewLogx(os.Stderr, logx.GetLoggerLevelByString(c.String("log-level")), c.Bool("json-log"))

					pb := src.NewBuilderPosition(logger)
					if fen := c.String("fen"); fen != "" {
						if err := pb.CreateFromFEN(fen); err != nil {
							fmt.Printf("Error parse FEN: %v\n", err)
							return nil
						}
					} else {
						pb.CreateClassic()
					}

					EnableANSI()
					cl := clic.NewCLI(pb, PrintMailbox)
					if err := cl.RunLineMode(); err != nil {
						fmt.Printf("error chessfen: %v", err)
					}
					return nil
				},
			},
		},
	}).Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
	}
}
