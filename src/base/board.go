package base

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Board is the piece-placement state. The mailbox follows the internal
// orientation of Point: index 0 is a8, index 63 is h1, so the rows of a
// FEN placement field land in the mailbox in the order they are written.
type Board struct {
	Mailbox Mailbox
}

// At returns the piece occupying p, EmptyPiece for a free tile and
// InvalidPiece when p is off the grid.
func (b *Board) At(p Point) Piece {
	if !IsValidPoint(p) {
		return InvalidPiece
	}
	return b.Mailbox[ConvPointToIndex(p)]
}

// ParseBoard decodes the piece-placement field of a FEN string.
func ParseBoard(placement string) (*Board, error) {
	board := &Board{}

	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("must be 8 rows, but there are %d", len(rows))
	}

	for r := 0; r < 8; r++ {
		row := rows[r]
		count := 0
		for _, ch := range row {
			if count == 8 {
				return nil, fmt.Errorf("row %d overflow", r+1)
			}
			if ch >= '1' && ch <= '8' {
				empty := int(ch - '0')
				if empty+count > 8 {
					return nil, fmt.Errorf("row %d overflow", r+1)
				}
				for i := 0; i < empty; i++ {
					board.Mailbox[r*8+count] = EmptyPiece
					count++
				}
			} else {
				pc := ConvertPieceFromRune(ch)
				if pc == InvalidPiece {
					return nil, errors.New("error convert piece")
				}
				board.Mailbox[r*8+count] = pc
				count++
			}
		}
		if count != 8 {
			return nil, fmt.Errorf("must be 8 fields in row %d, but there are %d", r+1, count)
		}
	}

	return board, nil
}

// Placement encodes the mailbox back into the FEN piece-placement field.
func (b *Board) Placement() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := b.Mailbox[r*8+f]
			if pc == EmptyPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteRune(ConvertRuneFromPiece(pc))
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
