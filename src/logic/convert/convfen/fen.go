package convfen

import (
	"errors"
	"fmt"
	"strings"

	"chessfen/src/base"
)

// Decode-time failures. Encode never fails.
var (
	ErrWrongFieldCount   = errors.New("fen: wrong field count")
	ErrInvalidPlacement  = errors.New("fen: invalid piece placement")
	ErrUnknownTurn       = errors.New("fen: unknown turn")
	ErrCastlingTooLong   = errors.New("fen: castling field too long")
	ErrDuplicateCastling = errors.New("fen: repeated castling character")
	ErrUnknownCharacter  = errors.New("fen: unknown character")
	ErrWrongLength       = errors.New("fen: wrong en-passant field length")
	ErrInvalidEnPassant  = errors.New("fen: invalid en-passant square")
)

// Decode parses a four-field FEN string (placement, turn, castling,
// en-passant) into a Position. The en-passant field is cross-checked
// against the board: the tile one rank behind the landing square must
// hold a pawn of the side that just moved.
func Decode(fen string) (*base.Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: must be 4 fields, but there are %d", ErrWrongFieldCount, len(parts))
	}

	board, err := base.ParseBoard(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
	}

	var turn base.Color
	switch parts[1] {
	case "w":
		turn = base.White
	case "b":
		turn = base.Black
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTurn, parts[1])
	}

	castling, err := parseCastling(parts[2])
	if err != nil {
		return nil, err
	}

	landing, err := parseEnPassant(parts[3])
	if err != nil {
		return nil, err
	}

	var enPassant *base.Point
	if landing != nil {
		pawn := landingToPawnSquare(*landing, turn)
		pc := board.At(pawn)
		color, ok := base.PieceColor(pc)
		if !ok || !base.PieceIsPawn(pc) || color == turn {
			return nil, fmt.Errorf("%w: no %s pawn behind %s", ErrInvalidEnPassant, turn.Other(), parts[3])
		}
		enPassant = &pawn
	}

	return &base.Position{
		Board:     *board,
		Turn:      turn,
		Castling:  castling,
		EnPassant: enPassant,
	}, nil
}

// Encode renders a Position back into the four-field FEN form. For
// every string accepted by Decode, Encode reproduces it exactly.
func Encode(pos *base.Position) string {
	var b strings.Builder
	b.WriteString(pos.Board.Placement())

	// side to move
	if pos.Turn == base.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	// castling
	b.WriteString(serializeCastling(pos.Castling))
	b.WriteByte(' ')

	// en-passant
	if pos.EnPassant == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(serializeSquare(pawnSquareToLanding(*pos.EnPassant, pos.Turn)))
	}

	return b.String()
}

// The position stores the capturable pawn's own tile, while FEN writes
// the empty landing square. On the internal rank axis (0 = rank 8) one
// rank behind the landing square is H+1 when White is to move and H-1
// when Black is to move; the pawn always belongs to the side that just
// moved. Off-grid results are left to the caller's tile query.
func landingToPawnSquare(p base.Point, turn base.Color) base.Point {
	if turn == base.White {
		p.H++
	} else {
		p.H--
	}
	return p
}

func pawnSquareToLanding(p base.Point, turn base.Color) base.Point {
	if turn == base.White {
		p.H--
	} else {
		p.H++
	}
	return p
}

func parseCastling(field string) (base.CastlingRights, error) {
	var cr base.CastlingRights
	if field == "-" {
		return cr, nil
	}
	// an empty field would round-trip as "-", reject it
	if field == "" {
		return cr, fmt.Errorf("%w: empty castling field", ErrUnknownCharacter)
	}

	chars := []rune(field)
	if len(chars) > 4 {
		return cr, fmt.Errorf("%w: %q", ErrCastlingTooLong, field)
	}

	seen := make(map[rune]struct{}, len(chars))
	for _, ch := range chars {
		if _, ok := seen[ch]; ok {
			return cr, fmt.Errorf("%w: %q", ErrDuplicateCastling, ch)
		}
		seen[ch] = struct{}{}
	}

	for _, ch := range chars {
		switch ch {
		case 'K':
			cr.WK = true
		case 'Q':
			cr.WQ = true
		case 'k':
			cr.BK = true
		case 'q':
			cr.BQ = true
		default:
			return base.CastlingRights{}, fmt.Errorf("%w: %q in castling field", ErrUnknownCharacter, ch)
		}
	}

	return cr, nil
}

func serializeCastling(cr base.CastlingRights) string {
	cast := ""
	if cr.WK {
		cast += "K"
	}
	if cr.WQ {
		cast += "Q"
	}
	if cr.BK {
		cast += "k"
	}
	if cr.BQ {
		cast += "q"
	}
	if cast == "" {
		cast = "-"
	}
	return cast
}

// parseEnPassant reads the en-passant field as the standard empty
// landing square, with the rank already flipped onto the internal axis
// ('8' is index 0, '1' is index 7).
func parseEnPassant(field string) (*base.Point, error) {
	if field == "-" {
		return nil, nil
	}

	chars := []rune(field)
	if len(chars) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrWrongLength, field)
	}
	if chars[0] < 'a' || chars[0] > 'h' {
		return nil, fmt.Errorf("%w: %q in en-passant field", ErrUnknownCharacter, chars[0])
	}
	if chars[1] < '1' || chars[1] > '8' {
		return nil, fmt.Errorf("%w: %q in en-passant field", ErrUnknownCharacter, chars[1])
	}

	return &base.Point{H: uint8('8' - chars[1]), W: uint8(chars[0] - 'a')}, nil
}

func serializeSquare(p base.Point) string {
	return string([]rune{rune('a' + p.W), rune('8' - p.H)})
}
