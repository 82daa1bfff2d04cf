package base

// Forsyth–Edwards Notation, four-field form
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

type Piece uint8

const (
	EmptyPiece Piece = iota
	WPawn
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	InvalidPiece
)

type Mailbox [64]Piece

// Point addresses a tile on the internal grid. H is the internal rank
// index and runs opposite to standard rank numbering: H=0 is rank 8,
// H=7 is rank 1. W is the file, 0 for 'a' through 7 for 'h'.
type Point struct {
	H uint8
	W uint8
}

// CastlingRights holds the four independent castling flags. Nothing here
// checks that the matching king or rook still stands on its home square.
type CastlingRights struct {
	WK bool
	WQ bool
	BK bool
	BQ bool
}

func (cr CastlingRights) None() bool {
	return !cr.WK && !cr.WQ && !cr.BK && !cr.BQ
}

// Position is a full decoded FEN position. EnPassant, when set, is the
// tile occupied by the pawn that just advanced two squares, not the
// empty square a capturing pawn would land on.
type Position struct {
	Board     Board
	Turn      Color
	Castling  CastlingRights
	EnPassant *Point
}

func ConvPointToIndex(p Point) int {
	return int(p.H)*8 + int(p.W)
}

func ConvIndexToPoint(i int) Point {
	return Point{H: uint8(i / 8), W: uint8(i % 8)}
}

func IsValidPoint(p Point) bool {
	return !(p.H > 7 || p.W > 7)
}

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

func PieceColor(p Piece) (Color, bool) {
	switch {
	case PieceIsWhite(p):
		return White, true
	case PieceIsBlack(p):
		return Black, true
	default:
		return White, false
	}
}

func PieceIsPawn(p Piece) bool {
	return p == WPawn || p == BPawn
}

func ConvertPieceFromRune(r rune) Piece {
	switch r {
	case 'P':
		return WPawn
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'R':
		return WRook
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'r':
		return BRook
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}
