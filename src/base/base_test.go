package base

import "testing"

func TestColor(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() does not flip the color")
	}
	if White.String() != "white" || Black.String() != "black" {
		t.Error("unexpected color names")
	}
}

func TestPieceHelpers(t *testing.T) {
	whites := []Piece{WPawn, WKnight, WBishop, WRook, WQueen, WKing}
	blacks := []Piece{BPawn, BKnight, BBishop, BRook, BQueen, BKing}

	for _, p := range whites {
		if !PieceIsWhite(p) || PieceIsBlack(p) {
			t.Errorf("%v misclassified", p)
		}
		if c, ok := PieceColor(p); !ok || c != White {
			t.Errorf("PieceColor(%v) = %v, %v", p, c, ok)
		}
	}
	for _, p := range blacks {
		if !PieceIsBlack(p) || PieceIsWhite(p) {
			t.Errorf("%v misclassified", p)
		}
		if c, ok := PieceColor(p); !ok || c != Black {
			t.Errorf("PieceColor(%v) = %v, %v", p, c, ok)
		}
	}
	for _, p := range []Piece{EmptyPiece, InvalidPiece} {
		if _, ok := PieceColor(p); ok {
			t.Errorf("PieceColor(%v) reported a color", p)
		}
	}
	if !PieceIsPawn(WPawn) || !PieceIsPawn(BPawn) || PieceIsPawn(WQueen) {
		t.Error("PieceIsPawn misclassified")
	}
}

func TestRuneConversionRoundTrip(t *testing.T) {
	for _, r := range "PNBRQKpnbrqk" {
		p := ConvertPieceFromRune(r)
		if p == InvalidPiece {
			t.Fatalf("ConvertPieceFromRune(%q) invalid", r)
		}
		if back := ConvertRuneFromPiece(p); back != r {
			t.Errorf("round trip %q -> %v -> %q", r, p, back)
		}
	}
	if ConvertPieceFromRune('x') != InvalidPiece {
		t.Error("'x' accepted as piece")
	}
	if ConvertRuneFromPiece(EmptyPiece) != '.' {
		t.Error("empty piece should render as '.'")
	}
}

func TestPointIndexConversion(t *testing.T) {
	for i := 0; i < 64; i++ {
		if got := ConvPointToIndex(ConvIndexToPoint(i)); got != i {
			t.Errorf("index %d round trips to %d", i, got)
		}
	}
	if !IsValidPoint(Point{H: 7, W: 7}) || IsValidPoint(Point{H: 8, W: 0}) || IsValidPoint(Point{H: 0, W: 8}) {
		t.Error("IsValidPoint boundary wrong")
	}
}

func TestCastlingRightsNone(t *testing.T) {
	if !(CastlingRights{}).None() {
		t.Error("zero value should report none")
	}
	for _, cr := range []CastlingRights{{WK: true}, {WQ: true}, {BK: true}, {BQ: true}} {
		if cr.None() {
			t.Errorf("%+v reported none", cr)
		}
	}
}
