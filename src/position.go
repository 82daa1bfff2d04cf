package src

import (
	"fmt"
	"strings"

	"chessfen/src/base"
	"chessfen/src/logic/convert/convfen"
	"chessfen/src/logx"
)

// at first use Create* methods
type PositionBuilder struct {
	pos    *base.Position
	logger logx.Logger
}

func NewBuilderPosition(logger logx.Logger) *PositionBuilder {
	return &PositionBuilder{pos: nil, logger: logger}
}

func (pb *PositionBuilder) CreateFromFEN(fen string) error {
	pb.logger.Debugf("create position by FEN: %v", fen)
	pos, err := convfen.Decode(fen)
	if err != nil {
		return fmt.Errorf("error parse FEN: %w", err)
	}
	pb.pos = pos
	return nil
}

func (pb *PositionBuilder) CreateClassic() {
	pb.logger.Debug("create classic position")
	if err := pb.CreateFromFEN(base.FEN_START_GAME); err != nil {
		pb.logger.Errorf("classic position rejected: %v", err)
	}
}

// Valid reports whether a position has been built. The accessors below
// require it: they must not be called before a successful Create*.
func (pb *PositionBuilder) Valid() bool {
	return pb.pos != nil
}

func (pb *PositionBuilder) Position() *base.Position {
	return pb.pos
}

func (pb *PositionBuilder) CurrentBoard() base.Mailbox {
	return pb.pos.Board.Mailbox
}

func (pb *PositionBuilder) Turn() base.Color {
	return pb.pos.Turn
}

func (pb *PositionBuilder) Castling() base.CastlingRights {
	return pb.pos.Castling
}

// EnPassantTarget returns the standard algebraic landing square from
// the en-passant entry, or "-" when there is none.
func (pb *PositionBuilder) EnPassantTarget() string {
	parts := strings.Split(convfen.Encode(pb.pos), " ")
	return parts[3]
}

// return FEN of this position
func (pb *PositionBuilder) FEN() string {
	return convfen.Encode(pb.pos)
}
