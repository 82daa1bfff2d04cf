package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"chessfen/src"
	"chessfen/src/base"
	"chessfen/src/logx"
)

func TestRunLineModePiped(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pb := src.NewBuilderPosition(logx.NewLogx(io.Discard, zapcore.ErrorLevel, false))
	pb.CreateClassic()

	var out bytes.Buffer
	draws := 0
	c := &CLIProcessing{
		builder: pb,
		draw:    func(mb base.Mailbox) { draws++ },
		in:      r,
		out:     &out,
	}

	go func() {
		defer w.Close()
		io.WriteString(w, "8/8/8/8/2P5/8/8/8 b - c3\n")
		io.WriteString(w, "fen\n")
		io.WriteString(w, "not a fen at all\n")
		io.WriteString(w, "board\n")
		io.WriteString(w, "q\n")
	}()

	if err := c.RunLineMode(); err != nil {
		t.Fatal(err)
	}

	if draws < 3 {
		t.Errorf("board drawn %d times, want at least 3", draws)
	}
	output := out.String()
	if !strings.Contains(output, "8/8/8/8/2P5/8/8/8 b - c3") {
		t.Error("loaded FEN not echoed back")
	}
	if !strings.Contains(output, "Invalid FEN") {
		t.Error("bad line not reported")
	}
	if got := pb.FEN(); got != "8/8/8/8/2P5/8/8/8 b - c3" {
		t.Errorf("builder FEN = %q after session", got)
	}
}
