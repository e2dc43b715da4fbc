package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mHello\x1b[0m  \r\nworld\n\n\x1b[2J\x1b[Hsecond")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "Hello\nworld" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	if frames[1].Index != 1 || frames[1].Plain != "second" {
		t.Fatalf("unexpected second frame %#v", frames[1])
	}
}

func TestRecordingLookups(t *testing.T) {
	rec := &Recording{
		Raw:    []byte("\x1b[32m1,234\x1b[0m\r\n"),
		Frames: []Frame{{Index: 0, Plain: "loading"}, {Index: 1, Plain: "1,234 ready"}},
	}
	frame, ok := rec.FrameContaining("1,234")
	if !ok || frame.Index != 1 {
		t.Fatalf("unexpected frame lookup: %#v %v", frame, ok)
	}
	if _, ok := rec.FrameContaining("missing"); ok {
		t.Fatal("lookup should fail for absent text")
	}
	if got := rec.PlainText(); got != "1,234\n" {
		t.Fatalf("unexpected plain text %q", got)
	}
	last, ok := rec.FinalFrame()
	if !ok || last.Index != 1 {
		t.Fatalf("unexpected final frame %#v", last)
	}
	var empty *Recording
	if _, ok := empty.FinalFrame(); ok {
		t.Fatal("nil recording has no frames")
	}
}

func TestTerminalResponderAnswersQueries(t *testing.T) {
	var out bytes.Buffer
	responder := newTerminalResponder(&out)
	responder.Process([]byte("abc\x1b[6"))
	responder.Process([]byte("n\x1b]11;?\x07"))
	want := "\x1b[1;1R\x1b]11;rgb:0000/0000/0000\x07"
	if out.String() != want {
		t.Fatalf("unexpected replies %q", out.String())
	}
}
