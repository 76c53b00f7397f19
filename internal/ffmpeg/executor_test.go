package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// putFakeFFmpeg places a stand-in ffmpeg script on PATH that writes
// the given number of bytes of zeroes to stdout.
func putFakeFFmpeg(t *testing.T, stdoutBytes int) {
	t.Helper()
	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\nhead -c %d /dev/zero\n", stdoutBytes)
	if err := os.WriteFile(filepath.Join(dir, "ffmpeg"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunFramesDeliversCompleteFrames(t *testing.T) {
	const frameSize = 4
	putFakeFFmpeg(t, 3*frameSize)

	var calls int
	count, err := RunFrames(context.Background(), nil, frameSize, func(index int, frame []byte) error {
		if index != calls {
			t.Errorf("index = %d, want %d", index, calls)
		}
		if len(frame) != frameSize {
			t.Errorf("frame size = %d, want %d", len(frame), frameSize)
		}
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if count != 3 || calls != 3 {
		t.Errorf("count = %d, calls = %d, want 3 each", count, calls)
	}
}

func TestRunFramesDiscardsPartialFrame(t *testing.T) {
	const frameSize = 4
	putFakeFFmpeg(t, 2*frameSize+1)

	count, err := RunFrames(context.Background(), nil, frameSize, func(int, []byte) error {
		return nil
	})
	if err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestRunFramesCountsTheStoppingFrame(t *testing.T) {
	const frameSize = 4
	putFakeFFmpeg(t, 5*frameSize)

	var calls int
	count, err := RunFrames(context.Background(), nil, frameSize, func(index int, _ []byte) error {
		calls++
		if index == 1 {
			return ErrStopDecoding
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	// The frame that triggered the stop was still delivered.
	if count != 2 || calls != 2 {
		t.Errorf("count = %d, calls = %d, want 2 each", count, calls)
	}
}

func TestRunFramesStopOnFirstFrame(t *testing.T) {
	const frameSize = 4
	putFakeFFmpeg(t, 2*frameSize)

	count, err := RunFrames(context.Background(), nil, frameSize, func(int, []byte) error {
		return ErrStopDecoding
	})
	if err != nil {
		t.Fatalf("RunFrames() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
