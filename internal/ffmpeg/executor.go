package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"strings"

	"github.com/ogolknev/clip-factory/internal/errors"
)

// ErrStopDecoding signals that frame iteration should stop early without
// reporting an error (used by the sampler's max-samples cap).
var ErrStopDecoding = stderrors.New("stop decoding")

// stderrTailLimit bounds how much captured stderr is attached to errors.
const stderrTailLimit = 2048

// FrameFunc receives each decoded frame with its zero-based index.
// The frame buffer is reused between calls and must not be retained.
type FrameFunc func(index int, frame []byte) error

// Run executes ffmpeg with the given arguments, capturing stderr for
// error reporting.
func Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, DefaultBinary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.NewCancelledError()
		}
		return errors.WrapExecError(DefaultBinary, err, stderrTail(stderr.String()))
	}
	return nil
}

// RunFrames executes ffmpeg with the given arguments and streams fixed-size
// frames from stdout to fn. A trailing partial frame is discarded. Returns
// the number of complete frames delivered to fn, including the frame on
// which fn stopped the iteration.
func RunFrames(ctx context.Context, args []string, frameSize int, fn FrameFunc) (int, error) {
	cmd := exec.CommandContext(ctx, DefaultBinary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, errors.NewCommandStartError(DefaultBinary, err)
	}

	if err := cmd.Start(); err != nil {
		return 0, errors.NewCommandStartError(DefaultBinary, err)
	}

	reader := bufio.NewReaderSize(stdout, frameSize)
	frame := make([]byte, frameSize)
	count := 0
	var stopEarly bool
	var cbErr error

	for {
		_, err := io.ReadFull(reader, frame)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			cbErr = errors.NewIOError("reading decoded frames", err)
			break
		}
		fnErr := fn(count, frame)
		count++
		if fnErr != nil {
			if stderrors.Is(fnErr, ErrStopDecoding) {
				stopEarly = true
			} else {
				cbErr = fnErr
			}
			break
		}
	}

	if cbErr != nil || stopEarly {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		if cbErr != nil {
			return count, cbErr
		}
		return count, nil
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return count, errors.NewCancelledError()
		}
		return count, errors.WrapExecError(DefaultBinary, err, stderrTail(stderr.String()))
	}
	return count, nil
}

// stderrTail returns the last portion of captured stderr, trimmed.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		s = s[len(s)-stderrTailLimit:]
	}
	return s
}
