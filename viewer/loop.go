package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrClosed = errors.New("render loop closed")

// FrameSource paces the loop. core.Window is the production source: polling
// its events and swapping its buffers blocks until the next vsync.
type FrameSource interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
}

const statsEvery = 300

// Loop renders a SceneContext once per frame.
type Loop struct {
	Context *SceneContext
	Input   *Input

	frames  uint64
	elapsed time.Duration
	closed  bool
	logger  *slog.Logger
}

func NewLoop(sc *SceneContext, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{Context: sc, logger: logger}
}

// Frames is the number of frames rendered so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Close stops the loop after the current frame.
func (l *Loop) Close() { l.closed = true }

func (l *Loop) frame() error {
	start := time.Now()
	if l.Input != nil {
		l.Input.Update()
		l.Input.Apply(l.Context.Controls)
	}
	if err := l.Context.Tick(); err != nil {
		return fmt.Errorf("frame %d: %w", l.frames, err)
	}
	l.frames++
	l.elapsed += time.Since(start)
	if l.frames%statsEvery == 0 {
		l.logger.Debug("frame stats", "frames", l.frames, "avg", l.elapsed/statsEvery)
		l.elapsed = 0
	}
	return nil
}

// Run renders until ctx is cancelled, the source asks to close, Close is
// called or a frame fails.
func (l *Loop) Run(ctx context.Context, src FrameSource) error {
	if l.closed {
		return ErrClosed
	}
	for !l.closed {
		if err := ctx.Err(); err != nil {
			return err
		}
		if src.ShouldClose() {
			return nil
		}
		src.PollEvents()
		if err := l.frame(); err != nil {
			return err
		}
		src.SwapBuffers()
	}
	return nil
}

// RunFrames renders exactly n frames with no pacing.
func (l *Loop) RunFrames(n int) error {
	if l.closed {
		return ErrClosed
	}
	for i := 0; i < n; i++ {
		if err := l.frame(); err != nil {
			return err
		}
	}
	return nil
}
