package viewer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-interior/core"
	"bank-interior/math"
	"bank-interior/scene"
)

type fakeSurface struct {
	renders       int
	width, height int
	ratio         float32
	lastCamera    scene.Camera
	err           error
}

func (f *fakeSurface) Render(_ *scene.Scene, cam *scene.Camera) error {
	if f.err != nil {
		return f.err
	}
	f.renders++
	f.lastCamera = *cam
	return nil
}

func (f *fakeSurface) SetSize(w, h int) { f.width, f.height = w, h }
func (f *fakeSurface) SetPixelRatio(ratio float32) { f.ratio = ratio }

type fakeSource struct {
	limit  int
	swaps  int
	polled int
}

func (f *fakeSource) ShouldClose() bool { return f.swaps >= f.limit }
func (f *fakeSource) PollEvents() { f.polled++ }
func (f *fakeSource) SwapBuffers() { f.swaps++ }

type fakeDevice struct {
	x, y float64
	left bool
}

func (d *fakeDevice) GetCursorPos() (float64, float64) { return d.x, d.y }
func (d *fakeDevice) IsMouseButtonPressed(b int) bool { return b == core.MouseLeft && d.left }
func (d *fakeDevice) GetSize() (int, int) { return 800, 600 }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T) (*SceneContext, *fakeSurface) {
	t.Helper()
	surface := &fakeSurface{}
	sc, err := NewSceneContext(scene.NewScene(), surface, 1280, 720, DefaultCameraConfig(), DefaultControlsConfig(), quietLogger())
	require.NoError(t, err)
	return sc, surface
}

func polar(c *OrbitControls) float32 {
	off := c.Camera().Position.Sub(c.Target)
	return math32.Acos(off.Y / off.Length())
}

func TestInitialPose(t *testing.T) {
	sc, surface := newTestContext(t)
	assert.Equal(t, InitialPose.Position, sc.Camera.Position)
	assert.Equal(t, InitialPose.Target, sc.Camera.Target)
	assert.Equal(t, 1280, surface.width)
	assert.InDelta(t, 1280.0/720.0, sc.Camera.AspectRatio, 1e-6)
}

func TestViewTransitionsAreNotCumulative(t *testing.T) {
	sc, _ := newTestContext(t)
	iso, err := PoseFor(ViewIso)
	require.NoError(t, err)

	sc.Controls.Rotate(0.7, 0.2)
	require.NoError(t, sc.SetView(ViewTop))
	require.NoError(t, sc.SetView(ViewIso))
	assert.Equal(t, iso.Position, sc.Camera.Position)
	assert.Equal(t, iso.Target, sc.Camera.Target)
	assert.Equal(t, iso.Target, sc.Controls.Target)

	// no residual motion either
	require.NoError(t, sc.Tick())
	assert.Equal(t, iso.Position, sc.Camera.Position)
}

func TestResetCameraAlwaysReturnsHome(t *testing.T) {
	sc, surface := newTestContext(t)

	for _, view := range Views() {
		require.NoError(t, sc.SetView(view))
		sc.Controls.Rotate(1.1, -0.4)
		sc.Controls.Dolly(5)
		sc.Controls.Pan(0.1, 0.2)
		for i := 0; i < 10; i++ {
			require.NoError(t, sc.Tick())
		}
		sc.ResetCamera()
		assert.Equal(t, math.NewVec3(30, 25, 30), sc.Camera.Position, "after %s", view)
		assert.Equal(t, math.Vec3Zero, sc.Camera.Target)

		require.NoError(t, sc.Tick())
		assert.Equal(t, math.NewVec3(30, 25, 30), surface.lastCamera.Position)
	}
}

func TestUnknownView(t *testing.T) {
	sc, _ := newTestContext(t)
	before := sc.Camera.Position
	assert.ErrorIs(t, sc.SetView("front"), ErrUnknownView)
	assert.Equal(t, before, sc.Camera.Position)
}

func TestNoSurface(t *testing.T) {
	_, err := NewSceneContext(scene.NewScene(), nil, 800, 600, DefaultCameraConfig(), DefaultControlsConfig(), nil)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestResize(t *testing.T) {
	sc, surface := newTestContext(t)

	sc.Resize(800, 400)
	assert.Equal(t, float32(2), sc.Camera.AspectRatio)
	assert.Equal(t, 800, surface.width)
	assert.Equal(t, 400, surface.height)

	sc.Resize(800, 0)
	sc.Resize(-1, 300)
	assert.Equal(t, float32(2), sc.Camera.AspectRatio)
	assert.Equal(t, 400, surface.height)
}

func TestControlsRespectLimits(t *testing.T) {
	sc, _ := newTestContext(t)
	cfg := sc.Controls.Config

	// push the camera under the floor and far inside the minimum distance
	sc.Controls.Rotate(0, -10)
	sc.Controls.Dolly(200)
	for i := 0; i < 200; i++ {
		sc.Controls.Update()
	}
	assert.LessOrEqual(t, polar(sc.Controls), cfg.MaxPolarAngle+1e-4)
	assert.GreaterOrEqual(t, sc.Camera.Position.Distance(sc.Controls.Target), cfg.MinDistance-1e-3)

	sc.Controls.Dolly(-500)
	sc.Controls.Update()
	assert.LessOrEqual(t, sc.Camera.Position.Distance(sc.Controls.Target), cfg.MaxDistance+1e-3)
}

func TestDampingDecays(t *testing.T) {
	sc, _ := newTestContext(t)
	sc.Controls.Rotate(1, 0)

	assert.True(t, sc.Controls.Update())
	for i := 0; i < 1000 && sc.Controls.Update(); i++ {
	}
	assert.False(t, sc.Controls.Update())
	assert.NotEqual(t, InitialPose.Position, sc.Camera.Position)
}

func TestRunFrames(t *testing.T) {
	sc, surface := newTestContext(t)
	loop := NewLoop(sc, quietLogger())

	require.NoError(t, loop.RunFrames(5))
	assert.Equal(t, 5, surface.renders)
	assert.Equal(t, uint64(5), loop.Frames())

	boom := errors.New("context lost")
	surface.err = boom
	assert.ErrorIs(t, loop.RunFrames(1), boom)
}

func TestRunStopsWithSource(t *testing.T) {
	sc, surface := newTestContext(t)
	loop := NewLoop(sc, quietLogger())
	src := &fakeSource{limit: 3}

	require.NoError(t, loop.Run(context.Background(), src))
	assert.Equal(t, 3, surface.renders)
	assert.Equal(t, 3, src.polled)
}

func TestRunCancellation(t *testing.T) {
	sc, surface := newTestContext(t)
	loop := NewLoop(sc, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, loop.Run(ctx, &fakeSource{limit: 10}), context.Canceled)
	assert.Zero(t, surface.renders)

	loop.Close()
	assert.ErrorIs(t, loop.Run(context.Background(), &fakeSource{limit: 10}), ErrClosed)
	assert.ErrorIs(t, loop.RunFrames(1), ErrClosed)
}

func TestKeyBindings(t *testing.T) {
	sc, _ := newTestContext(t)
	keys := DefaultKeyBindings()
	side, _ := PoseFor(ViewSide)

	assert.True(t, keys.Handle(sc, core.Key2))
	assert.Equal(t, side.Position, sc.Camera.Position)

	assert.True(t, keys.Handle(sc, core.KeyR))
	assert.Equal(t, InitialPose.Position, sc.Camera.Position)

	assert.False(t, keys.Handle(sc, core.KeyEscape))
}

func TestDragOrbits(t *testing.T) {
	sc, _ := newTestContext(t)
	dev := &fakeDevice{x: 100, y: 100}
	loop := NewLoop(sc, quietLogger())
	loop.Input = NewInput(dev)

	require.NoError(t, loop.RunFrames(1))
	assert.Equal(t, InitialPose.Position, sc.Camera.Position)

	dev.left = true
	dev.x = 160
	require.NoError(t, loop.RunFrames(3))
	assert.NotEqual(t, InitialPose.Position, sc.Camera.Position)
	assert.InDelta(t, InitialPose.Position.Length(), sc.Camera.Position.Length(), 1e-3)
}
