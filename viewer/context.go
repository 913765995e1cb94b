package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"bank-interior/scene"
)

var ErrNoSurface = errors.New("no render surface")

// Surface draws frames. The GL renderer is the production implementation.
type Surface interface {
	Render(s *scene.Scene, camera *scene.Camera) error
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
}

// CameraConfig holds the perspective parameters of the viewing camera.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{FOV: 60, Near: 0.1, Far: 1000}
}

func (c CameraConfig) Validate() error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("camera: fov %v not in (0, 180)", c.FOV)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("camera: near %v / far %v out of order", c.Near, c.Far)
	}
	return nil
}

// SceneContext ties the built scene to its camera, controls and surface.
// It is owned by the render loop's goroutine.
type SceneContext struct {
	Scene    *scene.Scene
	Camera   *scene.Camera
	Controls *OrbitControls
	Surface  Surface

	Width, Height int

	logger *slog.Logger
}

// NewSceneContext places the camera at InitialPose and sizes the surface.
func NewSceneContext(s *scene.Scene, surface Surface, width, height int, camCfg CameraConfig, ctrlCfg ControlsConfig, logger *slog.Logger) (*SceneContext, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if logger == nil {
		logger = slog.Default()
	}

	cam := scene.NewCamera(camCfg.FOV, 1, camCfg.Near, camCfg.Far)
	cam.Position = InitialPose.Position
	cam.LookAt(InitialPose.Target)

	sc := &SceneContext{
		Scene:    s,
		Camera:   cam,
		Controls: NewOrbitControls(cam, ctrlCfg),
		Surface:  surface,
		logger:   logger,
	}
	sc.Resize(width, height)
	return sc, nil
}

// SetView jumps to a named preset. Pending orbit motion is dropped so the
// camera lands exactly on the preset.
func (sc *SceneContext) SetView(name string) error {
	pose, err := PoseFor(name)
	if err != nil {
		return err
	}
	sc.apply(pose)
	sc.logger.Info("view changed", "view", name)
	return nil
}

// ResetCamera returns to InitialPose.
func (sc *SceneContext) ResetCamera() {
	sc.Controls.Reset()
	sc.logger.Info("camera reset")
}

func (sc *SceneContext) apply(p Pose) {
	sc.Controls.Stop()
	sc.Camera.Position = p.Position
	sc.Camera.LookAt(p.Target)
	sc.Controls.Target = p.Target
	sc.Controls.Update()
}

// Tick advances the controls and renders one frame.
func (sc *SceneContext) Tick() error {
	sc.Controls.Update()
	return sc.Surface.Render(sc.Scene, sc.Camera)
}

// Resize updates the camera aspect and the surface size. Empty sizes, as
// reported for minimized windows, are ignored.
func (sc *SceneContext) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		sc.logger.Debug("ignoring empty resize", "width", width, "height", height)
		return
	}
	sc.Width, sc.Height = width, height
	sc.Camera.UpdateAspectRatio(width, height)
	sc.Surface.SetSize(width, height)
	sc.logger.Debug("resized", "width", width, "height", height)
}
