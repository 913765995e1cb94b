package viewer

import (
	"fmt"

	"github.com/chewxy/math32"

	"bank-interior/math"
	"bank-interior/scene"
)

const controlsEpsilon = 1e-6

// ControlsConfig bounds the orbit controls.
type ControlsConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
	MinPolarAngle float32 `yaml:"min_polar_angle"`
	MaxPolarAngle float32 `yaml:"max_polar_angle"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
}

func DefaultControlsConfig() ControlsConfig {
	return ControlsConfig{
		EnableDamping: true,
		DampingFactor: 0.05,
		MinDistance:   15,
		MaxDistance:   80,
		MinPolarAngle: 0,
		MaxPolarAngle: math32.Pi / 2.1,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
	}
}

func (c ControlsConfig) Validate() error {
	if c.EnableDamping && (c.DampingFactor <= 0 || c.DampingFactor > 1) {
		return fmt.Errorf("controls: damping factor %v not in (0, 1]", c.DampingFactor)
	}
	if c.MinDistance < 0 || c.MaxDistance <= c.MinDistance {
		return fmt.Errorf("controls: distance range [%v, %v] is empty", c.MinDistance, c.MaxDistance)
	}
	if c.MinPolarAngle < 0 || c.MaxPolarAngle > math32.Pi || c.MaxPolarAngle < c.MinPolarAngle {
		return fmt.Errorf("controls: polar range [%v, %v] outside [0, pi]", c.MinPolarAngle, c.MaxPolarAngle)
	}
	return nil
}

// OrbitControls orbits a camera around a target point on a sphere, with
// optional damping of user input.
type OrbitControls struct {
	Config ControlsConfig
	Target math.Vec3

	camera *scene.Camera

	// pending input
	deltaTheta, deltaPhi float32
	scale                float32
	pan                  math.Vec3

	savedTarget   math.Vec3
	savedPosition math.Vec3
}

func NewOrbitControls(camera *scene.Camera, cfg ControlsConfig) *OrbitControls {
	c := &OrbitControls{
		Config: cfg,
		Target: camera.Target,
		camera: camera,
		scale:  1,
	}
	c.SaveState()
	return c
}

func (c *OrbitControls) Camera() *scene.Camera { return c.camera }

// SaveState records the current pose as the one Reset returns to.
func (c *OrbitControls) SaveState() {
	c.savedTarget = c.Target
	c.savedPosition = c.camera.Position
}

// Reset restores the saved pose and drops any pending motion.
func (c *OrbitControls) Reset() {
	c.Stop()
	c.Target = c.savedTarget
	c.camera.Position = c.savedPosition
	c.camera.LookAt(c.Target)
	c.Update()
}

// Stop discards pending and damped motion.
func (c *OrbitControls) Stop() {
	c.deltaTheta, c.deltaPhi = 0, 0
	c.scale = 1
	c.pan = math.Vec3Zero
}

// Rotate queues an orbit by the given azimuth and polar angles in radians.
func (c *OrbitControls) Rotate(theta, phi float32) {
	c.deltaTheta -= theta * c.Config.RotateSpeed
	c.deltaPhi -= phi * c.Config.RotateSpeed
}

// Dolly queues a zoom; steps > 0 move closer.
func (c *OrbitControls) Dolly(steps float32) {
	c.scale *= math32.Pow(0.95, steps*c.Config.ZoomSpeed)
}

// Pan queues a move of the target in the view plane, in screen fractions.
func (c *OrbitControls) Pan(dx, dy float32) {
	offset := c.camera.Position.Sub(c.Target)
	dist := offset.Length() * math32.Tan(c.camera.FOV*math32.Pi/360)

	forward := c.camera.GetForward()
	right := forward.Cross(c.camera.Up).Normalize()
	up := right.Cross(forward).Normalize()

	move := right.Mul(-2 * dx * dist * c.Config.PanSpeed).Add(up.Mul(2 * dy * dist * c.Config.PanSpeed))
	c.pan = c.pan.Add(move)
}

func (c *OrbitControls) pending() bool {
	return c.deltaTheta != 0 || c.deltaPhi != 0 || c.scale != 1 || c.pan != math.Vec3Zero
}

// Update applies pending input and the distance and polar limits, then
// aims the camera at Target. It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	cfg := c.Config
	offset := c.camera.Position.Sub(c.Target)
	radius := offset.Length()
	theta := math32.Atan2(offset.X, offset.Z)
	phi := float32(0)
	if radius > 0 {
		phi = math32.Acos(clamp(offset.Y/radius, -1, 1))
	}

	factor := float32(1)
	if cfg.EnableDamping {
		factor = cfg.DampingFactor
	}

	newTheta := theta + c.deltaTheta*factor
	newPhi := clamp(phi+c.deltaPhi*factor, cfg.MinPolarAngle, cfg.MaxPolarAngle)
	newPhi = clamp(newPhi, controlsEpsilon, math32.Pi-controlsEpsilon)
	newRadius := clamp(radius*c.scale, cfg.MinDistance, cfg.MaxDistance)
	target := c.Target.Add(c.pan.Mul(factor))

	if !c.pending() && newPhi == phi && newRadius == radius {
		// nothing to apply; keep the exact pose
		c.camera.LookAt(c.Target)
		return false
	}

	sinPhi, cosPhi := math32.Sincos(newPhi)
	sinTheta, cosTheta := math32.Sincos(newTheta)
	position := target.Add(math.NewVec3(
		newRadius*sinPhi*sinTheta,
		newRadius*cosPhi,
		newRadius*sinPhi*cosTheta,
	))

	moved := position.Distance(c.camera.Position) > controlsEpsilon || target.Distance(c.Target) > controlsEpsilon
	c.Target = target
	c.camera.Position = position
	c.camera.LookAt(target)

	if cfg.EnableDamping {
		c.deltaTheta *= 1 - cfg.DampingFactor
		c.deltaPhi *= 1 - cfg.DampingFactor
		c.pan = c.pan.Mul(1 - cfg.DampingFactor)
		if math32.Abs(c.deltaTheta) < controlsEpsilon && math32.Abs(c.deltaPhi) < controlsEpsilon && c.pan.Length() < controlsEpsilon {
			c.deltaTheta, c.deltaPhi, c.pan = 0, 0, math.Vec3Zero
		}
	} else {
		c.deltaTheta, c.deltaPhi, c.pan = 0, 0, math.Vec3Zero
	}
	c.scale = 1
	return moved
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
