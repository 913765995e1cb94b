// Package viewer drives the camera and the per-frame render loop.
package viewer

import (
	"errors"
	"fmt"
	"sort"

	"bank-interior/math"
)

var ErrUnknownView = errors.New("unknown view")

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position math.Vec3
	Target   math.Vec3
}

const (
	ViewTop  = "top"
	ViewSide = "side"
	ViewIso  = "iso"
)

// InitialPose is where the camera starts and where ResetCamera returns to.
var InitialPose = Pose{Position: math.NewVec3(30, 25, 30), Target: math.Vec3Zero}

var poses = map[string]Pose{
	ViewTop:  {Position: math.NewVec3(0, 50, 0.1), Target: math.Vec3Zero},
	ViewSide: {Position: math.NewVec3(0, 15, 45), Target: math.NewVec3(0, 3, 0)},
	ViewIso:  {Position: math.NewVec3(35, 28, 35), Target: math.NewVec3(0, 2, 0)},
}

// PoseFor looks up a named preset.
func PoseFor(name string) (Pose, error) {
	p, ok := poses[name]
	if !ok {
		return Pose{}, fmt.Errorf("%w %q", ErrUnknownView, name)
	}
	return p, nil
}

// Views lists the preset names.
func Views() []string {
	out := make([]string, 0, len(poses))
	for name := range poses {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
