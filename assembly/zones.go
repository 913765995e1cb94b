package assembly

import (
	"github.com/chewxy/math32"

	"bank-interior/scene"
)

// Decal heights above the floor. The border sits above the rug so the two
// never share a depth.
const (
	CarpetHeight       = 0.01
	CarpetBorderHeight = 0.015
	RoomFloorHeight    = 0.01
)

const (
	glassWallHeight = 2.5
	frameThickness  = 0.05
)

// MeetingRoom is a glass-walled room open towards +Z with a table and four
// chairs. It anchors at the centre of its floor; default footprint 4 x 3.
func (b *Builder) MeetingRoom(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 4)
	d := pick(p.Depth, 3)
	g := group(KindMeetingRoom, p, 0)

	floor := tilted(part("floor", scene.NewPlane(w, d), pal.RoomFloor, 0, RoomFloorHeight, 0), -math32.Pi/2, 0, 0)
	floor.ReceiveShadow = true
	g.AddChild(
		floor,
		part("glass_left", box(0.05, glassWallHeight, d), pal.Glass, -w/2, glassWallHeight/2, 0),
		part("glass_right", box(0.05, glassWallHeight, d), pal.Glass, w/2, glassWallHeight/2, 0),
		part("glass_back", box(w, glassWallHeight, 0.05), pal.Glass, 0, glassWallHeight/2, -d/2),
		part("frame_left", box(frameThickness, glassWallHeight, d), pal.Metal, -w/2, glassWallHeight/2, 0),
		part("frame_right", box(frameThickness, glassWallHeight, d), pal.Metal, w/2, glassWallHeight/2, 0),
		part("frame_top", box(w, frameThickness, d), pal.Metal, 0, glassWallHeight, 0),
		solid("table", box(w*0.7, 0.1, d*0.6), pal.MeetingTable, 0, 0.45, 0),
	)
	for _, i := range [2]float32{-1, 1} {
		for _, j := range [2]float32{-1, 1} {
			g.AddChild(b.OfficeChair(At(i*w*0.25, j*d*0.2)))
		}
	}
	return g
}

// Partition is a free-standing panel with a red accent band near the top.
// Default size is 0.1 wide by 2.5 high.
func (b *Builder) Partition(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 0.1)
	h := pick(p.Height, 2.5)
	g := group(KindPartition, p, 0)

	panel := solid("panel", box(w, h, 0.1), pal.Partition, 0, h/2, 0)
	panel.ReceiveShadow = true
	g.AddChild(
		panel,
		part("accent", box(w, 0.15, 0.12), pal.Red, 0, h-0.3, 0),
	)
	return g
}

// Carpet is a rug decal with a red circular border. Default size 4 x 6.
func (b *Builder) Carpet(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 4)
	d := pick(p.Depth, 6)
	g := group(KindCarpet, p, 0)

	rug := tilted(part("rug", scene.NewPlane(w, d), pal.Carpet, 0, CarpetHeight, 0), -math32.Pi/2, 0, 0)
	rug.ReceiveShadow = true
	g.AddChild(
		rug,
		tilted(part("border", scene.NewRing(w/2-0.05, w/2, 32), pal.Red, 0, CarpetBorderHeight, 0), -math32.Pi/2, 0, 0),
	)
	return g
}
