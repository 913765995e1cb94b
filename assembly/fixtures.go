package assembly

import (
	"github.com/chewxy/math32"

	"bank-interior/scene"
)

// Default mount heights for wall and ceiling fixtures.
const (
	DefaultScreenElevation = 3.5
	DefaultSignElevation   = 1.5
	DefaultCeilingHeight   = 7
	DefaultSconceElevation = 4.5
)

// WallScreen anchors at the centre of the display, which faces +Z. Default
// size is 2.5 x 1.5.
func (b *Builder) WallScreen(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 2.5)
	h := pick(p.Height, 1.5)
	g := group(KindWallScreen, p, pick(p.Elevation, DefaultScreenElevation))

	g.AddChild(
		solid("display", box(w, h, 0.08), pal.WallScreen, 0, 0, 0),
		part("frame", box(w+0.1, h+0.1, 0.1), pal.Red, 0, 0, -0.01),
		part("mount", box(w+0.2, 0.15, 0.15), pal.Metal, 0, -h/2-0.1, 0.08),
	)
	return g
}

// Terminal is a self-service kiosk facing +Z.
func (b *Builder) Terminal(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindTerminal, p, 0)

	g.AddChild(
		solid("base", box(1, 0.2, 0.8), pal.Black, 0, 0.1, 0),
		solid("body", box(0.9, 1.8, 0.7), pal.Black, 0, 1, 0),
		part("display", box(0.7, 0.5, 0.05), pal.TerminalScreen, 0, 1.5, 0.35),
		part("accent", box(0.9, 0.15, 0.08), pal.Red, 0, 0.3, 0.35),
		part("touchpad", box(0.4, 0.05, 0.3), pal.Touchpad, 0, 0.8, 0.35),
		part("receipt_printer", box(0.3, 0.2, 0.25), pal.Black, 0.3, 0.5, 0.35),
	)
	return g
}

// Reception is the front desk with a card scanner and the queue display;
// visitors approach from +Z.
func (b *Builder) Reception(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindReception, p, 0)

	g.AddChild(
		solid("base", box(5, 0.2, 2), pal.Black, 0, 0.1, 0),
		solid("top", box(5, 0.1, 2), pal.CounterTop, 0, 1.1, 0),
		solid("front", box(5, 1, 0.1), pal.Panel, 0, 0.6, 1),
		part("accent", box(5.2, 0.2, 0.15), pal.Red, 0, 1.15, 0.95),
		tilted(part("scanner_base", cylinder(0.2, 0.15, 16), pal.Metal, 0, 0.6, 1.1), math32.Pi/2, 0, 0),
		tilted(part("scanner_top", cylinder(0.18, 0.05, 16), pal.ScannerGlow, 0, 0.625, 1.1), math32.Pi/2, 0, 0),
		part("queue_display", box(1.5, 0.8, 0.1), pal.QueueDisplay, 1.8, 1.5, 0.95),
	)
	return g
}

// Sign is a red board with a white band for lettering, centred on its
// anchor and facing +Z. Default size is 2 x 0.6.
func (b *Builder) Sign(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 2)
	h := pick(p.Height, 0.6)
	g := group(KindSign, p, pick(p.Elevation, DefaultSignElevation))

	g.AddChild(
		part("board", box(w, h, 0.1), pal.Red, 0, 0, 0),
		part("band", box(w-0.2, h*0.4, 0.11), pal.SignText, 0, 0, 0.01),
	)
	return g
}

// CeilingLight hangs from its anchor on the ceiling plane.
func (b *Builder) CeilingLight(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindCeilingLight, p, pick(p.Elevation, DefaultCeilingHeight))

	g.AddChild(
		part("housing", cylinder(0.4, 0.1, 16), pal.Metal, 0, -0.05, 0),
		part("diffuser", cylinder(0.35, 0.05, 16), pal.LampGlass, 0, -0.075, 0),
	)
	return g
}

// WallLight is a sconce whose back plate sits on the wall at the anchor and
// projects along +Z.
func (b *Builder) WallLight(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindWallLight, p, pick(p.Elevation, DefaultSconceElevation))

	g.AddChild(
		part("plate", box(0.25, 0.45, 0.04), pal.Metal, 0, 0, 0.02),
		part("arm", box(0.04, 0.04, 0.12), pal.Metal, 0, 0, 0.1),
		part("shade", scene.NewCylinder(0.12, 0.09, 0.3, 16), pal.SconceGlass, 0, 0, 0.22),
		part("cap", cylinder(0.13, 0.02, 16), pal.Metal, 0, 0.16, 0.22),
	)
	return g
}

// Doorway is a framed door on the floor; default opening is 2 x 2.5.
func (b *Builder) Doorway(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 2)
	h := pick(p.Height, 2.5)
	g := group(KindDoorway, p, 0)

	g.AddChild(
		part("frame", box(w+0.2, h+0.2, 0.3), pal.Metal, 0, h/2, 0),
		solid("door", box(w, h, 0.1), pal.Door, 0, h/2, 0.1),
		part("handle", box(0.1, 0.02, 0.05), pal.Metal, w/2-0.15, h/2, 0.15),
	)
	return g
}
