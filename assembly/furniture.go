package assembly

import (
	"github.com/chewxy/math32"

	"bank-interior/scene"
)

// OfficeChair anchors at the floor under the seat centre; the sitter faces +Z.
func (b *Builder) OfficeChair(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindChair, p, 0)

	g.AddChild(
		solid("seat", box(0.5, 0.08, 0.5), pal.Upholstery, 0, 0.45, 0),
		solid("back", box(0.5, 0.6, 0.08), pal.Upholstery, 0, 0.75, -0.21),
		tilted(part("star_base", cylinder(0.15, 0.05, 5), pal.Metal, 0, 0.025, 0), 0, 0, math32.Pi/2),
	)
	wheel := scene.NewSphere(0.03, 8, 8)
	for i := 0; i < 5; i++ {
		angle := float32(i) * 2 * math32.Pi / 5
		s, c := math32.Sincos(angle)
		g.AddChild(part("wheel", wheel, pal.Black, c*0.12, 0.01, s*0.12))
	}
	return g
}

// CashDesk is a teller counter with monitor, peripherals and the teller's
// chair behind it. It anchors at the floor centre of the counter footprint;
// customers stand on the +Z side.
func (b *Builder) CashDesk(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindCashDesk, p, 0)

	g.AddChild(
		solid("base", box(2.2, 0.15, 1.4), pal.Black, 0, 0.075, 0),
		solid("top", box(2.2, 0.08, 1.4), pal.CounterTop, 0, 0.85, 0),
		solid("side_left", box(0.1, 0.7, 1.4), pal.Black, -1.05, 0.5, 0),
		solid("side_right", box(0.1, 0.7, 1.4), pal.Black, 1.05, 0.5, 0),
		part("monitor_base", box(0.5, 0.1, 0.3), pal.Black, 0.4, 0.9, 0),
		part("monitor_arm", box(0.08, 0.3, 0.08), pal.Metal, 0.4, 1.15, 0),
		solid("monitor", box(0.7, 0.5, 0.05), pal.DeskScreen, 0.4, 1.4, 0),
		part("accent", box(2.2, 0.12, 0.08), pal.Red, 0, 0.89, 0.7),
		part("keyboard", box(0.4, 0.02, 0.2), pal.Black, -0.3, 0.87, 0.3),
		part("card_reader", box(0.25, 0.1, 0.2), pal.Black, -0.7, 0.87, 0.3),
		part("printer", box(0.3, 0.15, 0.25), pal.Black, 0.8, 0.9, 0.3),
		b.OfficeChair(At(0, -0.8)),
	)
	return g
}

// ConsultationTable seats two advisers on the -Z side and carries a tablet
// and a small side table.
func (b *Builder) ConsultationTable(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindConsultationTable, p, 0)

	g.AddChild(solid("top", box(1.8, 0.1, 1.2), pal.TableTop, 0, 0.45, 0))
	leg := cylinder(0.03, 0.45, 16)
	for _, xz := range [4][2]float32{{-0.8, -0.5}, {0.8, -0.5}, {-0.8, 0.5}, {0.8, 0.5}} {
		g.AddChild(solid("leg", leg, pal.Metal, xz[0], 0.225, xz[1]))
	}
	g.AddChild(
		tilted(part("tablet", box(0.35, 0.025, 0.45), pal.Tablet, 0.3, 0.48, 0), -0.25, 0, 0),
		tilted(part("tablet_screen", box(0.32, 0.001, 0.42), pal.TabletScreen, 0.3, 0.482, 0), -0.25, 0, 0),
		b.OfficeChair(At(-0.6, -0.9)),
		b.OfficeChair(At(0.6, -0.9)),
		solid("side_table", cylinder(0.25, 0.05, 16), pal.SideTable, 0, 0.25, 1.2),
	)
	return g
}

// Sofa faces +Z with its back along -Z.
func (b *Builder) Sofa(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindSofa, p, 0)

	g.AddChild(
		solid("base", box(1.6, 0.15, 0.7), pal.SofaBase, 0, 0.075, 0),
		solid("seat", box(1.6, 0.2, 0.7), pal.Red, 0, 0.25, 0),
		solid("back", box(1.6, 0.9, 0.12), pal.Red, 0, 0.7, -0.29),
		solid("arm_left", box(0.12, 0.5, 0.7), pal.Black, -0.74, 0.5, 0),
		solid("arm_right", box(0.12, 0.5, 0.7), pal.Black, 0.74, 0.5, 0),
		part("pillow_left", box(0.7, 0.15, 0.6), pal.Pillow, -0.3, 0.35, 0),
		part("pillow_right", box(0.7, 0.15, 0.6), pal.Pillow, 0.3, 0.35, 0),
	)
	return g
}

// CoffeeTable is a round pedestal table.
func (b *Builder) CoffeeTable(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindCoffeeTable, p, 0)

	g.AddChild(
		solid("top", cylinder(0.3, 0.05, 16), pal.CoffeeTop, 0, 0.4, 0),
		part("leg", cylinder(0.04, 0.4, 16), pal.Metal, 0, 0.2, 0),
	)
	return g
}

// Plant is a tapered pot with a conical shrub.
func (b *Builder) Plant(p Placement) *scene.Node {
	pal := b.Palette
	g := group(KindPlant, p, 0)

	g.AddChild(
		solid("pot", scene.NewCylinder(0.15, 0.12, 0.2, 16), pal.PlantPot, 0, 0.1, 0),
		solid("foliage", scene.NewCone(0.2, 0.4, 8), pal.Foliage, 0, 0.4, 0),
	)
	return g
}

// Cabinet defaults to 0.8 x 2 x 0.6 with its doors on the +Z face.
func (b *Builder) Cabinet(p Placement) *scene.Node {
	pal := b.Palette
	w := pick(p.Width, 0.8)
	h := pick(p.Height, 2)
	d := pick(p.Depth, 0.6)
	g := group(KindCabinet, p, 0)

	body := solid("body", box(w, h, d), pal.Cabinet, 0, h/2, 0)
	body.ReceiveShadow = true
	g.AddChild(
		body,
		part("handle", box(0.15, 0.02, 0.05), pal.Metal, w/2-0.1, h/2, d/2+0.01),
	)
	return g
}
