package materials

import (
	"fmt"
	"sort"

	"github.com/jinzhu/copier"

	"bank-interior/core"
	"bank-interior/scene"
)

// Brand colours of the branch interior.
var (
	Red       = core.ColorHex(0xEF3124)
	Black     = core.ColorHex(0x000000)
	White     = core.ColorHex(0xFFFFFF)
	Gray      = core.ColorHex(0xCCCCCC)
	DarkGray  = core.ColorHex(0x666666)
	LightGray = core.ColorHex(0xE8E8E8)
	MetalGray = core.ColorHex(0x888888)
)

// Palette is the fixed set of shared descriptors. Assemblies take pointers
// from it and never write through them.
type Palette struct {
	// Shell
	Floor   *scene.Material
	Wall    *scene.Material
	Ceiling *scene.Material
	Carpet  *scene.Material

	// Base finishes
	Red   *scene.Material
	Black *scene.Material
	Metal *scene.Material

	// Zone variants
	Partition    *scene.Material
	CounterTop   *scene.Material
	Upholstery   *scene.Material
	SofaBase     *scene.Material
	Pillow       *scene.Material
	TableTop     *scene.Material
	Tablet       *scene.Material
	SideTable    *scene.Material
	CoffeeTop    *scene.Material
	PlantPot     *scene.Material
	Foliage      *scene.Material
	Touchpad     *scene.Material
	Panel        *scene.Material
	SignText     *scene.Material
	Cabinet      *scene.Material
	RoomFloor    *scene.Material
	Glass        *scene.Material
	MeetingTable *scene.Material
	Door         *scene.Material

	// Emissive
	LampGlass      *scene.Material
	SconceGlass    *scene.Material
	DeskScreen     *scene.Material
	TabletScreen   *scene.Material
	WallScreen     *scene.Material
	TerminalScreen *scene.Material
	ScannerGlow    *scene.Material
	QueueDisplay   *scene.Material

	byName map[string]*scene.Material
}

// Variant copies base and applies edit to the copy. base is left untouched.
func Variant(base *scene.Material, name string, edit func(m *scene.Material)) *scene.Material {
	out := &scene.Material{}
	if err := copier.CopyWithOption(out, base, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("materials: copy %s: %v", base.Name, err))
	}
	out.Name = name
	if edit != nil {
		edit(out)
	}
	return out
}

func glow(base *scene.Material, name string, emissive core.Color, intensity float32) *scene.Material {
	return Variant(base, name, func(m *scene.Material) {
		m.Emissive = emissive
		m.EmissiveIntensity = intensity
	})
}

func seeThrough(base *scene.Material, name string, opacity float32) *scene.Material {
	return Variant(base, name, func(m *scene.Material) {
		m.Transparent = true
		m.Opacity = opacity
	})
}

// Default builds the branch palette. Each call returns fresh descriptors.
func Default() *Palette {
	p := &Palette{}

	// standard material defaults: roughness 1, metalness 0
	matte := func(name string, c core.Color) *scene.Material {
		return scene.NewMaterial(name, c, 1, 0)
	}

	p.Floor = scene.NewMaterial("floor", White, 0.8, 0.1)
	p.Wall = scene.NewMaterial("wall", White, 0.9, 0)
	p.Ceiling = scene.NewMaterial("ceiling", core.ColorHex(0xFAFAFA), 0.8, 0.1)
	p.Carpet = scene.NewMaterial("carpet", core.ColorHex(0x2A2A2A), 0.9, 0)

	p.Red = scene.NewMaterial("red", Red, 0.6, 0.3)
	p.Black = scene.NewMaterial("black", Black, 0.4, 0.7)
	p.Metal = scene.NewMaterial("metal", MetalGray, 0.3, 0.9)

	p.Partition = scene.NewMaterial("partition", LightGray, 0.7, 0.2)
	p.CounterTop = scene.NewMaterial("counter_top", White, 0.3, 0.1)
	p.Upholstery = scene.NewMaterial("upholstery", Black, 0.6, 0)
	p.SofaBase = scene.NewMaterial("sofa_base", Black, 0.7, 0)
	p.Pillow = scene.NewMaterial("pillow", core.ColorHex(0xCC0000), 0.8, 0)
	p.TableTop = scene.NewMaterial("table_top", White, 0.4, 0.1)
	p.Tablet = scene.NewMaterial("tablet", Black, 0.3, 0.5)
	p.SideTable = scene.NewMaterial("side_table", Black, 0.4, 0.6)
	p.CoffeeTop = scene.NewMaterial("coffee_top", Black, 0.3, 0.7)
	p.PlantPot = scene.NewMaterial("plant_pot", Black, 0.6, 0)
	p.Foliage = scene.NewMaterial("foliage", core.ColorHex(0x2D5016), 0.9, 0)
	p.Touchpad = scene.NewMaterial("touchpad", core.ColorHex(0x333333), 0.2, 0.8)
	p.Panel = scene.NewMaterial("panel", White, 0.6, 0)
	p.SignText = matte("sign_text", White)
	p.Cabinet = scene.NewMaterial("cabinet", White, 0.7, 0.1)
	p.RoomFloor = scene.NewMaterial("room_floor", core.ColorHex(0x2A2A2A), 0.8, 0)
	p.Glass = seeThrough(scene.NewMaterial("glass", White, 0.1, 0.8), "glass", 0.3)
	p.MeetingTable = Variant(p.Panel, "meeting_table", func(m *scene.Material) { m.Roughness = 0.4 })
	p.Door = Variant(p.Panel, "door", nil)

	screen := matte("screen", core.ColorHex(0x1A1A1A))
	p.LampGlass = seeThrough(glow(matte("lamp_glass", White), "lamp_glass", White, 0.5), "lamp_glass", 0.8)
	p.SconceGlass = seeThrough(glow(matte("sconce_glass", White), "sconce_glass", core.ColorHex(0xFFF4E0), 0.6), "sconce_glass", 0.85)
	p.DeskScreen = glow(screen, "desk_screen", core.ColorHex(0x222222), 0.3)
	p.TabletScreen = glow(screen, "tablet_screen", core.ColorHex(0x4444FF), 0.4)
	p.WallScreen = glow(matte("wall_screen", core.ColorHex(0x0A0A0A)), "wall_screen", core.ColorHex(0x222222), 0.5)
	p.TerminalScreen = glow(screen, "terminal_screen", core.ColorHex(0x333333), 0.4)
	p.ScannerGlow = glow(screen, "scanner_glow", core.ColorHex(0x00FF00), 0.3)
	p.QueueDisplay = glow(matte("queue_display", Black), "queue_display", core.ColorHex(0xFF0000), 0.6)

	p.index()
	return p
}

func (p *Palette) all() []*scene.Material {
	return []*scene.Material{
		p.Floor, p.Wall, p.Ceiling, p.Carpet,
		p.Red, p.Black, p.Metal,
		p.Partition, p.CounterTop, p.Upholstery, p.SofaBase, p.Pillow,
		p.TableTop, p.Tablet, p.SideTable, p.CoffeeTop, p.PlantPot, p.Foliage,
		p.Touchpad, p.Panel, p.SignText, p.Cabinet, p.RoomFloor, p.Glass,
		p.MeetingTable, p.Door,
		p.LampGlass, p.SconceGlass, p.DeskScreen, p.TabletScreen, p.WallScreen,
		p.TerminalScreen, p.ScannerGlow, p.QueueDisplay,
	}
}

func (p *Palette) index() {
	p.byName = make(map[string]*scene.Material)
	for _, m := range p.all() {
		p.byName[m.Name] = m
	}
}

// Get looks a descriptor up by name.
func (p *Palette) Get(name string) (*scene.Material, bool) {
	m, ok := p.byName[name]
	return m, ok
}

// Names lists every descriptor name in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override replaces the colour of a named descriptor in place. It is meant
// for configuration before any assembly has been generated.
func (p *Palette) Override(name string, color core.Color) error {
	m, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("materials: unknown material %q", name)
	}
	m.Color = color
	return nil
}
