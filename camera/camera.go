// Package camera holds the 2D pan/zoom transform between screen and world
// space. It mirrors a rotation-free raylib Camera2D so it can be tested
// without a graphics context.
package camera

const (
	// ZoomStep is the zoom change per wheel tick
	ZoomStep float32 = 0.125
	// MinZoom is the smallest allowed zoom
	MinZoom float32 = 0.125
)

// Vec2 is a 2D point or displacement
type Vec2 struct {
	X, Y float32
}

func (v Vec2) add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) scale(k float32) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Input is one frame of polled mouse state
type Input struct {
	PanHeld    bool // right button down
	MouseDelta Vec2
	Wheel      float32
	Mouse      Vec2
}

// Camera maps world point Target to screen point Offset at scale Zoom
type Camera struct {
	Offset Vec2
	Target Vec2
	Zoom   float32
}

// New returns an identity camera
func New() Camera {
	return Camera{Zoom: 1}
}

// ScreenToWorld converts a screen position to world coordinates
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.sub(c.Offset).scale(1 / c.Zoom).add(c.Target)
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.sub(c.Target).scale(c.Zoom).add(c.Offset)
}

// Pan drags the view by a screen-space mouse delta
func (c *Camera) Pan(delta Vec2) {
	c.Target = c.Target.add(delta.scale(-1 / c.Zoom))
}

// ZoomAt zooms by wheel ticks, keeping the world point under mouse fixed
func (c *Camera) ZoomAt(wheel float32, mouse Vec2) {
	if wheel == 0 {
		return
	}
	c.Target = c.ScreenToWorld(mouse)
	c.Offset = mouse
	c.Zoom = max(c.Zoom+wheel*ZoomStep, MinZoom)
}

// Apply handles one frame of input: pan first, then zoom
func (c *Camera) Apply(in Input) {
	if in.PanHeld {
		c.Pan(in.MouseDelta)
	}
	c.ZoomAt(in.Wheel, in.Mouse)
}
