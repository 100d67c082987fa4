// Package render holds the presentation sinks the simulation draws through.
package render

// Presenter receives the draw requests of one frame. Coordinates are logical pixels of
// the 160x90 screen; sprite names and glyph indices are opaque to the caller.
type Presenter interface {
	DrawSprite(sprite string, x, y int)
	DrawGlyphs(glyphs []byte, x, y int)
}

// Call is one recorded draw request.
type Call struct {
	Sprite string // empty for glyph calls
	Glyphs []byte
	X, Y   int
}

// Recorder is a Presenter that keeps every call. Headless runs and tests draw into it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawSprite(sprite string, x, y int) {
	r.Calls = append(r.Calls, Call{Sprite: sprite, X: x, Y: y})
}

func (r *Recorder) DrawGlyphs(glyphs []byte, x, y int) {
	g := make([]byte, len(glyphs))
	copy(g, glyphs)
	r.Calls = append(r.Calls, Call{Glyphs: g, X: x, Y: y})
}

// Reset drops the recorded calls, keeping the backing array.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Sprites returns the sprite calls with the given name.
func (r *Recorder) Sprites(sprite string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Glyphs == nil && c.Sprite == sprite {
			out = append(out, c)
		}
	}
	return out
}

// GlyphsAt returns the glyphs drawn at (x, y), or nil.
func (r *Recorder) GlyphsAt(x, y int) []byte {
	for _, c := range r.Calls {
		if c.Glyphs != nil && c.X == x && c.Y == y {
			return c.Glyphs
		}
	}
	return nil
}
