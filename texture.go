package nest

// Texture is a decoded image uploaded to the backend. A texture is owned by at
// most one entity; Release frees the backend resource exactly once.
type Texture struct {
	handle        TextureHandle
	width, height int
	owner         *Entity
}

func newTexture(h TextureHandle) *Texture {
	w, ht := h.Size()
	return &Texture{handle: h, width: w, height: ht}
}

// Width returns the native width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the native height in pixels.
func (t *Texture) Height() int { return t.height }

// Released reports whether the backend resource has been freed.
func (t *Texture) Released() bool { return t.handle == nil }

// Release frees the backend resource. Subsequent calls are no-ops. Releasing a
// bound texture leaves it attached to its entity; use Entity.UnbindTexture to
// detach and release together.
func (t *Texture) Release() {
	if t == nil || t.handle == nil {
		return
	}
	h := t.handle
	t.handle = nil
	h.Destroy()
}

// LoadTexture decodes the image at path and uploads it to the backend. It
// returns nil when the file is missing, cannot be decoded, or the upload fails.
func (n *Nest) LoadTexture(path string) *Texture {
	img, err := decodeImage(path)
	if err != nil {
		Logger().Warn("nest: texture load failed", "path", path, "err", err)
		return nil
	}
	h, err := n.backend.UploadTexture(img)
	if err != nil || h == nil {
		Logger().Warn("nest: texture upload failed", "path", path, "err", err)
		return nil
	}
	return newTexture(h)
}

// BindTexture gives e sole ownership of t and renders it once at e.Position
// with its native size. A nil or released texture is rejected and false is
// returned.
//
// If e already owns a different texture, that texture is released first. If t
// belongs to another entity it is moved off that entity without being released.
func (n *Nest) BindTexture(e *Entity, t *Texture) bool {
	if t == nil || t.handle == nil {
		return false
	}
	if old := e.ownedTexture(); old != nil && old != t {
		e.UnbindTexture()
	}
	if prev := t.owner; prev != nil && prev != e && prev.texture == t {
		prev.texture = nil
	}
	t.owner = e
	e.texture = t
	n.renderTexture(e)
	return true
}

// DrawTexture renders e's bound texture at its current position. It returns
// false when e has no live texture.
func (n *Nest) DrawTexture(e *Entity) bool {
	if t := e.ownedTexture(); t == nil || t.handle == nil {
		return false
	}
	n.renderTexture(e)
	return true
}

func (n *Nest) renderTexture(e *Entity) {
	t := e.texture
	n.backend.DrawTexture(t.handle, Rect{
		X:      e.Position.X,
		Y:      e.Position.Y,
		Width:  float64(t.width),
		Height: float64(t.height),
	})
}
