package card

// Gallery is a cyclic cursor over a photo collection.
type Gallery struct {
	index int
	count int
}

// NewGallery returns a gallery positioned at the first photo.
func NewGallery(count int) Gallery {
	g := Gallery{}
	g.SetCount(count)
	return g
}

// Next moves forward, wrapping from the last photo to the first.
func (g *Gallery) Next() bool {
	if g.count == 0 {
		return false
	}
	g.index = (g.index + 1) % g.count
	return true
}

// Prev moves backward, wrapping from the first photo to the last.
func (g *Gallery) Prev() bool {
	if g.count == 0 {
		return false
	}
	g.index = (g.index - 1 + g.count) % g.count
	return true
}

// SetCount replaces the collection size. The index is kept modulo the new
// count; an empty collection resets it to zero.
func (g *Gallery) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	g.count = n
	if n == 0 {
		g.index = 0
		return
	}
	g.index %= n
}

func (g Gallery) Index() int  { return g.index }
func (g Gallery) Count() int  { return g.count }
func (g Gallery) Empty() bool { return g.count == 0 }
