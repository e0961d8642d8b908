package datastructure

// BoundingBox is an axis-aligned (lat, lon) rectangle.
type BoundingBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

func NewBoundingBox(a, b Point) BoundingBox {
	bb := BoundingBox{Min: a, Max: a}
	return bb.Extend(b)
}

// Extend returns the smallest box containing bb and p.
func (bb BoundingBox) Extend(p Point) BoundingBox {
	if p.Lat < bb.Min.Lat {
		bb.Min.Lat = p.Lat
	}
	if p.Lat > bb.Max.Lat {
		bb.Max.Lat = p.Lat
	}
	if p.Lon < bb.Min.Lon {
		bb.Min.Lon = p.Lon
	}
	if p.Lon > bb.Max.Lon {
		bb.Max.Lon = p.Lon
	}
	return bb
}

func (bb BoundingBox) Contains(p Point) bool {
	if p.Lat < bb.Min.Lat || p.Lat > bb.Max.Lat {
		return false
	}
	if p.Lon < bb.Min.Lon || p.Lon > bb.Max.Lon {
		return false
	}
	return true
}

// Intersects reports whether the two boxes share at least one point.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	if bb.Max.Lat < other.Min.Lat || other.Max.Lat < bb.Min.Lat {
		return false
	}
	if bb.Max.Lon < other.Min.Lon || other.Max.Lon < bb.Min.Lon {
		return false
	}
	return true
}
