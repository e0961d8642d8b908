package datastructure

// Track model info
// @Description	a cleaned track segment as stored and served by the api.
type Track struct {
	ID      int         `json:"id"`      // dense id assigned at build time
	Source  string      `json:"source"`  // input file the segment came from
	Segment int         `json:"segment"` // segment number inside the source file
	Bounds  BoundingBox `json:"bounds"`  // bounding box of the cleaned points
	Path    Path        `json:"-"`
}

func NewTrack(id int, source string, segment int, path Path) Track {
	bounds, _ := path.Bounds()
	return Track{
		ID:      id,
		Source:  source,
		Segment: segment,
		Bounds:  bounds,
		Path:    path,
	}
}

// MarshalJSON on Path renders an array of [lat,lon] pairs.
func (p Path) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(p.Points)*40)
	buf = append(buf, '[')
	for i, point := range p.Points {
		if i > 0 {
			buf = append(buf, ',')
		}
		pj, err := point.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, pj...)
	}
	buf = append(buf, ']')
	return buf, nil
}
