package compress

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
)

// coordinates are stored as integers of 1e-7 degree, about 1 cm.
const coordinateScale = 1e7

var (
	ErrCorruptCoordinates = errors.New("corrupt coordinate stream")
)

var BITMASK = []byte{
	0b00000001,
	0b00000011,
	0b00000111,
	0b00001111,
	0b00011111,
	0b00111111,
	0b01111111,
	0b11111111,
}

func getLSB(x byte, n uint8) byte {
	if n > 8 {
		panic("can extract at max 8 bits from the number")
	}
	return x & BITMASK[n-1]
}

var bitShifts = [10]uint8{7, 7, 7, 7, 7, 7, 7, 7, 7, 1}

var bufPool = sync.Pool{
	New: func() any {
		return new([11]byte)
	},
}

func appendUVarint(dst []byte, x uint64) []byte {
	var i int = 0
	buf := bufPool.Get().(*[11]byte)
	for i = 0; i < len(bitShifts); i++ {
		buf[i] = getLSB(byte(x), bitShifts[i]) | 0b10000000
		x = x >> bitShifts[i]
		if x == 0 {
			break
		}
	}

	buf[i] = buf[i] & 0b01111111
	dst = append(dst, buf[:i+1]...)
	bufPool.Put(buf)
	return dst
}

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func toFixed(deg float64) int64 {
	return int64(math.Round(deg * coordinateScale))
}

func fromFixed(v int64) float64 {
	return float64(v) / coordinateScale
}

// EncodePath writes the point count followed by the lat/lon deltas between
// consecutive points, zigzag and varint encoded. Consecutive GPS fixes are
// close together, so most deltas fit in one or two bytes.
func EncodePath(path datastructure.Path) []byte {
	buf := make([]byte, 0, 1+len(path.Points)*4)
	buf = appendUVarint(buf, uint64(len(path.Points)))

	var prevLat, prevLon int64
	for _, p := range path.Points {
		lat, lon := toFixed(p.Lat), toFixed(p.Lon)
		buf = appendUVarint(buf, zigzag(lat-prevLat))
		buf = appendUVarint(buf, zigzag(lon-prevLon))
		prevLat, prevLon = lat, lon
	}
	return buf
}

func DecodePath(buf []byte) (datastructure.Path, error) {
	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return datastructure.Path{}, ErrCorruptCoordinates
	}
	buf = buf[n:]
	// every point takes at least two bytes
	if count > uint64(len(buf)/2) {
		return datastructure.Path{}, ErrCorruptCoordinates
	}

	points := make([]datastructure.Point, 0, count)
	var lat, lon int64
	for i := uint64(0); i < count; i++ {
		dLat, n := binary.Uvarint(buf)
		if n <= 0 {
			return datastructure.Path{}, ErrCorruptCoordinates
		}
		buf = buf[n:]
		dLon, n := binary.Uvarint(buf)
		if n <= 0 {
			return datastructure.Path{}, ErrCorruptCoordinates
		}
		buf = buf[n:]

		lat += unzigzag(dLat)
		lon += unzigzag(dLon)
		points = append(points, datastructure.Point{Lat: fromFixed(lat), Lon: fromFixed(lon)})
	}
	if len(buf) != 0 {
		return datastructure.Path{}, ErrCorruptCoordinates
	}
	return datastructure.NewPath(points), nil
}
