package kvdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/lintang-b-s/gps-heatmap/pkg/compress"
	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/heatmap"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_TRACKS_BUCKET = "tracks"
	BBOLTDB_META_BUCKET   = "meta"

	metaRunKey = "run"
)

// RunMeta describes the build that produced the stored tracks.
type RunMeta struct {
	InputDir  string        `json:"input_dir" msgpack:"input_dir"`
	Files     int           `json:"files" msgpack:"files"`
	CreatedAt int64         `json:"created_at" msgpack:"created_at"` // unix seconds
	Stats     heatmap.Stats `json:"stats" msgpack:"stats"`
}

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) *KVDB {

	return &KVDB{db,
		sync.Mutex{}}
}

// Init creates the buckets if they do not exist yet.
func (db *KVDB) Init() error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{BBOLTDB_TRACKS_BUCKET, BBOLTDB_META_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

// trackKey is big endian so that a cursor walks tracks in id order.
func trackKey(id int) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(id))
	return key
}

// SaveTracks replaces every stored track with tracks in one transaction.
func (db *KVDB) SaveTracks(tracks []datastructure.Track) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(BBOLTDB_TRACKS_BUCKET)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket([]byte(BBOLTDB_TRACKS_BUCKET))
		if err != nil {
			return err
		}
		for _, track := range tracks {
			if err := b.Put(trackKey(track.ID), serializeTrack(track)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) GetTrack(id int) (track datastructure.Track, err error) {
	if id < 0 || uint64(id) > math.MaxUint32 {
		return track, ErrorsKeyNotExists
	}

	viewErr := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_TRACKS_BUCKET))
		if b == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		trackBytes := b.Get(trackKey(id))
		if trackBytes == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		track, err = deserializeTrack(trackBytes)
		return nil
	})
	if viewErr != nil {
		return track, viewErr
	}
	return
}

// ListTracks returns every stored track in id order.
func (db *KVDB) ListTracks() ([]datastructure.Track, error) {
	tracks := []datastructure.Track{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_TRACKS_BUCKET))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			track, err := deserializeTrack(v)
			if err != nil {
				return err
			}
			tracks = append(tracks, track)
			return nil
		})
	})
	return tracks, err
}

func (db *KVDB) PutMeta(meta RunMeta) error {
	metaBytes, err := msgpack.Marshal(meta)
	if err != nil {
		return err
	}
	return db.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_META_BUCKET))
		if err != nil {
			return err
		}
		return b.Put([]byte(metaRunKey), metaBytes)
	})
}

func (db *KVDB) GetMeta() (meta RunMeta, err error) {
	viewErr := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_META_BUCKET))
		if b == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		metaBytes := b.Get([]byte(metaRunKey))
		if metaBytes == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		err = msgpack.Unmarshal(metaBytes, &meta)
		return nil
	})
	if viewErr != nil {
		return meta, viewErr
	}
	return
}

func GetFloat(bb *bytes.Buffer, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(bb.Bytes()[offset:]))
}

func PutFloat(bb *bytes.Buffer, offset int, val float64) {
	binary.LittleEndian.PutUint64(bb.Bytes()[offset:], math.Float64bits(val))
}

func GetInt(bb *bytes.Buffer, offset int) int {
	return int(binary.LittleEndian.Uint32(bb.Bytes()[offset:]))
}

// PutInt writes val as a little endian uint32 at offset.
func PutInt(bb *bytes.Buffer, offset int, val int) {
	binary.LittleEndian.PutUint32(bb.Bytes()[offset:], uint32(val))
}

// GetBytes reads a length-prefixed byte slice at offset.
func GetBytes(bb *bytes.Buffer, offset int) []byte {
	length := GetInt(bb, offset)
	b := make([]byte, length)
	copy(b, bb.Bytes()[offset+4:offset+4+length])
	return b
}

func PutBytes(bb *bytes.Buffer, offset int, b []byte) {
	PutInt(bb, offset, len(b))
	copy(bb.Bytes()[offset+4:], b)
}

func GetString(bb *bytes.Buffer, offset int) string {
	return string(GetBytes(bb, offset))
}

func PutString(bb *bytes.Buffer, offset int, s string) int {
	PutBytes(bb, offset, []byte(s))
	return len([]byte(s))
}

func getTrackSize(track datastructure.Track, pathBytes []byte) int {
	return 4 + 4 + len([]byte(track.Source)) + 4 + 4*8 + 4 + len(pathBytes)
}

func serializeTrack(track datastructure.Track) []byte {
	pathBytes := compress.EncodePath(track.Path)
	bb := bytes.NewBuffer(make([]byte, getTrackSize(track, pathBytes)))

	leftPos := 0

	PutInt(bb, leftPos, track.ID)
	leftPos += 4

	stringLen := PutString(bb, leftPos, track.Source)
	leftPos += stringLen + 4

	PutInt(bb, leftPos, track.Segment)
	leftPos += 4

	for _, v := range []float64{track.Bounds.Min.Lat, track.Bounds.Min.Lon, track.Bounds.Max.Lat, track.Bounds.Max.Lon} {
		PutFloat(bb, leftPos, v)
		leftPos += 8
	}

	PutBytes(bb, leftPos, pathBytes)

	return bb.Bytes()
}

func deserializeTrack(buf []byte) (datastructure.Track, error) {
	if len(buf) < 4+4+4+4*8+4 {
		return datastructure.Track{}, fmt.Errorf("track record too short: %d bytes", len(buf))
	}
	bb := bytes.NewBuffer(buf)
	track := datastructure.Track{}
	leftPos := 0

	track.ID = GetInt(bb, leftPos)
	leftPos += 4

	track.Source = GetString(bb, leftPos)
	leftPos += len([]byte(track.Source)) + 4 // length prefix

	track.Segment = GetInt(bb, leftPos)
	leftPos += 4

	bounds := make([]float64, 4)
	for i := range bounds {
		bounds[i] = GetFloat(bb, leftPos)
		leftPos += 8
	}
	track.Bounds = datastructure.BoundingBox{
		Min: datastructure.Point{Lat: bounds[0], Lon: bounds[1]},
		Max: datastructure.Point{Lat: bounds[2], Lon: bounds[3]},
	}

	path, err := compress.DecodePath(GetBytes(bb, leftPos))
	if err != nil {
		return datastructure.Track{}, fmt.Errorf("track %d: %w", track.ID, err)
	}
	track.Path = path

	return track, nil
}
