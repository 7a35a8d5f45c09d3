package leveldata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"math"
	"sort"

	"github.com/automoto/robots/shared/geom"
)

// pointSize is one little-endian float32 pair.
const pointSize = 8

// cornerEpsilon is the tolerance for two corners sharing an X coordinate.
// Map data is float32, so this is float32's machine epsilon.
const cornerEpsilon = 1.1920929e-07

// ReadMapRaw reads the points of a .map file.
func ReadMapRaw(fsys fs.FS, name string) ([]geom.Vector, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", name, err)
	}
	points, err := DecodeMapRaw(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode map %s: %w", name, err)
	}
	return points, nil
}

// DecodeMapRaw reads little-endian float32 (x, y) pairs until EOF.
func DecodeMapRaw(r io.Reader) ([]geom.Vector, error) {
	var (
		points []geom.Vector
		buf    [pointSize]byte
	)
	for {
		n, err := io.ReadFull(r, buf[:])
		switch {
		case err == io.EOF:
			return points, nil
		case err == io.ErrUnexpectedEOF:
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, n)
		case err != nil:
			return nil, err
		}
		points = append(points, geom.Vector{
			X: float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))),
			Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))),
		})
	}
}

// ParseMapRects turns every group of four corner points into a box. The
// corners of a group may come in any order: they are sorted by X, then by
// Y for corners sharing an X, and the first and last corners span the box.
// The input slice is not modified.
func ParseMapRects(points []geom.Vector) ([]geom.AABB, error) {
	if len(points)%4 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, len(points))
	}

	rects := make([]geom.AABB, 0, len(points)/4)
	var corners [4]geom.Vector
	for i := 0; i < len(points); i += 4 {
		copy(corners[:], points[i:i+4])
		sort.Slice(corners[:], func(a, b int) bool {
			pa, pb := corners[a], corners[b]
			if math.Abs(pa.X-pb.X) < cornerEpsilon {
				return pa.Y < pb.Y
			}
			return pa.X < pb.X
		})
		rects = append(rects, geom.NewAABB(corners[0].X, corners[0].Y, corners[3].X, corners[3].Y))
	}
	return rects, nil
}

// EncodeMapRaw writes rects in the .map format, four corners each, counter
// clockwise from the bottom left.
func EncodeMapRaw(w io.Writer, rects []geom.AABB) error {
	buf := make([]byte, 0, len(rects)*4*pointSize)
	for _, r := range rects {
		r = r.Normalize()
		for _, p := range [4]geom.Vector{
			{X: r.X1, Y: r.Y1},
			{X: r.X2, Y: r.Y1},
			{X: r.X2, Y: r.Y2},
			{X: r.X1, Y: r.Y2},
		} {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(p.X)))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(p.Y)))
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}

// LoadMap reads a .map file into a Level. The format carries no spawn
// points.
func LoadMap(fsys fs.FS, name string) (*Level, error) {
	points, err := ReadMapRaw(fsys, name)
	if err != nil {
		return nil, err
	}
	boxes, err := ParseMapRects(points)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", name, err)
	}
	return &Level{Name: name, Boxes: boxes}, nil
}
