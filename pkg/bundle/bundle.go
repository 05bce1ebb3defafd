/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package bundle implements the image bundle: an insertion-ordered mapping
// from a channel key to a Cube, plus collection-level metadata. Every
// transform in pkg/catalogue consumes one bundle and produces another.
package bundle

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/wcs"
)

/*****************************************************************************************************************/

// AlphaKey is the reserved channel key for the position-angle field.
const AlphaKey = "alpha"

/*****************************************************************************************************************/

// Cube is a single channel: a 2-D data array, an optional invalid-pixel
// mask of the same shape, per-channel metadata, and a world-coordinate
// descriptor.
type Cube struct {
	Data []([]float64)
	Mask [][]bool
	Meta map[string]any
	WCS  wcs.WCS
}

/*****************************************************************************************************************/

// NewCube builds a Cube, cloning the supplied metadata so callers may keep
// mutating their own copy without affecting the bundle.
func NewCube(data [][]float64, mask [][]bool, meta map[string]any, w wcs.WCS) *Cube {
	return &Cube{
		Data: data,
		Mask: mask,
		Meta: CloneMeta(meta),
		WCS:  w,
	}
}

/*****************************************************************************************************************/

// CloneMeta makes a shallow copy of a metadata map so that updating one
// cube's metadata never mutates another cube's map.
func CloneMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

/*****************************************************************************************************************/

// Rows returns the number of rows in the cube's data array.
func (c *Cube) Rows() int {
	return len(c.Data)
}

/*****************************************************************************************************************/

// Columns returns the number of columns in the cube's data array.
func (c *Cube) Columns() int {
	if len(c.Data) == 0 {
		return 0
	}
	return len(c.Data[0])
}

/*****************************************************************************************************************/

// Bundle is an ordered mapping from channel key to Cube, plus
// collection-level metadata (e.g. OBSRVTRY).
type Bundle struct {
	order []string
	cubes map[string]*Cube
	Meta  map[string]any
}

/*****************************************************************************************************************/

// New creates an empty bundle.
func New() *Bundle {
	return &Bundle{
		cubes: make(map[string]*Cube),
		Meta:  make(map[string]any),
	}
}

/*****************************************************************************************************************/

// Set inserts or replaces the cube at key, preserving first-insertion order.
func (b *Bundle) Set(key string, cube *Cube) {
	if _, exists := b.cubes[key]; !exists {
		b.order = append(b.order, key)
	}
	b.cubes[key] = cube
}

/*****************************************************************************************************************/

// Get returns the cube at key, if present.
func (b *Bundle) Get(key string) (*Cube, bool) {
	c, ok := b.cubes[key]
	return c, ok
}

/*****************************************************************************************************************/

// MustGet returns the cube at key, or a wrapped InvalidData error if absent.
func (b *Bundle) MustGet(key string) (*Cube, error) {
	c, ok := b.cubes[key]
	if !ok {
		return nil, solpolerr.InvalidData(fmt.Sprintf("expected channel %q but not found", key))
	}
	return c, nil
}

/*****************************************************************************************************************/

// Clone makes a shallow copy of a bundle: a new order slice and cube map
// pointing at the same Cube values, and a cloned Meta map. Mutating the
// clone's own key set (Set/SetAlpha) never affects the original bundle,
// which is how the engine avoids mutating a caller-supplied input bundle
// when it needs to materialise something like the alpha channel.
func (b *Bundle) Clone() *Bundle {
	order := make([]string, len(b.order))
	copy(order, b.order)

	cubes := make(map[string]*Cube, len(b.cubes))
	for k, v := range b.cubes {
		cubes[k] = v
	}

	return &Bundle{
		order: order,
		cubes: cubes,
		Meta:  CloneMeta(b.Meta),
	}
}

/*****************************************************************************************************************/

// Keys returns every channel key in insertion order, including alpha if
// present.
func (b *Bundle) Keys() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

/*****************************************************************************************************************/

// DataKeys returns every channel key in insertion order, excluding alpha.
func (b *Bundle) DataKeys() []string {
	out := make([]string, 0, len(b.order))
	for _, k := range b.order {
		if k != AlphaKey {
			out = append(out, k)
		}
	}
	return out
}

/*****************************************************************************************************************/

// Alpha returns the alpha channel, if present.
func (b *Bundle) Alpha() (*Cube, bool) {
	return b.Get(AlphaKey)
}

/*****************************************************************************************************************/

// SetAlpha appends or replaces the alpha channel.
func (b *Bundle) SetAlpha(cube *Cube) {
	b.Set(AlphaKey, cube)
}

/*****************************************************************************************************************/

// Shape returns the shared (rows, columns) of every cube in the bundle, or
// an error if cubes disagree on shape (invariant 1 of the data model).
func (b *Bundle) Shape() (rows, columns int, err error) {
	first := true
	for _, key := range b.order {
		c := b.cubes[key]
		if first {
			rows, columns = c.Rows(), c.Columns()
			first = false
			continue
		}
		if c.Rows() != rows || c.Columns() != columns {
			return 0, 0, solpolerr.InvalidData(fmt.Sprintf("channel %q has shape %dx%d, expected %dx%d",
				key, c.Rows(), c.Columns(), rows, columns))
		}
	}
	if first {
		return 0, 0, solpolerr.InvalidData("bundle has no channels")
	}
	return rows, columns, nil
}

/*****************************************************************************************************************/

// CombinedMask ORs together every non-alpha channel's mask, pixel by pixel.
// Returns nil if any input channel's mask is nil (invariant 5).
func (b *Bundle) CombinedMask() [][]bool {
	keys := b.DataKeys()
	if len(keys) == 0 {
		return nil
	}

	var combined [][]bool

	for _, key := range keys {
		c := b.cubes[key]
		if c.Mask == nil {
			return nil
		}
		if combined == nil {
			combined = make([][]bool, len(c.Mask))
			for r := range c.Mask {
				combined[r] = make([]bool, len(c.Mask[r]))
			}
		}
		for r := range c.Mask {
			for col := range c.Mask[r] {
				combined[r][col] = combined[r][col] || c.Mask[r][col]
			}
		}
	}

	return combined
}

/*****************************************************************************************************************/

// PolarRef returns the POLARREF metadata value of the named channel, or ""
// if absent.
func (b *Bundle) PolarRef(key string) string {
	c, ok := b.Get(key)
	if !ok {
		return ""
	}
	v, ok := c.Meta["POLARREF"]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

/*****************************************************************************************************************/

// PolarOffset returns the POLAROFF metadata value of the named channel, or
// a zero quantity if absent.
func (b *Bundle) PolarOffset(key string) angle.Quantity {
	c, ok := b.Get(key)
	if !ok {
		return angle.Degrees(0)
	}
	v, ok := c.Meta["POLAROFF"]
	if !ok {
		return angle.Degrees(0)
	}
	q, ok := v.(angle.Quantity)
	if !ok {
		return angle.Degrees(0)
	}
	return q
}

/*****************************************************************************************************************/

// Observatory returns the collection-level OBSRVTRY metadata value, or ""
// if absent.
func (b *Bundle) Observatory() string {
	v, ok := b.Meta["OBSRVTRY"]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

/*****************************************************************************************************************/

// ReferenceAngle maps an OBSRVTRY tag to the spacecraft-specific reference
// angle used by the mzpsolar<->npol and mzpinstru<->mzpsolar edges.
func ReferenceAngle(observatory string) angle.Quantity {
	switch observatory {
	case "STEREO_A":
		return angle.Degrees(45.8)
	case "STEREO_B":
		return angle.Degrees(-18)
	default:
		return angle.Degrees(0)
	}
}

/*****************************************************************************************************************/
