/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package ingest loads a set of single-channel FITS exposures into a single
// bundle, one goroutine per file. Grounded on
// original_source/solpolpy/instruments.py's load_STEREO and
// _convert_STEREO_list_to_dict (one file per channel, the POLAR header
// selects the key), decoded with the teacher's own
// github.com/observerly/iris/pkg/fits reader.
package ingest

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/observerly/iris/pkg/fits"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/wcs"
)

/*****************************************************************************************************************/

// naxis/bzero/bscale/maxADU assume a 16-bit exposure with no pedestal
// offset, matching the teacher's own fits.NewFITSImage(2, 0, 0, 65535) call.
const (
	naxis  = 2
	bzero  = 0
	bscale = 0
	maxADU = 65535
)

/*****************************************************************************************************************/

// polarAngleTolerance is how close a POLAR header value must be to -60, 0,
// or 60 degrees to be treated as the canonical M/Z/P triple rather than an
// arbitrary npol angle.
const polarAngleTolerance = 1e-6

/*****************************************************************************************************************/

type loaded struct {
	key      string
	cube     *bundle.Cube
	metadata map[string]any
	err      error
}

/*****************************************************************************************************************/

// Load reads every path concurrently, classifies each exposure's channel
// key from its POLAR header, and assembles the results into a single
// bundle. One goroutine per path, mirroring the two-goroutine
// sync.WaitGroup fan-out pkg/solver/solver.go uses for its sources lookup
// and stars extraction, generalised here to N files.
func Load(paths []string) (*bundle.Bundle, error) {
	if len(paths) == 0 {
		return nil, solpolerr.InvalidData("no files supplied to load")
	}

	results := make([]loaded, len(paths))

	var wg sync.WaitGroup
	wg.Add(len(paths))

	for i, path := range paths {
		go func(i int, path string) {
			defer wg.Done()
			results[i] = loadFile(path)
		}(i, path)
	}

	wg.Wait()

	out := bundle.New()
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if _, exists := out.Get(r.key); exists {
			return nil, solpolerr.InvalidData(fmt.Sprintf("duplicate channel %q across input files", r.key))
		}
		out.Set(r.key, r.cube)
		for k, v := range r.metadata {
			out.Meta[k] = v
		}
	}

	return out, nil
}

/*****************************************************************************************************************/

func loadFile(path string) loaded {
	file, err := os.Open(path)
	if err != nil {
		return loaded{err: fmt.Errorf("ingest: opening %s: %w", path, err)}
	}
	defer file.Close()

	fit := fits.NewFITSImage(naxis, bzero, bscale, maxADU)
	if err := fit.Read(file); err != nil {
		return loaded{err: fmt.Errorf("ingest: reading %s: %w", path, err)}
	}

	key, cube, metadata, err := fromImage(fit)
	if err != nil {
		return loaded{err: fmt.Errorf("ingest: %s: %w", path, err)}
	}

	return loaded{key: key, cube: cube, metadata: metadata}
}

/*****************************************************************************************************************/

// fromImage builds a channel key, Cube, and collection-level metadata from
// an already-decoded FITS image. Split out from loadFile so it can be
// exercised directly against a hand-built fits.FITSImage, without needing
// an actual file on disk.
func fromImage(fit *fits.FITSImage) (string, *bundle.Cube, map[string]any, error) {
	polar, err := resolveHeaderFloat(fit.Header, "POLAR")
	if err != nil {
		return "", nil, nil, solpolerr.UnsupportedInstrument(err.Error())
	}

	rows := int(fit.Header.Naxis2)
	columns := int(fit.Header.Naxis1)
	if rows <= 0 || columns <= 0 || rows*columns != len(fit.Data) {
		return "", nil, nil, solpolerr.InvalidData("exposure dimensions do not match its pixel count")
	}

	data := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		data[r] = make([]float64, columns)
		for c := 0; c < columns; c++ {
			data[r][c] = float64(fit.Data[r*columns+c])
		}
	}

	w := wcs.WCS{
		CRPIX1: resolveHeaderFloatOr(fit.Header, "CRPIX1", 0),
		CRPIX2: resolveHeaderFloatOr(fit.Header, "CRPIX2", 0),
		CRVAL1: resolveHeaderFloatOr(fit.Header, "CRVAL1", 0),
		CRVAL2: resolveHeaderFloatOr(fit.Header, "CRVAL2", 0),
		CROTA:  resolveHeaderFloatOr(fit.Header, "CROTA", 0),
		CDELT1: resolveHeaderFloatOr(fit.Header, "CDELT1", 0),
		CDELT2: resolveHeaderFloatOr(fit.Header, "CDELT2", 0),
	}

	meta := map[string]any{}
	if ref, err := resolveHeaderString(fit.Header, "POLARREF"); err == nil {
		meta["POLARREF"] = ref
	} else {
		// Exposures fresh off the instrument carry no POLARREF header of
		// their own; ingest tags such an exposure as instrument frame.
		meta["POLARREF"] = "Instrument"
	}
	if offset, err := resolveHeaderFloat(fit.Header, "POLAROFF"); err == nil {
		meta["POLAROFF"] = angle.Degrees(offset)
	}

	collection := map[string]any{}
	if observatory, err := resolveHeaderString(fit.Header, "OBSRVTRY"); err == nil {
		collection["OBSRVTRY"] = observatory
	}

	return keyForPolarAngle(polar), bundle.NewCube(data, nil, meta, w), collection, nil
}

/*****************************************************************************************************************/

// keyForPolarAngle maps a POLAR header value, in degrees, to the channel
// key the rest of the engine expects: the canonical M/Z/P triple at its
// three ideal angles, or the angle's own canonical string form otherwise
// (an npol source). Adapted from
// _convert_STEREO_list_to_dict's branching on the same header, which keys
// its dict by the raw degree value instead.
func keyForPolarAngle(degrees float64) string {
	switch {
	case almostEqual(degrees, -60):
		return "M"
	case almostEqual(degrees, 0):
		return "Z"
	case almostEqual(degrees, 60):
		return "P"
	default:
		return angle.Degrees(degrees).String()
	}
}

/*****************************************************************************************************************/

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= polarAngleTolerance
}

/*****************************************************************************************************************/

// resolveHeaderFloat extracts a numeric header value, or an error naming
// the missing key.
func resolveHeaderFloat(header fits.FITSHeader, key string) (float64, error) {
	v, exists := header.Floats[key]
	if !exists {
		return 0, fmt.Errorf("%s header not found", key)
	}
	return float64(v.Value), nil
}

/*****************************************************************************************************************/

// resolveHeaderFloatOr extracts a numeric header value, falling back to a
// default when the key is absent (CROTA/CDELT/CRPIX are all optional on a
// raw instrument exposure).
func resolveHeaderFloatOr(header fits.FITSHeader, key string, fallback float64) float64 {
	v, err := resolveHeaderFloat(header, key)
	if err != nil {
		return fallback
	}
	return v
}

/*****************************************************************************************************************/

// resolveHeaderString extracts a string header value, or an error naming
// the missing key.
func resolveHeaderString(header fits.FITSHeader, key string) (string, error) {
	v, exists := header.Strings[key]
	if !exists {
		return "", fmt.Errorf("%s header not found", key)
	}
	return v.Value, nil
}

/*****************************************************************************************************************/
