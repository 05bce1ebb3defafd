/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package system defines the closed set of polarization representations the
// engine transforms between, and the classifier that identifies which one a
// bundle of channels belongs to.
package system

/*****************************************************************************************************************/

import (
	"sort"
	"strings"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/solpolerr"
)

/*****************************************************************************************************************/

// System is a closed tag identifying a polarization representation.
type System int

/*****************************************************************************************************************/

const (
	MZPSolar System = iota
	MZPInstru
	BpB
	BtBr
	Stokes
	BP3
	BThP
	FourPol
	NPol
)

/*****************************************************************************************************************/

func (s System) String() string {
	switch s {
	case MZPSolar:
		return "mzpsolar"
	case MZPInstru:
		return "mzpinstru"
	case BpB:
		return "bpb"
	case BtBr:
		return "btbr"
	case Stokes:
		return "stokes"
	case BP3:
		return "bp3"
	case BThP:
		return "bthp"
	case FourPol:
		return "fourpol"
	case NPol:
		return "npol"
	default:
		return "unknown"
	}
}

/*****************************************************************************************************************/

// All lists every system in the closed enumeration, in classification order.
var All = []System{MZPSolar, MZPInstru, BpB, BtBr, Stokes, BP3, BThP, FourPol, NPol}

/*****************************************************************************************************************/

// byName maps every accepted target-name string (case-insensitive) to its
// System, built once from the String() method so the two never drift apart.
var byName = func() map[string]System {
	out := make(map[string]System, len(All))
	for _, s := range All {
		out[s.String()] = s
	}
	return out
}()

/*****************************************************************************************************************/

// Parse resolves a case-insensitive target-name string (e.g. "MZPSolar",
// "bpb") to its System, or InvalidArguments if the name is unrecognised.
func Parse(name string) (System, error) {
	s, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, solpolerr.InvalidArguments("unknown target system: " + name)
	}
	return s, nil
}

/*****************************************************************************************************************/

// RequiredKeys is the set of channel keys a bundle must carry to belong to a
// given system. NPol and FourPol are angle-keyed rather than name-keyed, so
// they are not listed here; see Classify.
var RequiredKeys = map[System][]string{
	MZPSolar:  {"M", "Z", "P"},
	MZPInstru: {"M", "Z", "P"},
	BpB:       {"B", "pB"},
	BtBr:      {"Bt", "Br"},
	Stokes:    {"I", "Q", "U"},
	BP3:       {"B", "pB", "pBp"},
	BThP:      {"B", "theta", "p"},
}

/*****************************************************************************************************************/

// FourPolKeys are the four fixed polarizer-angle channel keys of the
// fourpol system, in canonical angle.Quantity string form.
var FourPolKeys = []string{
	angle.Degrees(0).String(),
	angle.Degrees(45).String(),
	angle.Degrees(90).String(),
	angle.Degrees(135).String(),
}

/*****************************************************************************************************************/

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

/*****************************************************************************************************************/

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

/*****************************************************************************************************************/

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

/*****************************************************************************************************************/

// Classify identifies which system a set of non-alpha channel keys belongs
// to, and the POLARREF value on the Z channel if the keys tie between
// mzpsolar and mzpinstru (pass "" when there is no Z channel or no
// POLARREF set; it is then treated as mzpsolar).
//
// Order: mzp* before bpb/btbr/stokes/bp3/bthp is immaterial, since required
// key sets are pairwise distinct except for the mzp* tie; fourpol is checked
// before npol because its keys are also angle-valued.
func Classify(keys []string, zPolarRef string) (System, error) {
	if len(keys) == 0 {
		return 0, solpolerr.InvalidData("no channels")
	}

	input := keySet(keys)

	for _, candidate := range []System{MZPSolar, BpB, BtBr, Stokes, BP3, BThP} {
		if equalSets(input, keySet(RequiredKeys[candidate])) {
			if candidate == MZPSolar {
				if zPolarRef == "Instrument" {
					return MZPInstru, nil
				}
				return MZPSolar, nil
			}
			return candidate, nil
		}
	}

	if equalSets(input, keySet(FourPolKeys)) {
		return FourPol, nil
	}

	if isAllAngles(keys) {
		return NPol, nil
	}

	return 0, solpolerr.UnsupportedTransformation("no system matches the supplied channel keys: " +
		strings.Join(sortedKeys(input), ","))
}

/*****************************************************************************************************************/

func isAllAngles(keys []string) bool {
	for _, k := range keys {
		if _, err := angle.Parse(k); err != nil {
			return false
		}
	}
	return true
}

/*****************************************************************************************************************/
