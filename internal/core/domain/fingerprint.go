package domain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is an opaque content-addressed key identifying a specific
// computation's inputs for memoization.
type Fingerprint uint64

// String renders the fingerprint as fixed-width hex.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// ExpansionFingerprint keys one expansion of one instance: the instance
// identity, its fixed parameter values, the parameter epoch, and the
// resolved times of its pins. Any upstream parameter edit bumps the epoch
// and therefore produces a fresh key, so stale entries are never observed
// as current.
func ExpansionFingerprint(inst *ComponentInstance, pinTimes []TimeValue) Fingerprint {
	h := xxhash.New()
	id := inst.ID()
	_, _ = h.Write(id[:])
	_, _ = h.Write([]byte{0})

	hashParameters(h, inst.FixedParameters())

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], inst.ParamEpoch())
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte{0})

	for _, t := range pinTimes {
		binary.LittleEndian.PutUint64(buf[:], uint64(t.raw))
		_, _ = h.Write(buf[:])
	}
	_, _ = h.Write([]byte{0})

	return Fingerprint(h.Sum64())
}

// NaturalLengthFingerprint keys the intrinsic-duration query of a class for
// one fixed-parameter set.
func NaturalLengthFingerprint(class *ComponentClass, fixed []ParameterValue) Fingerprint {
	h := xxhash.New()
	id := class.ID()
	_, _ = h.Write(id[:])
	_, _ = h.WriteString("natural_length")
	_, _ = h.Write([]byte{0})
	hashParameters(h, fixed)
	return Fingerprint(h.Sum64())
}

func hashParameters(h *xxhash.Digest, params []ParameterValue) {
	var buf [8]byte
	for _, p := range params {
		_, _ = h.WriteString(string(p.Type))
		_, _ = h.Write([]byte{0})
		switch p.Type {
		case TypeInteger:
			binary.LittleEndian.PutUint64(buf[:], uint64(p.Int))
			_, _ = h.Write(buf[:])
		case TypeReal:
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Real))
			_, _ = h.Write(buf[:])
		case TypeBoolean:
			if p.Bool {
				_, _ = h.Write([]byte{1})
			} else {
				_, _ = h.Write([]byte{0})
			}
		default:
			_, _ = h.WriteString(p.Str)
		}
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
}
