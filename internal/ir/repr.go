package ir

import "math"

//go:generate go tool stringer -type=Repr -trimprefix=Repr -output=repr_string.go

// Repr is the layout a declaration asks for through its repr attribute.
type Repr int

const (
	ReprNone Repr = iota // no repr marker
	ReprC                // repr(C)
	ReprU32              // repr(u32)
	ReprU16              // repr(u16)
	ReprU8               // repr(u8)
)

// MarshalText encodes the repr by name.
func (r Repr) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// IsTagged reports whether the repr fixes an integer tag width.
func (r Repr) IsTagged() bool {
	switch r {
	default:
		return false
	case ReprU32, ReprU16, ReprU8:
		return true
	}
}

// CType returns the fixed-width C type used for a tagged repr, or "".
func (r Repr) CType() string {
	switch r {
	case ReprU32:
		return "uint32_t"
	case ReprU16:
		return "uint16_t"
	case ReprU8:
		return "uint8_t"
	default:
		return ""
	}
}

// Bounds returns the inclusive value range of a tagged repr.
func (r Repr) Bounds() (lo, hi int64, ok bool) {
	switch r {
	case ReprU32:
		return 0, math.MaxUint32, true
	case ReprU16:
		return 0, math.MaxUint16, true
	case ReprU8:
		return 0, math.MaxUint8, true
	default:
		return 0, 0, false
	}
}
