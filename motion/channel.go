package motion

import (
	"errors"
	"fmt"
	"strings"
)

// ChannelMask selects which velocity axes a directive may write.
type ChannelMask uint8

const (
	ChannelX ChannelMask = 1 << iota
	ChannelY
	ChannelZ

	ChannelsXY  = ChannelX | ChannelY
	ChannelsXZ  = ChannelX | ChannelZ
	ChannelsYZ  = ChannelY | ChannelZ
	ChannelsXYZ = ChannelX | ChannelY | ChannelZ
)

var ErrInvalidChannelMask = errors.New("motion: invalid channel mask")

// Has reports whether every axis in other is also in m.
func (m ChannelMask) Has(other ChannelMask) bool {
	return m&other == other
}

// Complement returns the spatial axes not in m.
func (m ChannelMask) Complement() ChannelMask {
	return ^m & ChannelsXYZ
}

// Vector expands the mask into a 0/1 selector for componentwise scaling.
func (m ChannelMask) Vector() Vector {
	var v Vector
	for i := 0; i < 3; i++ {
		if m&(1<<i) != 0 {
			v[i] = 1
		}
	}
	return v
}

func (m ChannelMask) String() string {
	if m&ChannelsXYZ == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, name := range [...]byte{'X', 'Y', 'Z'} {
		if m&(1<<i) != 0 {
			sb.WriteByte(name)
		}
	}
	return sb.String()
}

// ParseChannelMask parses axis letters such as "x", "XY" or "xyz". An empty
// string means every axis.
func ParseChannelMask(s string) (ChannelMask, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ChannelsXYZ, nil
	}
	var m ChannelMask
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'X':
			m |= ChannelX
		case 'Y':
			m |= ChannelY
		case 'Z':
			m |= ChannelZ
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidChannelMask, s)
		}
	}
	return m, nil
}
