package avfields

import "fmt"

// Version is a decoded FFmpeg library version number.
type Version struct {
	Major int
	Minor int
	Micro int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

func versionFromPacked(packed uint32) Version {
	return Version{
		Major: int(packed >> 16),
		Minor: int(packed >> 8 & 0xff),
		Micro: int(packed & 0xff),
	}
}

// LibraryVersions reports the runtime versions of the FFmpeg libraries the
// wrapper is linked against.
type LibraryVersions struct {
	AVUtil   Version
	AVCodec  Version
	AVFormat Version
}

func Versions() (LibraryVersions, error) {
	if err := Load(); err != nil {
		return LibraryVersions{}, err
	}
	return LibraryVersions{
		AVUtil:   versionFromPacked(streamAvVersionAvutil()),
		AVCodec:  versionFromPacked(streamAvVersionAvcodec()),
		AVFormat: versionFromPacked(streamAvVersionAvformat()),
	}, nil
}

// LayoutGeneration identifies which channel layout representation the
// wrapper was compiled against.
type LayoutGeneration int

const (
	// LayoutLegacy stores a channel count plus a 64-bit layout bitmask.
	LayoutLegacy LayoutGeneration = 1
	// LayoutStructured stores an AVChannelLayout descriptor.
	LayoutStructured LayoutGeneration = 2
)

func (g LayoutGeneration) String() string {
	switch g {
	case LayoutLegacy:
		return "legacy"
	case LayoutStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// ChannelLayoutStorage returns the channel layout generation baked into the
// wrapper, or 0 when the wrapper is unavailable. The generation is fixed at
// the wrapper's compile time; accessors never branch on it at call time.
func ChannelLayoutStorage() LayoutGeneration {
	if Load() != nil {
		return 0
	}
	return LayoutGeneration(streamAvChannelLayoutGeneration())
}

// KeyFrameGeneration identifies which storage backs the frame key-frame
// signal in the wrapper.
type KeyFrameGeneration int

const (
	// KeyFrameField is the dedicated key_frame int field.
	KeyFrameField KeyFrameGeneration = 1
	// KeyFrameFlag is the AV_FRAME_FLAG_KEY bit in the frame flags word.
	KeyFrameFlag KeyFrameGeneration = 2
)

func (g KeyFrameGeneration) String() string {
	switch g {
	case KeyFrameField:
		return "field"
	case KeyFrameFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// KeyFrameStorage returns the key-frame generation baked into the wrapper,
// or 0 when the wrapper is unavailable.
func KeyFrameStorage() KeyFrameGeneration {
	if Load() != nil {
		return 0
	}
	return KeyFrameGeneration(streamAvKeyFrameGeneration())
}

// DefaultChannelLayout returns FFmpeg's canonical layout bitmask for a
// channel count, or 0 when none is defined.
func DefaultChannelLayout(channels int) uint64 {
	if Load() != nil {
		return 0
	}
	return streamAvDefaultChannelLayout(int32(channels))
}
