package avfields

import "testing"

// requireShim skips tests that need the native wrapper when it is not
// built or not on the search path.
func requireShim(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("libstream_avfields not available; run make in clib/ first")
	}
}

func TestVersions(t *testing.T) {
	requireShim(t)

	v, err := Versions()
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}
	if v.AVUtil.Major < 56 || v.AVUtil.Major > 60 {
		t.Errorf("AVUtil.Major = %d, want within [56, 60]", v.AVUtil.Major)
	}
	if v.AVCodec.Major == 0 || v.AVFormat.Major == 0 {
		t.Errorf("zero library major: avcodec %v, avformat %v", v.AVCodec, v.AVFormat)
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 58, Minor: 29, Micro: 100}
	if got, want := v.String(), "58.29.100"; got != want {
		t.Errorf("Version.String() = %q, want %q", got, want)
	}
}

// The generation reported by the wrapper must match the libavutil major it
// was compiled against.
func TestStorageGenerationsMatchVersion(t *testing.T) {
	requireShim(t)

	v, err := Versions()
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}

	wantLayout := LayoutLegacy
	if v.AVUtil.Major >= 58 {
		wantLayout = LayoutStructured
	}
	if got := ChannelLayoutStorage(); got != wantLayout {
		t.Errorf("ChannelLayoutStorage() = %v, want %v for libavutil %d", got, wantLayout, v.AVUtil.Major)
	}

	wantKey := KeyFrameField
	if v.AVUtil.Major >= 59 {
		wantKey = KeyFrameFlag
	}
	if got := KeyFrameStorage(); got != wantKey {
		t.Errorf("KeyFrameStorage() = %v, want %v for libavutil %d", got, wantKey, v.AVUtil.Major)
	}
}

func TestLayoutGeneration_String(t *testing.T) {
	tests := []struct {
		gen  LayoutGeneration
		want string
	}{
		{LayoutLegacy, "legacy"},
		{LayoutStructured, "structured"},
		{LayoutGeneration(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.gen.String(); got != tt.want {
			t.Errorf("LayoutGeneration(%d).String() = %q, want %q", tt.gen, got, tt.want)
		}
	}
}

func TestDefaultChannelLayout(t *testing.T) {
	requireShim(t)

	tests := []struct {
		channels int
		want     uint64
	}{
		{1, 0x4},       // mono: front center
		{2, 0x3},       // stereo: front left | front right
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := DefaultChannelLayout(tt.channels); got != tt.want {
			t.Errorf("DefaultChannelLayout(%d) = %#x, want %#x", tt.channels, got, tt.want)
		}
	}
}
