package avfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Raw FFmpeg enum values used by the geometry tests.
const (
	pixFmtYUV420P = 0
	pixFmtRGB24   = 2

	sampleFmtU8   = 0
	sampleFmtS16  = 1
	sampleFmtFLT  = 3
	sampleFmtS16P = 6
	sampleFmtFLTP = 8
)

func TestImageBufferSize(t *testing.T) {
	requireShim(t)

	tests := []struct {
		name          string
		pixFmt        int
		width, height int
		align         int
		want          int
	}{
		{"1080p yuv420p", pixFmtYUV420P, 1920, 1080, 1, 1920 * 1080 * 3 / 2},
		{"720p yuv420p", pixFmtYUV420P, 1280, 720, 1, 1280 * 720 * 3 / 2},
		{"vga rgb24", pixFmtRGB24, 640, 480, 1, 640 * 480 * 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImageBufferSize(tt.pixFmt, tt.width, tt.height, tt.align)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageBufferSize_InvalidGeometry(t *testing.T) {
	requireShim(t)

	if _, err := ImageBufferSize(pixFmtYUV420P, -1, 1080, 1); err == nil {
		t.Error("negative width accepted")
	}
	if _, err := ImageBufferSize(-1, 1920, 1080, 1); err == nil {
		t.Error("invalid pixel format accepted")
	}
}

func TestFillImageArrays(t *testing.T) {
	requireShim(t)

	const width, height = 1920, 1080
	size, err := ImageBufferSize(pixFmtYUV420P, width, height, 1)
	require.NoError(t, err)

	buf, err := AllocBuffer(size)
	require.NoError(t, err)
	defer buf.Unref()

	layout, err := FillImageArrays(buf.Data(), pixFmtYUV420P, width, height, 1)
	require.NoError(t, err)

	assert.Equal(t, size, layout.Size)
	assert.Equal(t, [maxImagePlanes]int{width, width / 2, width / 2, 0}, layout.Linesize)

	// Planes are laid out back to back: y, then u, then v.
	base := buf.Data()
	assert.Equal(t, base, layout.Planes[0])
	assert.Equal(t, base+uintptr(width*height), layout.Planes[1])
	assert.Equal(t, base+uintptr(width*height*5/4), layout.Planes[2])
	assert.Zero(t, layout.Planes[3])
}

func TestSamplesBufferSize(t *testing.T) {
	requireShim(t)

	tests := []struct {
		name         string
		channels     int
		nbSamples    int
		sampleFmt    int
		wantSize     int
		wantLinesize int
	}{
		{"stereo s16 packed", 2, 960, sampleFmtS16, 960 * 2 * 2, 960 * 2 * 2},
		{"stereo fltp planar", 2, 960, sampleFmtFLTP, 960 * 4 * 2, 960 * 4},
		{"mono u8", 1, 480, sampleFmtU8, 480, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, linesize, err := SamplesBufferSize(tt.channels, tt.nbSamples, tt.sampleFmt, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantLinesize, linesize)
		})
	}
}

func TestFillSampleArrays(t *testing.T) {
	requireShim(t)

	const channels, nbSamples = 2, 960

	t.Run("planar", func(t *testing.T) {
		size, linesize, err := SamplesBufferSize(channels, nbSamples, sampleFmtFLTP, 0)
		require.NoError(t, err)

		buf, err := AllocBuffer(size)
		require.NoError(t, err)
		defer buf.Unref()

		layout, err := FillSampleArrays(buf.Data(), channels, nbSamples, sampleFmtFLTP, 0)
		require.NoError(t, err)

		require.Len(t, layout.Planes, channels)
		assert.Equal(t, buf.Data(), layout.Planes[0])
		assert.Equal(t, buf.Data()+uintptr(linesize), layout.Planes[1])
		assert.Equal(t, linesize, layout.Linesize)
		assert.Equal(t, size, layout.Size)
	})

	t.Run("packed", func(t *testing.T) {
		size, _, err := SamplesBufferSize(channels, nbSamples, sampleFmtS16, 0)
		require.NoError(t, err)

		buf, err := AllocBuffer(size)
		require.NoError(t, err)
		defer buf.Unref()

		layout, err := FillSampleArrays(buf.Data(), channels, nbSamples, sampleFmtS16, 0)
		require.NoError(t, err)

		require.Len(t, layout.Planes, 1)
		assert.Equal(t, buf.Data(), layout.Planes[0])
		assert.Equal(t, size, layout.Size)
	})

	t.Run("no channels", func(t *testing.T) {
		if _, err := FillSampleArrays(0, 0, nbSamples, sampleFmtS16, 0); err == nil {
			t.Error("zero channels accepted")
		}
	})
}

func TestBytesPerSample(t *testing.T) {
	requireShim(t)

	tests := []struct {
		sampleFmt int
		want      int
	}{
		{sampleFmtU8, 1},
		{sampleFmtS16, 2},
		{sampleFmtFLT, 4},
		{sampleFmtS16P, 2},
		{sampleFmtFLTP, 4},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := BytesPerSample(tt.sampleFmt); got != tt.want {
			t.Errorf("BytesPerSample(%d) = %d, want %d", tt.sampleFmt, got, tt.want)
		}
	}
}

func TestSampleFormatIsPlanar(t *testing.T) {
	requireShim(t)

	tests := []struct {
		sampleFmt int
		want      bool
	}{
		{sampleFmtS16, false},
		{sampleFmtFLT, false},
		{sampleFmtS16P, true},
		{sampleFmtFLTP, true},
	}

	for _, tt := range tests {
		if got := SampleFormatIsPlanar(tt.sampleFmt); got != tt.want {
			t.Errorf("SampleFormatIsPlanar(%d) = %v, want %v", tt.sampleFmt, got, tt.want)
		}
	}
}
