package avfields

import "unsafe"

// maxImagePlanes bounds av_image_fill_arrays output (AV_VIDEO_MAX_PLANES).
const maxImagePlanes = 4

// ImageLayout describes how an image of a given geometry maps onto a flat
// buffer: per-plane pointers, per-plane strides, and the total byte size.
type ImageLayout struct {
	Planes   [maxImagePlanes]uintptr
	Linesize [maxImagePlanes]int
	Size     int
}

// ImageBufferSize returns the byte size a buffer needs to hold an image of
// the given pixel format and geometry at the given alignment.
func ImageBufferSize(pixFmt, width, height, align int) (int, error) {
	if err := Load(); err != nil {
		return 0, err
	}
	ret := streamAvImageBufferSize(int32(pixFmt), int32(width), int32(height), int32(align))
	if ret < 0 {
		return 0, Error(ret)
	}
	return int(ret), nil
}

// FillImageArrays computes the plane pointers and strides an image of the
// given geometry occupies inside the buffer at src. The buffer must be at
// least ImageBufferSize bytes; no pixel data moves.
func FillImageArrays(src uintptr, pixFmt, width, height, align int) (ImageLayout, error) {
	if err := Load(); err != nil {
		return ImageLayout{}, err
	}
	var (
		planes   [maxImagePlanes]uintptr
		linesize [maxImagePlanes]int32
	)
	ret := streamAvImageFillArrays(
		unsafe.Pointer(&planes[0]), &linesize[0],
		src, int32(pixFmt), int32(width), int32(height), int32(align),
	)
	if ret < 0 {
		return ImageLayout{}, Error(ret)
	}
	out := ImageLayout{Planes: planes, Size: int(ret)}
	for i, ls := range linesize {
		out.Linesize[i] = int(ls)
	}
	return out, nil
}

// SampleLayout describes how audio of a given geometry maps onto a flat
// buffer. Planes holds one pointer per channel for planar formats and a
// single pointer for packed formats; Linesize is the per-plane byte size.
type SampleLayout struct {
	Planes   []uintptr
	Linesize int
	Size     int
}

// SamplesBufferSize returns the byte size a buffer needs to hold the given
// audio geometry, along with the per-plane linesize.
func SamplesBufferSize(channels, nbSamples, sampleFmt, align int) (size, linesize int, err error) {
	if err := Load(); err != nil {
		return 0, 0, err
	}
	var ls int32
	ret := streamAvSamplesBufferSize(int32(channels), int32(nbSamples), int32(sampleFmt), int32(align), &ls)
	if ret < 0 {
		return 0, 0, Error(ret)
	}
	return int(ret), int(ls), nil
}

// FillSampleArrays computes the plane pointers the given audio geometry
// occupies inside the buffer at src. No sample data moves.
func FillSampleArrays(src uintptr, channels, nbSamples, sampleFmt, align int) (SampleLayout, error) {
	if err := Load(); err != nil {
		return SampleLayout{}, err
	}
	if channels <= 0 {
		return SampleLayout{}, Error(-22) // AVERROR(EINVAL)
	}
	planes := make([]uintptr, channels)
	var ls int32
	ret := streamAvSamplesFillArrays(
		unsafe.Pointer(&planes[0]), &ls,
		src, int32(channels), int32(nbSamples), int32(sampleFmt), int32(align),
	)
	if ret < 0 {
		return SampleLayout{}, Error(ret)
	}
	if streamAvSampleFmtIsPlanar(int32(sampleFmt)) == 0 {
		planes = planes[:1]
	}
	return SampleLayout{Planes: planes, Linesize: int(ls), Size: int(ret)}, nil
}

// BytesPerSample returns the byte size of one sample of the given format,
// or 0 for an unknown format or when the wrapper is unavailable.
func BytesPerSample(sampleFmt int) int {
	if Load() != nil {
		return 0
	}
	return int(streamAvBytesPerSample(int32(sampleFmt)))
}

// SampleFormatIsPlanar reports whether the sample format stores each
// channel in its own plane.
func SampleFormatIsPlanar(sampleFmt int) bool {
	if Load() != nil {
		return false
	}
	return streamAvSampleFmtIsPlanar(int32(sampleFmt)) != 0
}
