// Function table for the libstream_avfields native wrapper.
//
// The table is populated by exactly one of the binding variants: shim_cgo.go
// links the wrapper directly, shim_purego.go loads it with purego at runtime.
// Public accessors call through these pointers and never branch on the
// library version themselves; the version policy is compiled into the
// wrapper.

package avfields

import (
	"sync"
	"unsafe"
)

var (
	shimOnce    sync.Once
	shimInitErr error
)

// Load resolves the libstream_avfields wrapper. It is safe to call multiple
// times; only the first call does work. Every entry point that hands out a
// handle calls it implicitly.
func Load() error {
	shimOnce.Do(func() {
		shimInitErr = loadShim()
	})
	return shimInitErr
}

// Available reports whether the native wrapper could be resolved.
func Available() bool {
	return Load() == nil
}

// libstream_avfields function pointers
var (
	streamAvVersionAvutil           func() uint32
	streamAvVersionAvcodec          func() uint32
	streamAvVersionAvformat         func() uint32
	streamAvChannelLayoutGeneration func() int32
	streamAvKeyFrameGeneration      func() int32
	streamAvStrerror                func(errnum int32, buf *byte, buflen uintptr) int32

	streamAvCtxAlloc                func() uintptr
	streamAvCtxFree                 func(ctx uintptr)
	streamAvCtxSetWidth             func(ctx uintptr, v int32)
	streamAvCtxGetWidth             func(ctx uintptr) int32
	streamAvCtxSetHeight            func(ctx uintptr, v int32)
	streamAvCtxGetHeight            func(ctx uintptr) int32
	streamAvCtxSetCodedWidth        func(ctx uintptr, v int32)
	streamAvCtxGetCodedWidth        func(ctx uintptr) int32
	streamAvCtxSetCodedHeight       func(ctx uintptr, v int32)
	streamAvCtxGetCodedHeight       func(ctx uintptr) int32
	streamAvCtxSetPixFmt            func(ctx uintptr, v int32)
	streamAvCtxGetPixFmt            func(ctx uintptr) int32
	streamAvCtxSetBitRate           func(ctx uintptr, v int64)
	streamAvCtxGetBitRate           func(ctx uintptr) int64
	streamAvCtxSetRCMaxRate         func(ctx uintptr, v int64)
	streamAvCtxGetRCMaxRate         func(ctx uintptr) int64
	streamAvCtxSetRCBufferSize      func(ctx uintptr, v int32)
	streamAvCtxGetRCBufferSize      func(ctx uintptr) int32
	streamAvCtxSetGOPSize           func(ctx uintptr, v int32)
	streamAvCtxGetGOPSize           func(ctx uintptr) int32
	streamAvCtxSetMaxBFrames        func(ctx uintptr, v int32)
	streamAvCtxGetMaxBFrames        func(ctx uintptr) int32
	streamAvCtxSetThreadCount       func(ctx uintptr, v int32)
	streamAvCtxGetThreadCount       func(ctx uintptr) int32
	streamAvCtxSetThreadType        func(ctx uintptr, v int32)
	streamAvCtxGetThreadType        func(ctx uintptr) int32
	streamAvCtxSetColorPrimaries    func(ctx uintptr, v int32)
	streamAvCtxGetColorPrimaries    func(ctx uintptr) int32
	streamAvCtxSetColorTRC          func(ctx uintptr, v int32)
	streamAvCtxGetColorTRC          func(ctx uintptr) int32
	streamAvCtxSetColorspace        func(ctx uintptr, v int32)
	streamAvCtxGetColorspace        func(ctx uintptr) int32
	streamAvCtxSetColorRange        func(ctx uintptr, v int32)
	streamAvCtxGetColorRange        func(ctx uintptr) int32
	streamAvCtxSetFlags             func(ctx uintptr, v int32)
	streamAvCtxGetFlags             func(ctx uintptr) int32
	streamAvCtxSetFlags2            func(ctx uintptr, v int32)
	streamAvCtxGetFlags2            func(ctx uintptr) int32
	streamAvCtxSetProfile           func(ctx uintptr, v int32)
	streamAvCtxGetProfile           func(ctx uintptr) int32
	streamAvCtxSetLevel             func(ctx uintptr, v int32)
	streamAvCtxGetLevel             func(ctx uintptr) int32
	streamAvCtxSetSampleRate        func(ctx uintptr, v int32)
	streamAvCtxGetSampleRate        func(ctx uintptr) int32
	streamAvCtxSetSampleFmt         func(ctx uintptr, v int32)
	streamAvCtxGetSampleFmt         func(ctx uintptr) int32
	streamAvCtxSetFrameSize         func(ctx uintptr, v int32)
	streamAvCtxGetFrameSize         func(ctx uintptr) int32
	streamAvCtxSetTimeBase          func(ctx uintptr, num, den int32)
	streamAvCtxGetTimeBase          func(ctx uintptr, num, den *int32)
	streamAvCtxSetFramerate         func(ctx uintptr, num, den int32)
	streamAvCtxGetFramerate         func(ctx uintptr, num, den *int32)
	streamAvCtxSetSampleAspectRatio func(ctx uintptr, num, den int32)
	streamAvCtxGetSampleAspectRatio func(ctx uintptr, num, den *int32)
	streamAvCtxSetChannelCount      func(ctx uintptr, v int32)
	streamAvCtxGetChannelCount      func(ctx uintptr) int32
	streamAvCtxSetChannelLayout     func(ctx uintptr, mask uint64)
	streamAvCtxGetChannelLayout     func(ctx uintptr, exact *int32) uint64
	streamAvCtxSetExtradata         func(ctx uintptr, data *byte, size int32) int32
	streamAvCtxGetExtradata         func(ctx uintptr) uintptr
	streamAvCtxGetExtradataSize     func(ctx uintptr) int32
	streamAvCtxSetHWDeviceCtx       func(ctx, ref uintptr)
	streamAvCtxGetHWDeviceCtx       func(ctx uintptr) uintptr
	streamAvCtxSetHWFramesCtx       func(ctx, ref uintptr)
	streamAvCtxGetHWFramesCtx       func(ctx uintptr) uintptr

	streamAvFrameAlloc                func() uintptr
	streamAvFrameFree                 func(frame uintptr)
	streamAvFrameSetWidth             func(frame uintptr, v int32)
	streamAvFrameGetWidth             func(frame uintptr) int32
	streamAvFrameSetHeight            func(frame uintptr, v int32)
	streamAvFrameGetHeight            func(frame uintptr) int32
	streamAvFrameSetFormat            func(frame uintptr, v int32)
	streamAvFrameGetFormat            func(frame uintptr) int32
	streamAvFrameSetPTS               func(frame uintptr, v int64)
	streamAvFrameGetPTS               func(frame uintptr) int64
	streamAvFrameSetDuration          func(frame uintptr, v int64)
	streamAvFrameGetDuration          func(frame uintptr) int64
	streamAvFrameSetPktDTS            func(frame uintptr, v int64)
	streamAvFrameGetPktDTS            func(frame uintptr) int64
	streamAvFrameSetPictType          func(frame uintptr, v int32)
	streamAvFrameGetPictType          func(frame uintptr) int32
	streamAvFrameSetFlags             func(frame uintptr, v int32)
	streamAvFrameGetFlags             func(frame uintptr) int32
	streamAvFrameSetColorPrimaries    func(frame uintptr, v int32)
	streamAvFrameGetColorPrimaries    func(frame uintptr) int32
	streamAvFrameSetColorTRC          func(frame uintptr, v int32)
	streamAvFrameGetColorTRC          func(frame uintptr) int32
	streamAvFrameSetColorspace        func(frame uintptr, v int32)
	streamAvFrameGetColorspace        func(frame uintptr) int32
	streamAvFrameSetColorRange        func(frame uintptr, v int32)
	streamAvFrameGetColorRange        func(frame uintptr) int32
	streamAvFrameSetNbSamples         func(frame uintptr, v int32)
	streamAvFrameGetNbSamples         func(frame uintptr) int32
	streamAvFrameSetSampleRate        func(frame uintptr, v int32)
	streamAvFrameGetSampleRate        func(frame uintptr) int32
	streamAvFrameSetTimeBase          func(frame uintptr, num, den int32)
	streamAvFrameGetTimeBase          func(frame uintptr, num, den *int32)
	streamAvFrameSetSampleAspectRatio func(frame uintptr, num, den int32)
	streamAvFrameGetSampleAspectRatio func(frame uintptr, num, den *int32)
	streamAvFrameSetKey               func(frame uintptr, v int32)
	streamAvFrameGetKey               func(frame uintptr) int32
	streamAvFrameSetChannelCount      func(frame uintptr, v int32)
	streamAvFrameGetChannelCount      func(frame uintptr) int32
	streamAvFrameSetChannelLayout     func(frame uintptr, mask uint64)
	streamAvFrameGetChannelLayout     func(frame uintptr, exact *int32) uint64
	streamAvFrameData                 func(frame uintptr, plane int32) uintptr
	streamAvFrameSetData              func(frame uintptr, plane int32, data uintptr)
	streamAvFrameLinesize             func(frame uintptr, plane int32) int32
	streamAvFrameSetLinesize          func(frame uintptr, plane, linesize int32)
	streamAvFrameExtendedDataPlane    func(frame uintptr, plane int32) uintptr
	streamAvFrameSetExtendedData      func(frame, extendedData uintptr)

	streamAvPktAlloc          func() uintptr
	streamAvPktFree           func(pkt uintptr)
	streamAvPktData           func(pkt uintptr) uintptr
	streamAvPktSize           func(pkt uintptr) int32
	streamAvPktGetPTS         func(pkt uintptr) int64
	streamAvPktSetPTS         func(pkt uintptr, v int64)
	streamAvPktGetDTS         func(pkt uintptr) int64
	streamAvPktSetDTS         func(pkt uintptr, v int64)
	streamAvPktGetDuration    func(pkt uintptr) int64
	streamAvPktSetDuration    func(pkt uintptr, v int64)
	streamAvPktGetFlags       func(pkt uintptr) int32
	streamAvPktSetFlags       func(pkt uintptr, v int32)
	streamAvPktGetStreamIndex func(pkt uintptr) int32
	streamAvPktSetStreamIndex func(pkt uintptr, v int32)
	streamAvPktGetPos         func(pkt uintptr) int64

	streamAvFmtAlloc          func() uintptr
	streamAvFmtFree           func(ctx uintptr)
	streamAvFmtNewStream      func(ctx uintptr) uintptr
	streamAvFmtNbStreams      func(ctx uintptr) uint32
	streamAvFmtStream         func(ctx uintptr, index uint32) uintptr
	streamAvFmtDuration       func(ctx uintptr) int64
	streamAvFmtOformatFlags   func(ctx uintptr) int32
	streamAvStreamIndex       func(st uintptr) int32
	streamAvStreamDuration    func(st uintptr) int64
	streamAvStreamSetTimeBase func(st uintptr, num, den int32)
	streamAvStreamGetTimeBase func(st uintptr, num, den *int32)
	streamAvStreamCodecpar    func(st uintptr) uintptr

	streamAvParAlloc            func() uintptr
	streamAvParFree             func(par uintptr)
	streamAvParSetCodecType     func(par uintptr, v int32)
	streamAvParGetCodecType     func(par uintptr) int32
	streamAvParSetCodecID       func(par uintptr, v int32)
	streamAvParGetCodecID       func(par uintptr) int32
	streamAvParSetFormat        func(par uintptr, v int32)
	streamAvParGetFormat        func(par uintptr) int32
	streamAvParSetWidth         func(par uintptr, v int32)
	streamAvParGetWidth         func(par uintptr) int32
	streamAvParSetHeight        func(par uintptr, v int32)
	streamAvParGetHeight        func(par uintptr) int32
	streamAvParSetSampleRate    func(par uintptr, v int32)
	streamAvParGetSampleRate    func(par uintptr) int32
	streamAvParSetBitRate       func(par uintptr, v int64)
	streamAvParGetBitRate       func(par uintptr) int64
	streamAvParSetFrameSize     func(par uintptr, v int32)
	streamAvParGetFrameSize     func(par uintptr) int32
	streamAvParSetChannelCount  func(par uintptr, v int32)
	streamAvParGetChannelCount  func(par uintptr) int32
	streamAvParSetChannelLayout func(par uintptr, mask uint64)
	streamAvParGetChannelLayout func(par uintptr, exact *int32) uint64
	streamAvParSetExtradata     func(par uintptr, data *byte, size int32) int32
	streamAvParGetExtradata     func(par uintptr) uintptr
	streamAvParGetExtradataSize func(par uintptr) int32

	streamAvBufferAlloc    func(size int32) uintptr
	streamAvBufferRef      func(buf uintptr) uintptr
	streamAvBufferUnref    func(buf uintptr)
	streamAvBufferRefcount func(buf uintptr) int32
	streamAvBufferData     func(buf uintptr) uintptr
	streamAvBufferSize     func(buf uintptr) int64

	streamAvHWDeviceCtxAlloc func(deviceType int32) uintptr
	streamAvHWFrameCtxAlloc  func(deviceRef uintptr) uintptr

	streamAvHWFramesSetFormat          func(ref uintptr, v int32)
	streamAvHWFramesGetFormat          func(ref uintptr) int32
	streamAvHWFramesSetSWFormat        func(ref uintptr, v int32)
	streamAvHWFramesGetSWFormat        func(ref uintptr) int32
	streamAvHWFramesSetWidth           func(ref uintptr, v int32)
	streamAvHWFramesGetWidth           func(ref uintptr) int32
	streamAvHWFramesSetHeight          func(ref uintptr, v int32)
	streamAvHWFramesGetHeight          func(ref uintptr) int32
	streamAvHWFramesSetInitialPoolSize func(ref uintptr, v int32)
	streamAvHWFramesGetInitialPoolSize func(ref uintptr) int32

	streamAvImageBufferSize   func(pixFmt, width, height, align int32) int32
	streamAvImageFillArrays   func(dstData unsafe.Pointer, dstLinesize *int32, src uintptr, pixFmt, width, height, align int32) int32
	streamAvSamplesBufferSize func(channels, nbSamples, sampleFmt, align int32, linesize *int32) int32
	streamAvSamplesFillArrays func(audioData unsafe.Pointer, linesize *int32, buf uintptr, channels, nbSamples, sampleFmt, align int32) int32
	streamAvBytesPerSample    func(sampleFmt int32) int32
	streamAvSampleFmtIsPlanar func(sampleFmt int32) int32

	streamAvDefaultChannelLayout func(channels int32) uint64
)
