//go:build (darwin || linux) && cgo

// CGO binding for libstream_avfields. Links the wrapper built into build/
// (see clib/Makefile) and fills the shared function table with direct call
// wrappers, so the public API is identical to the purego variant.

package avfields

/*
#cgo CFLAGS: -I${SRCDIR}/clib
#cgo darwin LDFLAGS: -L${SRCDIR}/build -lstream_avfields -Wl,-rpath,${SRCDIR}/build
#cgo linux LDFLAGS: -L${SRCDIR}/build -lstream_avfields -Wl,-rpath,${SRCDIR}/build

#include "stream_avfields.h"
*/
import "C"

import "unsafe"

func loadShim() error {
	return nil
}

func cctx(p uintptr) *C.AVCodecContext { return (*C.AVCodecContext)(unsafe.Pointer(p)) }
func cframe(p uintptr) *C.AVFrame      { return (*C.AVFrame)(unsafe.Pointer(p)) }
func cpkt(p uintptr) *C.AVPacket       { return (*C.AVPacket)(unsafe.Pointer(p)) }
func cfmt(p uintptr) *C.AVFormatContext {
	return (*C.AVFormatContext)(unsafe.Pointer(p))
}
func cstream(p uintptr) *C.AVStream { return (*C.AVStream)(unsafe.Pointer(p)) }
func cpar(p uintptr) *C.AVCodecParameters {
	return (*C.AVCodecParameters)(unsafe.Pointer(p))
}
func cbuf(p uintptr) *C.AVBufferRef { return (*C.AVBufferRef)(unsafe.Pointer(p)) }
func cint(p *int32) *C.int          { return (*C.int)(unsafe.Pointer(p)) }

func init() {
	streamAvVersionAvutil = func() uint32 { return uint32(C.stream_av_version_avutil()) }
	streamAvVersionAvcodec = func() uint32 { return uint32(C.stream_av_version_avcodec()) }
	streamAvVersionAvformat = func() uint32 { return uint32(C.stream_av_version_avformat()) }
	streamAvChannelLayoutGeneration = func() int32 { return int32(C.stream_av_channel_layout_generation()) }
	streamAvKeyFrameGeneration = func() int32 { return int32(C.stream_av_key_frame_generation()) }
	streamAvStrerror = func(errnum int32, buf *byte, buflen uintptr) int32 {
		return int32(C.stream_av_strerror(C.int(errnum), (*C.char)(unsafe.Pointer(buf)), C.size_t(buflen)))
	}

	streamAvCtxAlloc = func() uintptr { return uintptr(unsafe.Pointer(C.stream_av_ctx_alloc())) }
	streamAvCtxFree = func(ctx uintptr) { C.stream_av_ctx_free(cctx(ctx)) }
	streamAvCtxSetWidth = func(ctx uintptr, v int32) { C.stream_av_ctx_set_width(cctx(ctx), C.int(v)) }
	streamAvCtxGetWidth = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_width(cctx(ctx))) }
	streamAvCtxSetHeight = func(ctx uintptr, v int32) { C.stream_av_ctx_set_height(cctx(ctx), C.int(v)) }
	streamAvCtxGetHeight = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_height(cctx(ctx))) }
	streamAvCtxSetCodedWidth = func(ctx uintptr, v int32) { C.stream_av_ctx_set_coded_width(cctx(ctx), C.int(v)) }
	streamAvCtxGetCodedWidth = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_coded_width(cctx(ctx))) }
	streamAvCtxSetCodedHeight = func(ctx uintptr, v int32) { C.stream_av_ctx_set_coded_height(cctx(ctx), C.int(v)) }
	streamAvCtxGetCodedHeight = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_coded_height(cctx(ctx))) }
	streamAvCtxSetPixFmt = func(ctx uintptr, v int32) { C.stream_av_ctx_set_pix_fmt(cctx(ctx), C.int(v)) }
	streamAvCtxGetPixFmt = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_pix_fmt(cctx(ctx))) }
	streamAvCtxSetBitRate = func(ctx uintptr, v int64) { C.stream_av_ctx_set_bit_rate(cctx(ctx), C.int64_t(v)) }
	streamAvCtxGetBitRate = func(ctx uintptr) int64 { return int64(C.stream_av_ctx_get_bit_rate(cctx(ctx))) }
	streamAvCtxSetRCMaxRate = func(ctx uintptr, v int64) { C.stream_av_ctx_set_rc_max_rate(cctx(ctx), C.int64_t(v)) }
	streamAvCtxGetRCMaxRate = func(ctx uintptr) int64 { return int64(C.stream_av_ctx_get_rc_max_rate(cctx(ctx))) }
	streamAvCtxSetRCBufferSize = func(ctx uintptr, v int32) { C.stream_av_ctx_set_rc_buffer_size(cctx(ctx), C.int(v)) }
	streamAvCtxGetRCBufferSize = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_rc_buffer_size(cctx(ctx))) }
	streamAvCtxSetGOPSize = func(ctx uintptr, v int32) { C.stream_av_ctx_set_gop_size(cctx(ctx), C.int(v)) }
	streamAvCtxGetGOPSize = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_gop_size(cctx(ctx))) }
	streamAvCtxSetMaxBFrames = func(ctx uintptr, v int32) { C.stream_av_ctx_set_max_b_frames(cctx(ctx), C.int(v)) }
	streamAvCtxGetMaxBFrames = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_max_b_frames(cctx(ctx))) }
	streamAvCtxSetThreadCount = func(ctx uintptr, v int32) { C.stream_av_ctx_set_thread_count(cctx(ctx), C.int(v)) }
	streamAvCtxGetThreadCount = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_thread_count(cctx(ctx))) }
	streamAvCtxSetThreadType = func(ctx uintptr, v int32) { C.stream_av_ctx_set_thread_type(cctx(ctx), C.int(v)) }
	streamAvCtxGetThreadType = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_thread_type(cctx(ctx))) }
	streamAvCtxSetColorPrimaries = func(ctx uintptr, v int32) { C.stream_av_ctx_set_color_primaries(cctx(ctx), C.int(v)) }
	streamAvCtxGetColorPrimaries = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_color_primaries(cctx(ctx))) }
	streamAvCtxSetColorTRC = func(ctx uintptr, v int32) { C.stream_av_ctx_set_color_trc(cctx(ctx), C.int(v)) }
	streamAvCtxGetColorTRC = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_color_trc(cctx(ctx))) }
	streamAvCtxSetColorspace = func(ctx uintptr, v int32) { C.stream_av_ctx_set_colorspace(cctx(ctx), C.int(v)) }
	streamAvCtxGetColorspace = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_colorspace(cctx(ctx))) }
	streamAvCtxSetColorRange = func(ctx uintptr, v int32) { C.stream_av_ctx_set_color_range(cctx(ctx), C.int(v)) }
	streamAvCtxGetColorRange = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_color_range(cctx(ctx))) }
	streamAvCtxSetFlags = func(ctx uintptr, v int32) { C.stream_av_ctx_set_flags(cctx(ctx), C.int(v)) }
	streamAvCtxGetFlags = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_flags(cctx(ctx))) }
	streamAvCtxSetFlags2 = func(ctx uintptr, v int32) { C.stream_av_ctx_set_flags2(cctx(ctx), C.int(v)) }
	streamAvCtxGetFlags2 = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_flags2(cctx(ctx))) }
	streamAvCtxSetProfile = func(ctx uintptr, v int32) { C.stream_av_ctx_set_profile(cctx(ctx), C.int(v)) }
	streamAvCtxGetProfile = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_profile(cctx(ctx))) }
	streamAvCtxSetLevel = func(ctx uintptr, v int32) { C.stream_av_ctx_set_level(cctx(ctx), C.int(v)) }
	streamAvCtxGetLevel = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_level(cctx(ctx))) }
	streamAvCtxSetSampleRate = func(ctx uintptr, v int32) { C.stream_av_ctx_set_sample_rate(cctx(ctx), C.int(v)) }
	streamAvCtxGetSampleRate = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_sample_rate(cctx(ctx))) }
	streamAvCtxSetSampleFmt = func(ctx uintptr, v int32) { C.stream_av_ctx_set_sample_fmt(cctx(ctx), C.int(v)) }
	streamAvCtxGetSampleFmt = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_sample_fmt(cctx(ctx))) }
	streamAvCtxSetFrameSize = func(ctx uintptr, v int32) { C.stream_av_ctx_set_frame_size(cctx(ctx), C.int(v)) }
	streamAvCtxGetFrameSize = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_frame_size(cctx(ctx))) }
	streamAvCtxSetTimeBase = func(ctx uintptr, num, den int32) {
		C.stream_av_ctx_set_time_base(cctx(ctx), C.int(num), C.int(den))
	}
	streamAvCtxGetTimeBase = func(ctx uintptr, num, den *int32) {
		C.stream_av_ctx_get_time_base(cctx(ctx), cint(num), cint(den))
	}
	streamAvCtxSetFramerate = func(ctx uintptr, num, den int32) {
		C.stream_av_ctx_set_framerate(cctx(ctx), C.int(num), C.int(den))
	}
	streamAvCtxGetFramerate = func(ctx uintptr, num, den *int32) {
		C.stream_av_ctx_get_framerate(cctx(ctx), cint(num), cint(den))
	}
	streamAvCtxSetSampleAspectRatio = func(ctx uintptr, num, den int32) {
		C.stream_av_ctx_set_sample_aspect_ratio(cctx(ctx), C.int(num), C.int(den))
	}
	streamAvCtxGetSampleAspectRatio = func(ctx uintptr, num, den *int32) {
		C.stream_av_ctx_get_sample_aspect_ratio(cctx(ctx), cint(num), cint(den))
	}
	streamAvCtxSetChannelCount = func(ctx uintptr, v int32) { C.stream_av_ctx_set_channel_count(cctx(ctx), C.int(v)) }
	streamAvCtxGetChannelCount = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_channel_count(cctx(ctx))) }
	streamAvCtxSetChannelLayout = func(ctx uintptr, mask uint64) {
		C.stream_av_ctx_set_channel_layout(cctx(ctx), C.uint64_t(mask))
	}
	streamAvCtxGetChannelLayout = func(ctx uintptr, exact *int32) uint64 {
		return uint64(C.stream_av_ctx_get_channel_layout(cctx(ctx), cint(exact)))
	}
	streamAvCtxSetExtradata = func(ctx uintptr, data *byte, size int32) int32 {
		return int32(C.stream_av_ctx_set_extradata(cctx(ctx), (*C.uint8_t)(data), C.int(size)))
	}
	streamAvCtxGetExtradata = func(ctx uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_ctx_get_extradata(cctx(ctx))))
	}
	streamAvCtxGetExtradataSize = func(ctx uintptr) int32 { return int32(C.stream_av_ctx_get_extradata_size(cctx(ctx))) }
	streamAvCtxSetHWDeviceCtx = func(ctx, ref uintptr) { C.stream_av_ctx_set_hw_device_ctx(cctx(ctx), cbuf(ref)) }
	streamAvCtxGetHWDeviceCtx = func(ctx uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_ctx_get_hw_device_ctx(cctx(ctx))))
	}
	streamAvCtxSetHWFramesCtx = func(ctx, ref uintptr) { C.stream_av_ctx_set_hw_frames_ctx(cctx(ctx), cbuf(ref)) }
	streamAvCtxGetHWFramesCtx = func(ctx uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_ctx_get_hw_frames_ctx(cctx(ctx))))
	}

	streamAvFrameAlloc = func() uintptr { return uintptr(unsafe.Pointer(C.stream_av_frame_alloc())) }
	streamAvFrameFree = func(frame uintptr) { C.stream_av_frame_free(cframe(frame)) }
	streamAvFrameSetWidth = func(frame uintptr, v int32) { C.stream_av_frame_set_width(cframe(frame), C.int(v)) }
	streamAvFrameGetWidth = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_width(cframe(frame))) }
	streamAvFrameSetHeight = func(frame uintptr, v int32) { C.stream_av_frame_set_height(cframe(frame), C.int(v)) }
	streamAvFrameGetHeight = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_height(cframe(frame))) }
	streamAvFrameSetFormat = func(frame uintptr, v int32) { C.stream_av_frame_set_format(cframe(frame), C.int(v)) }
	streamAvFrameGetFormat = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_format(cframe(frame))) }
	streamAvFrameSetPTS = func(frame uintptr, v int64) { C.stream_av_frame_set_pts(cframe(frame), C.int64_t(v)) }
	streamAvFrameGetPTS = func(frame uintptr) int64 { return int64(C.stream_av_frame_get_pts(cframe(frame))) }
	streamAvFrameSetDuration = func(frame uintptr, v int64) { C.stream_av_frame_set_duration(cframe(frame), C.int64_t(v)) }
	streamAvFrameGetDuration = func(frame uintptr) int64 { return int64(C.stream_av_frame_get_duration(cframe(frame))) }
	streamAvFrameSetPktDTS = func(frame uintptr, v int64) { C.stream_av_frame_set_pkt_dts(cframe(frame), C.int64_t(v)) }
	streamAvFrameGetPktDTS = func(frame uintptr) int64 { return int64(C.stream_av_frame_get_pkt_dts(cframe(frame))) }
	streamAvFrameSetPictType = func(frame uintptr, v int32) { C.stream_av_frame_set_pict_type(cframe(frame), C.int(v)) }
	streamAvFrameGetPictType = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_pict_type(cframe(frame))) }
	streamAvFrameSetFlags = func(frame uintptr, v int32) { C.stream_av_frame_set_flags(cframe(frame), C.int(v)) }
	streamAvFrameGetFlags = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_flags(cframe(frame))) }
	streamAvFrameSetColorPrimaries = func(frame uintptr, v int32) {
		C.stream_av_frame_set_color_primaries(cframe(frame), C.int(v))
	}
	streamAvFrameGetColorPrimaries = func(frame uintptr) int32 {
		return int32(C.stream_av_frame_get_color_primaries(cframe(frame)))
	}
	streamAvFrameSetColorTRC = func(frame uintptr, v int32) { C.stream_av_frame_set_color_trc(cframe(frame), C.int(v)) }
	streamAvFrameGetColorTRC = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_color_trc(cframe(frame))) }
	streamAvFrameSetColorspace = func(frame uintptr, v int32) { C.stream_av_frame_set_colorspace(cframe(frame), C.int(v)) }
	streamAvFrameGetColorspace = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_colorspace(cframe(frame))) }
	streamAvFrameSetColorRange = func(frame uintptr, v int32) { C.stream_av_frame_set_color_range(cframe(frame), C.int(v)) }
	streamAvFrameGetColorRange = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_color_range(cframe(frame))) }
	streamAvFrameSetNbSamples = func(frame uintptr, v int32) { C.stream_av_frame_set_nb_samples(cframe(frame), C.int(v)) }
	streamAvFrameGetNbSamples = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_nb_samples(cframe(frame))) }
	streamAvFrameSetSampleRate = func(frame uintptr, v int32) { C.stream_av_frame_set_sample_rate(cframe(frame), C.int(v)) }
	streamAvFrameGetSampleRate = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_sample_rate(cframe(frame))) }
	streamAvFrameSetTimeBase = func(frame uintptr, num, den int32) {
		C.stream_av_frame_set_time_base(cframe(frame), C.int(num), C.int(den))
	}
	streamAvFrameGetTimeBase = func(frame uintptr, num, den *int32) {
		C.stream_av_frame_get_time_base(cframe(frame), cint(num), cint(den))
	}
	streamAvFrameSetSampleAspectRatio = func(frame uintptr, num, den int32) {
		C.stream_av_frame_set_sample_aspect_ratio(cframe(frame), C.int(num), C.int(den))
	}
	streamAvFrameGetSampleAspectRatio = func(frame uintptr, num, den *int32) {
		C.stream_av_frame_get_sample_aspect_ratio(cframe(frame), cint(num), cint(den))
	}
	streamAvFrameSetKey = func(frame uintptr, v int32) { C.stream_av_frame_set_key(cframe(frame), C.int(v)) }
	streamAvFrameGetKey = func(frame uintptr) int32 { return int32(C.stream_av_frame_get_key(cframe(frame))) }
	streamAvFrameSetChannelCount = func(frame uintptr, v int32) {
		C.stream_av_frame_set_channel_count(cframe(frame), C.int(v))
	}
	streamAvFrameGetChannelCount = func(frame uintptr) int32 {
		return int32(C.stream_av_frame_get_channel_count(cframe(frame)))
	}
	streamAvFrameSetChannelLayout = func(frame uintptr, mask uint64) {
		C.stream_av_frame_set_channel_layout(cframe(frame), C.uint64_t(mask))
	}
	streamAvFrameGetChannelLayout = func(frame uintptr, exact *int32) uint64 {
		return uint64(C.stream_av_frame_get_channel_layout(cframe(frame), cint(exact)))
	}
	streamAvFrameData = func(frame uintptr, plane int32) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_frame_data(cframe(frame), C.int(plane))))
	}
	streamAvFrameSetData = func(frame uintptr, plane int32, data uintptr) {
		C.stream_av_frame_set_data(cframe(frame), C.int(plane), (*C.uint8_t)(unsafe.Pointer(data)))
	}
	streamAvFrameLinesize = func(frame uintptr, plane int32) int32 {
		return int32(C.stream_av_frame_linesize(cframe(frame), C.int(plane)))
	}
	streamAvFrameSetLinesize = func(frame uintptr, plane, linesize int32) {
		C.stream_av_frame_set_linesize(cframe(frame), C.int(plane), C.int(linesize))
	}
	streamAvFrameExtendedDataPlane = func(frame uintptr, plane int32) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_frame_extended_data_plane(cframe(frame), C.int(plane))))
	}
	streamAvFrameSetExtendedData = func(frame, extendedData uintptr) {
		C.stream_av_frame_set_extended_data(cframe(frame), (**C.uint8_t)(unsafe.Pointer(extendedData)))
	}

	streamAvPktAlloc = func() uintptr { return uintptr(unsafe.Pointer(C.stream_av_pkt_alloc())) }
	streamAvPktFree = func(pkt uintptr) { C.stream_av_pkt_free(cpkt(pkt)) }
	streamAvPktData = func(pkt uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_pkt_data(cpkt(pkt))))
	}
	streamAvPktSize = func(pkt uintptr) int32 { return int32(C.stream_av_pkt_size(cpkt(pkt))) }
	streamAvPktGetPTS = func(pkt uintptr) int64 { return int64(C.stream_av_pkt_get_pts(cpkt(pkt))) }
	streamAvPktSetPTS = func(pkt uintptr, v int64) { C.stream_av_pkt_set_pts(cpkt(pkt), C.int64_t(v)) }
	streamAvPktGetDTS = func(pkt uintptr) int64 { return int64(C.stream_av_pkt_get_dts(cpkt(pkt))) }
	streamAvPktSetDTS = func(pkt uintptr, v int64) { C.stream_av_pkt_set_dts(cpkt(pkt), C.int64_t(v)) }
	streamAvPktGetDuration = func(pkt uintptr) int64 { return int64(C.stream_av_pkt_get_duration(cpkt(pkt))) }
	streamAvPktSetDuration = func(pkt uintptr, v int64) { C.stream_av_pkt_set_duration(cpkt(pkt), C.int64_t(v)) }
	streamAvPktGetFlags = func(pkt uintptr) int32 { return int32(C.stream_av_pkt_get_flags(cpkt(pkt))) }
	streamAvPktSetFlags = func(pkt uintptr, v int32) { C.stream_av_pkt_set_flags(cpkt(pkt), C.int(v)) }
	streamAvPktGetStreamIndex = func(pkt uintptr) int32 { return int32(C.stream_av_pkt_get_stream_index(cpkt(pkt))) }
	streamAvPktSetStreamIndex = func(pkt uintptr, v int32) { C.stream_av_pkt_set_stream_index(cpkt(pkt), C.int(v)) }
	streamAvPktGetPos = func(pkt uintptr) int64 { return int64(C.stream_av_pkt_get_pos(cpkt(pkt))) }

	streamAvFmtAlloc = func() uintptr { return uintptr(unsafe.Pointer(C.stream_av_fmt_alloc())) }
	streamAvFmtFree = func(ctx uintptr) { C.stream_av_fmt_free(cfmt(ctx)) }
	streamAvFmtNewStream = func(ctx uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_fmt_new_stream(cfmt(ctx))))
	}
	streamAvFmtNbStreams = func(ctx uintptr) uint32 { return uint32(C.stream_av_fmt_nb_streams(cfmt(ctx))) }
	streamAvFmtStream = func(ctx uintptr, index uint32) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_fmt_stream(cfmt(ctx), C.uint(index))))
	}
	streamAvFmtDuration = func(ctx uintptr) int64 { return int64(C.stream_av_fmt_duration(cfmt(ctx))) }
	streamAvFmtOformatFlags = func(ctx uintptr) int32 { return int32(C.stream_av_fmt_oformat_flags(cfmt(ctx))) }
	streamAvStreamIndex = func(st uintptr) int32 { return int32(C.stream_av_stream_index(cstream(st))) }
	streamAvStreamDuration = func(st uintptr) int64 { return int64(C.stream_av_stream_duration(cstream(st))) }
	streamAvStreamSetTimeBase = func(st uintptr, num, den int32) {
		C.stream_av_stream_set_time_base(cstream(st), C.int(num), C.int(den))
	}
	streamAvStreamGetTimeBase = func(st uintptr, num, den *int32) {
		C.stream_av_stream_get_time_base(cstream(st), cint(num), cint(den))
	}
	streamAvStreamCodecpar = func(st uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_stream_codecpar(cstream(st))))
	}

	streamAvParAlloc = func() uintptr { return uintptr(unsafe.Pointer(C.stream_av_par_alloc())) }
	streamAvParFree = func(par uintptr) { C.stream_av_par_free(cpar(par)) }
	streamAvParSetCodecType = func(par uintptr, v int32) { C.stream_av_par_set_codec_type(cpar(par), C.int(v)) }
	streamAvParGetCodecType = func(par uintptr) int32 { return int32(C.stream_av_par_get_codec_type(cpar(par))) }
	streamAvParSetCodecID = func(par uintptr, v int32) { C.stream_av_par_set_codec_id(cpar(par), C.int(v)) }
	streamAvParGetCodecID = func(par uintptr) int32 { return int32(C.stream_av_par_get_codec_id(cpar(par))) }
	streamAvParSetFormat = func(par uintptr, v int32) { C.stream_av_par_set_format(cpar(par), C.int(v)) }
	streamAvParGetFormat = func(par uintptr) int32 { return int32(C.stream_av_par_get_format(cpar(par))) }
	streamAvParSetWidth = func(par uintptr, v int32) { C.stream_av_par_set_width(cpar(par), C.int(v)) }
	streamAvParGetWidth = func(par uintptr) int32 { return int32(C.stream_av_par_get_width(cpar(par))) }
	streamAvParSetHeight = func(par uintptr, v int32) { C.stream_av_par_set_height(cpar(par), C.int(v)) }
	streamAvParGetHeight = func(par uintptr) int32 { return int32(C.stream_av_par_get_height(cpar(par))) }
	streamAvParSetSampleRate = func(par uintptr, v int32) { C.stream_av_par_set_sample_rate(cpar(par), C.int(v)) }
	streamAvParGetSampleRate = func(par uintptr) int32 { return int32(C.stream_av_par_get_sample_rate(cpar(par))) }
	streamAvParSetBitRate = func(par uintptr, v int64) { C.stream_av_par_set_bit_rate(cpar(par), C.int64_t(v)) }
	streamAvParGetBitRate = func(par uintptr) int64 { return int64(C.stream_av_par_get_bit_rate(cpar(par))) }
	streamAvParSetFrameSize = func(par uintptr, v int32) { C.stream_av_par_set_frame_size(cpar(par), C.int(v)) }
	streamAvParGetFrameSize = func(par uintptr) int32 { return int32(C.stream_av_par_get_frame_size(cpar(par))) }
	streamAvParSetChannelCount = func(par uintptr, v int32) { C.stream_av_par_set_channel_count(cpar(par), C.int(v)) }
	streamAvParGetChannelCount = func(par uintptr) int32 { return int32(C.stream_av_par_get_channel_count(cpar(par))) }
	streamAvParSetChannelLayout = func(par uintptr, mask uint64) {
		C.stream_av_par_set_channel_layout(cpar(par), C.uint64_t(mask))
	}
	streamAvParGetChannelLayout = func(par uintptr, exact *int32) uint64 {
		return uint64(C.stream_av_par_get_channel_layout(cpar(par), cint(exact)))
	}
	streamAvParSetExtradata = func(par uintptr, data *byte, size int32) int32 {
		return int32(C.stream_av_par_set_extradata(cpar(par), (*C.uint8_t)(data), C.int(size)))
	}
	streamAvParGetExtradata = func(par uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_par_get_extradata(cpar(par))))
	}
	streamAvParGetExtradataSize = func(par uintptr) int32 { return int32(C.stream_av_par_get_extradata_size(cpar(par))) }

	streamAvBufferAlloc = func(size int32) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_buffer_alloc(C.int(size))))
	}
	streamAvBufferRef = func(buf uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_buffer_ref(cbuf(buf))))
	}
	streamAvBufferUnref = func(buf uintptr) { C.stream_av_buffer_unref(cbuf(buf)) }
	streamAvBufferRefcount = func(buf uintptr) int32 { return int32(C.stream_av_buffer_refcount(cbuf(buf))) }
	streamAvBufferData = func(buf uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_buffer_data(cbuf(buf))))
	}
	streamAvBufferSize = func(buf uintptr) int64 { return int64(C.stream_av_buffer_size(cbuf(buf))) }
	streamAvHWDeviceCtxAlloc = func(deviceType int32) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_hwdevice_ctx_alloc(C.int(deviceType))))
	}
	streamAvHWFrameCtxAlloc = func(deviceRef uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.stream_av_hwframe_ctx_alloc(cbuf(deviceRef))))
	}
	streamAvHWFramesSetFormat = func(ref uintptr, v int32) { C.stream_av_hwframes_set_format(cbuf(ref), C.int(v)) }
	streamAvHWFramesGetFormat = func(ref uintptr) int32 { return int32(C.stream_av_hwframes_get_format(cbuf(ref))) }
	streamAvHWFramesSetSWFormat = func(ref uintptr, v int32) { C.stream_av_hwframes_set_sw_format(cbuf(ref), C.int(v)) }
	streamAvHWFramesGetSWFormat = func(ref uintptr) int32 { return int32(C.stream_av_hwframes_get_sw_format(cbuf(ref))) }
	streamAvHWFramesSetWidth = func(ref uintptr, v int32) { C.stream_av_hwframes_set_width(cbuf(ref), C.int(v)) }
	streamAvHWFramesGetWidth = func(ref uintptr) int32 { return int32(C.stream_av_hwframes_get_width(cbuf(ref))) }
	streamAvHWFramesSetHeight = func(ref uintptr, v int32) { C.stream_av_hwframes_set_height(cbuf(ref), C.int(v)) }
	streamAvHWFramesGetHeight = func(ref uintptr) int32 { return int32(C.stream_av_hwframes_get_height(cbuf(ref))) }
	streamAvHWFramesSetInitialPoolSize = func(ref uintptr, v int32) {
		C.stream_av_hwframes_set_initial_pool_size(cbuf(ref), C.int(v))
	}
	streamAvHWFramesGetInitialPoolSize = func(ref uintptr) int32 {
		return int32(C.stream_av_hwframes_get_initial_pool_size(cbuf(ref)))
	}

	streamAvImageBufferSize = func(pixFmt, width, height, align int32) int32 {
		return int32(C.stream_av_image_buffer_size(C.int(pixFmt), C.int(width), C.int(height), C.int(align)))
	}
	streamAvImageFillArrays = func(dstData unsafe.Pointer, dstLinesize *int32, src uintptr, pixFmt, width, height, align int32) int32 {
		return int32(C.stream_av_image_fill_arrays(
			(**C.uint8_t)(dstData), cint(dstLinesize),
			(*C.uint8_t)(unsafe.Pointer(src)),
			C.int(pixFmt), C.int(width), C.int(height), C.int(align)))
	}
	streamAvSamplesBufferSize = func(channels, nbSamples, sampleFmt, align int32, linesize *int32) int32 {
		return int32(C.stream_av_samples_buffer_size(
			C.int(channels), C.int(nbSamples), C.int(sampleFmt), C.int(align), cint(linesize)))
	}
	streamAvSamplesFillArrays = func(audioData unsafe.Pointer, linesize *int32, buf uintptr, channels, nbSamples, sampleFmt, align int32) int32 {
		return int32(C.stream_av_samples_fill_arrays(
			(**C.uint8_t)(audioData), cint(linesize),
			(*C.uint8_t)(unsafe.Pointer(buf)),
			C.int(channels), C.int(nbSamples), C.int(sampleFmt), C.int(align)))
	}
	streamAvBytesPerSample = func(sampleFmt int32) int32 {
		return int32(C.stream_av_bytes_per_sample(C.int(sampleFmt)))
	}
	streamAvSampleFmtIsPlanar = func(sampleFmt int32) int32 {
		return int32(C.stream_av_sample_fmt_is_planar(C.int(sampleFmt)))
	}
	streamAvDefaultChannelLayout = func(channels int32) uint64 {
		return uint64(C.stream_av_default_channel_layout(C.int(channels)))
	}
}
