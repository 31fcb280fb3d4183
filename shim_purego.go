//go:build (darwin || linux) && !cgo

// purego binding for libstream_avfields. Loads the wrapper dynamically at
// runtime, so CGO_ENABLED=0 builds work as long as the library was built
// (see clib/Makefile).

package avfields

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

var streamAvHandle uintptr

func loadShim() error {
	paths := getStreamAvLibPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			streamAvHandle = handle
			registerStreamAvSymbols()
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("failed to load libstream_avfields: %w", lastErr)
	}
	return errors.New("libstream_avfields not found in any standard location")
}

func getStreamAvLibPaths() []string {
	var paths []string

	libName := "libstream_avfields.so"
	if runtime.GOOS == "darwin" {
		libName = "libstream_avfields.dylib"
	}

	// Environment variable overrides
	if envPath := os.Getenv("STREAM_AVFIELDS_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}
	if envPath := os.Getenv("STREAM_SDK_LIB_PATH"); envPath != "" {
		paths = append(paths, filepath.Join(envPath, libName))
	}

	// Try to find based on executable location
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, libName),
			filepath.Join(exeDir, "..", "lib", libName),
		)
	}

	// Try module root (uses go.mod discovery - works in IDE/tests)
	if root := findModuleRoot(); root != "" {
		paths = append(paths, filepath.Join(root, "build", libName))
	}

	// Try to find based on working directory
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths,
			filepath.Join(wd, "build", libName),
			filepath.Join(wd, "..", "build", libName),
			filepath.Join(wd, "..", "..", "build", libName),
		)
	}

	// System paths
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"libstream_avfields.dylib",
			"/usr/local/lib/libstream_avfields.dylib",
			"/opt/homebrew/lib/libstream_avfields.dylib",
		)
	case "linux":
		paths = append(paths,
			"libstream_avfields.so",
			"/usr/local/lib/libstream_avfields.so",
			"/usr/lib/libstream_avfields.so",
		)
	}

	return paths
}

func registerStreamAvSymbols() {
	// Version / generation introspection
	purego.RegisterLibFunc(&streamAvVersionAvutil, streamAvHandle, "stream_av_version_avutil")
	purego.RegisterLibFunc(&streamAvVersionAvcodec, streamAvHandle, "stream_av_version_avcodec")
	purego.RegisterLibFunc(&streamAvVersionAvformat, streamAvHandle, "stream_av_version_avformat")
	purego.RegisterLibFunc(&streamAvChannelLayoutGeneration, streamAvHandle, "stream_av_channel_layout_generation")
	purego.RegisterLibFunc(&streamAvKeyFrameGeneration, streamAvHandle, "stream_av_key_frame_generation")
	purego.RegisterLibFunc(&streamAvStrerror, streamAvHandle, "stream_av_strerror")

	// AVCodecContext
	purego.RegisterLibFunc(&streamAvCtxAlloc, streamAvHandle, "stream_av_ctx_alloc")
	purego.RegisterLibFunc(&streamAvCtxFree, streamAvHandle, "stream_av_ctx_free")
	purego.RegisterLibFunc(&streamAvCtxSetWidth, streamAvHandle, "stream_av_ctx_set_width")
	purego.RegisterLibFunc(&streamAvCtxGetWidth, streamAvHandle, "stream_av_ctx_get_width")
	purego.RegisterLibFunc(&streamAvCtxSetHeight, streamAvHandle, "stream_av_ctx_set_height")
	purego.RegisterLibFunc(&streamAvCtxGetHeight, streamAvHandle, "stream_av_ctx_get_height")
	purego.RegisterLibFunc(&streamAvCtxSetCodedWidth, streamAvHandle, "stream_av_ctx_set_coded_width")
	purego.RegisterLibFunc(&streamAvCtxGetCodedWidth, streamAvHandle, "stream_av_ctx_get_coded_width")
	purego.RegisterLibFunc(&streamAvCtxSetCodedHeight, streamAvHandle, "stream_av_ctx_set_coded_height")
	purego.RegisterLibFunc(&streamAvCtxGetCodedHeight, streamAvHandle, "stream_av_ctx_get_coded_height")
	purego.RegisterLibFunc(&streamAvCtxSetPixFmt, streamAvHandle, "stream_av_ctx_set_pix_fmt")
	purego.RegisterLibFunc(&streamAvCtxGetPixFmt, streamAvHandle, "stream_av_ctx_get_pix_fmt")
	purego.RegisterLibFunc(&streamAvCtxSetBitRate, streamAvHandle, "stream_av_ctx_set_bit_rate")
	purego.RegisterLibFunc(&streamAvCtxGetBitRate, streamAvHandle, "stream_av_ctx_get_bit_rate")
	purego.RegisterLibFunc(&streamAvCtxSetRCMaxRate, streamAvHandle, "stream_av_ctx_set_rc_max_rate")
	purego.RegisterLibFunc(&streamAvCtxGetRCMaxRate, streamAvHandle, "stream_av_ctx_get_rc_max_rate")
	purego.RegisterLibFunc(&streamAvCtxSetRCBufferSize, streamAvHandle, "stream_av_ctx_set_rc_buffer_size")
	purego.RegisterLibFunc(&streamAvCtxGetRCBufferSize, streamAvHandle, "stream_av_ctx_get_rc_buffer_size")
	purego.RegisterLibFunc(&streamAvCtxSetGOPSize, streamAvHandle, "stream_av_ctx_set_gop_size")
	purego.RegisterLibFunc(&streamAvCtxGetGOPSize, streamAvHandle, "stream_av_ctx_get_gop_size")
	purego.RegisterLibFunc(&streamAvCtxSetMaxBFrames, streamAvHandle, "stream_av_ctx_set_max_b_frames")
	purego.RegisterLibFunc(&streamAvCtxGetMaxBFrames, streamAvHandle, "stream_av_ctx_get_max_b_frames")
	purego.RegisterLibFunc(&streamAvCtxSetThreadCount, streamAvHandle, "stream_av_ctx_set_thread_count")
	purego.RegisterLibFunc(&streamAvCtxGetThreadCount, streamAvHandle, "stream_av_ctx_get_thread_count")
	purego.RegisterLibFunc(&streamAvCtxSetThreadType, streamAvHandle, "stream_av_ctx_set_thread_type")
	purego.RegisterLibFunc(&streamAvCtxGetThreadType, streamAvHandle, "stream_av_ctx_get_thread_type")
	purego.RegisterLibFunc(&streamAvCtxSetColorPrimaries, streamAvHandle, "stream_av_ctx_set_color_primaries")
	purego.RegisterLibFunc(&streamAvCtxGetColorPrimaries, streamAvHandle, "stream_av_ctx_get_color_primaries")
	purego.RegisterLibFunc(&streamAvCtxSetColorTRC, streamAvHandle, "stream_av_ctx_set_color_trc")
	purego.RegisterLibFunc(&streamAvCtxGetColorTRC, streamAvHandle, "stream_av_ctx_get_color_trc")
	purego.RegisterLibFunc(&streamAvCtxSetColorspace, streamAvHandle, "stream_av_ctx_set_colorspace")
	purego.RegisterLibFunc(&streamAvCtxGetColorspace, streamAvHandle, "stream_av_ctx_get_colorspace")
	purego.RegisterLibFunc(&streamAvCtxSetColorRange, streamAvHandle, "stream_av_ctx_set_color_range")
	purego.RegisterLibFunc(&streamAvCtxGetColorRange, streamAvHandle, "stream_av_ctx_get_color_range")
	purego.RegisterLibFunc(&streamAvCtxSetFlags, streamAvHandle, "stream_av_ctx_set_flags")
	purego.RegisterLibFunc(&streamAvCtxGetFlags, streamAvHandle, "stream_av_ctx_get_flags")
	purego.RegisterLibFunc(&streamAvCtxSetFlags2, streamAvHandle, "stream_av_ctx_set_flags2")
	purego.RegisterLibFunc(&streamAvCtxGetFlags2, streamAvHandle, "stream_av_ctx_get_flags2")
	purego.RegisterLibFunc(&streamAvCtxSetProfile, streamAvHandle, "stream_av_ctx_set_profile")
	purego.RegisterLibFunc(&streamAvCtxGetProfile, streamAvHandle, "stream_av_ctx_get_profile")
	purego.RegisterLibFunc(&streamAvCtxSetLevel, streamAvHandle, "stream_av_ctx_set_level")
	purego.RegisterLibFunc(&streamAvCtxGetLevel, streamAvHandle, "stream_av_ctx_get_level")
	purego.RegisterLibFunc(&streamAvCtxSetSampleRate, streamAvHandle, "stream_av_ctx_set_sample_rate")
	purego.RegisterLibFunc(&streamAvCtxGetSampleRate, streamAvHandle, "stream_av_ctx_get_sample_rate")
	purego.RegisterLibFunc(&streamAvCtxSetSampleFmt, streamAvHandle, "stream_av_ctx_set_sample_fmt")
	purego.RegisterLibFunc(&streamAvCtxGetSampleFmt, streamAvHandle, "stream_av_ctx_get_sample_fmt")
	purego.RegisterLibFunc(&streamAvCtxSetFrameSize, streamAvHandle, "stream_av_ctx_set_frame_size")
	purego.RegisterLibFunc(&streamAvCtxGetFrameSize, streamAvHandle, "stream_av_ctx_get_frame_size")
	purego.RegisterLibFunc(&streamAvCtxSetTimeBase, streamAvHandle, "stream_av_ctx_set_time_base")
	purego.RegisterLibFunc(&streamAvCtxGetTimeBase, streamAvHandle, "stream_av_ctx_get_time_base")
	purego.RegisterLibFunc(&streamAvCtxSetFramerate, streamAvHandle, "stream_av_ctx_set_framerate")
	purego.RegisterLibFunc(&streamAvCtxGetFramerate, streamAvHandle, "stream_av_ctx_get_framerate")
	purego.RegisterLibFunc(&streamAvCtxSetSampleAspectRatio, streamAvHandle, "stream_av_ctx_set_sample_aspect_ratio")
	purego.RegisterLibFunc(&streamAvCtxGetSampleAspectRatio, streamAvHandle, "stream_av_ctx_get_sample_aspect_ratio")
	purego.RegisterLibFunc(&streamAvCtxSetChannelCount, streamAvHandle, "stream_av_ctx_set_channel_count")
	purego.RegisterLibFunc(&streamAvCtxGetChannelCount, streamAvHandle, "stream_av_ctx_get_channel_count")
	purego.RegisterLibFunc(&streamAvCtxSetChannelLayout, streamAvHandle, "stream_av_ctx_set_channel_layout")
	purego.RegisterLibFunc(&streamAvCtxGetChannelLayout, streamAvHandle, "stream_av_ctx_get_channel_layout")
	purego.RegisterLibFunc(&streamAvCtxSetExtradata, streamAvHandle, "stream_av_ctx_set_extradata")
	purego.RegisterLibFunc(&streamAvCtxGetExtradata, streamAvHandle, "stream_av_ctx_get_extradata")
	purego.RegisterLibFunc(&streamAvCtxGetExtradataSize, streamAvHandle, "stream_av_ctx_get_extradata_size")
	purego.RegisterLibFunc(&streamAvCtxSetHWDeviceCtx, streamAvHandle, "stream_av_ctx_set_hw_device_ctx")
	purego.RegisterLibFunc(&streamAvCtxGetHWDeviceCtx, streamAvHandle, "stream_av_ctx_get_hw_device_ctx")
	purego.RegisterLibFunc(&streamAvCtxSetHWFramesCtx, streamAvHandle, "stream_av_ctx_set_hw_frames_ctx")
	purego.RegisterLibFunc(&streamAvCtxGetHWFramesCtx, streamAvHandle, "stream_av_ctx_get_hw_frames_ctx")

	// AVFrame
	purego.RegisterLibFunc(&streamAvFrameAlloc, streamAvHandle, "stream_av_frame_alloc")
	purego.RegisterLibFunc(&streamAvFrameFree, streamAvHandle, "stream_av_frame_free")
	purego.RegisterLibFunc(&streamAvFrameSetWidth, streamAvHandle, "stream_av_frame_set_width")
	purego.RegisterLibFunc(&streamAvFrameGetWidth, streamAvHandle, "stream_av_frame_get_width")
	purego.RegisterLibFunc(&streamAvFrameSetHeight, streamAvHandle, "stream_av_frame_set_height")
	purego.RegisterLibFunc(&streamAvFrameGetHeight, streamAvHandle, "stream_av_frame_get_height")
	purego.RegisterLibFunc(&streamAvFrameSetFormat, streamAvHandle, "stream_av_frame_set_format")
	purego.RegisterLibFunc(&streamAvFrameGetFormat, streamAvHandle, "stream_av_frame_get_format")
	purego.RegisterLibFunc(&streamAvFrameSetPTS, streamAvHandle, "stream_av_frame_set_pts")
	purego.RegisterLibFunc(&streamAvFrameGetPTS, streamAvHandle, "stream_av_frame_get_pts")
	purego.RegisterLibFunc(&streamAvFrameSetDuration, streamAvHandle, "stream_av_frame_set_duration")
	purego.RegisterLibFunc(&streamAvFrameGetDuration, streamAvHandle, "stream_av_frame_get_duration")
	purego.RegisterLibFunc(&streamAvFrameSetPktDTS, streamAvHandle, "stream_av_frame_set_pkt_dts")
	purego.RegisterLibFunc(&streamAvFrameGetPktDTS, streamAvHandle, "stream_av_frame_get_pkt_dts")
	purego.RegisterLibFunc(&streamAvFrameSetPictType, streamAvHandle, "stream_av_frame_set_pict_type")
	purego.RegisterLibFunc(&streamAvFrameGetPictType, streamAvHandle, "stream_av_frame_get_pict_type")
	purego.RegisterLibFunc(&streamAvFrameSetFlags, streamAvHandle, "stream_av_frame_set_flags")
	purego.RegisterLibFunc(&streamAvFrameGetFlags, streamAvHandle, "stream_av_frame_get_flags")
	purego.RegisterLibFunc(&streamAvFrameSetColorPrimaries, streamAvHandle, "stream_av_frame_set_color_primaries")
	purego.RegisterLibFunc(&streamAvFrameGetColorPrimaries, streamAvHandle, "stream_av_frame_get_color_primaries")
	purego.RegisterLibFunc(&streamAvFrameSetColorTRC, streamAvHandle, "stream_av_frame_set_color_trc")
	purego.RegisterLibFunc(&streamAvFrameGetColorTRC, streamAvHandle, "stream_av_frame_get_color_trc")
	purego.RegisterLibFunc(&streamAvFrameSetColorspace, streamAvHandle, "stream_av_frame_set_colorspace")
	purego.RegisterLibFunc(&streamAvFrameGetColorspace, streamAvHandle, "stream_av_frame_get_colorspace")
	purego.RegisterLibFunc(&streamAvFrameSetColorRange, streamAvHandle, "stream_av_frame_set_color_range")
	purego.RegisterLibFunc(&streamAvFrameGetColorRange, streamAvHandle, "stream_av_frame_get_color_range")
	purego.RegisterLibFunc(&streamAvFrameSetNbSamples, streamAvHandle, "stream_av_frame_set_nb_samples")
	purego.RegisterLibFunc(&streamAvFrameGetNbSamples, streamAvHandle, "stream_av_frame_get_nb_samples")
	purego.RegisterLibFunc(&streamAvFrameSetSampleRate, streamAvHandle, "stream_av_frame_set_sample_rate")
	purego.RegisterLibFunc(&streamAvFrameGetSampleRate, streamAvHandle, "stream_av_frame_get_sample_rate")
	purego.RegisterLibFunc(&streamAvFrameSetTimeBase, streamAvHandle, "stream_av_frame_set_time_base")
	purego.RegisterLibFunc(&streamAvFrameGetTimeBase, streamAvHandle, "stream_av_frame_get_time_base")
	purego.RegisterLibFunc(&streamAvFrameSetSampleAspectRatio, streamAvHandle, "stream_av_frame_set_sample_aspect_ratio")
	purego.RegisterLibFunc(&streamAvFrameGetSampleAspectRatio, streamAvHandle, "stream_av_frame_get_sample_aspect_ratio")
	purego.RegisterLibFunc(&streamAvFrameSetKey, streamAvHandle, "stream_av_frame_set_key")
	purego.RegisterLibFunc(&streamAvFrameGetKey, streamAvHandle, "stream_av_frame_get_key")
	purego.RegisterLibFunc(&streamAvFrameSetChannelCount, streamAvHandle, "stream_av_frame_set_channel_count")
	purego.RegisterLibFunc(&streamAvFrameGetChannelCount, streamAvHandle, "stream_av_frame_get_channel_count")
	purego.RegisterLibFunc(&streamAvFrameSetChannelLayout, streamAvHandle, "stream_av_frame_set_channel_layout")
	purego.RegisterLibFunc(&streamAvFrameGetChannelLayout, streamAvHandle, "stream_av_frame_get_channel_layout")
	purego.RegisterLibFunc(&streamAvFrameData, streamAvHandle, "stream_av_frame_data")
	purego.RegisterLibFunc(&streamAvFrameSetData, streamAvHandle, "stream_av_frame_set_data")
	purego.RegisterLibFunc(&streamAvFrameLinesize, streamAvHandle, "stream_av_frame_linesize")
	purego.RegisterLibFunc(&streamAvFrameSetLinesize, streamAvHandle, "stream_av_frame_set_linesize")
	purego.RegisterLibFunc(&streamAvFrameExtendedDataPlane, streamAvHandle, "stream_av_frame_extended_data_plane")
	purego.RegisterLibFunc(&streamAvFrameSetExtendedData, streamAvHandle, "stream_av_frame_set_extended_data")

	// AVPacket
	purego.RegisterLibFunc(&streamAvPktAlloc, streamAvHandle, "stream_av_pkt_alloc")
	purego.RegisterLibFunc(&streamAvPktFree, streamAvHandle, "stream_av_pkt_free")
	purego.RegisterLibFunc(&streamAvPktData, streamAvHandle, "stream_av_pkt_data")
	purego.RegisterLibFunc(&streamAvPktSize, streamAvHandle, "stream_av_pkt_size")
	purego.RegisterLibFunc(&streamAvPktGetPTS, streamAvHandle, "stream_av_pkt_get_pts")
	purego.RegisterLibFunc(&streamAvPktSetPTS, streamAvHandle, "stream_av_pkt_set_pts")
	purego.RegisterLibFunc(&streamAvPktGetDTS, streamAvHandle, "stream_av_pkt_get_dts")
	purego.RegisterLibFunc(&streamAvPktSetDTS, streamAvHandle, "stream_av_pkt_set_dts")
	purego.RegisterLibFunc(&streamAvPktGetDuration, streamAvHandle, "stream_av_pkt_get_duration")
	purego.RegisterLibFunc(&streamAvPktSetDuration, streamAvHandle, "stream_av_pkt_set_duration")
	purego.RegisterLibFunc(&streamAvPktGetFlags, streamAvHandle, "stream_av_pkt_get_flags")
	purego.RegisterLibFunc(&streamAvPktSetFlags, streamAvHandle, "stream_av_pkt_set_flags")
	purego.RegisterLibFunc(&streamAvPktGetStreamIndex, streamAvHandle, "stream_av_pkt_get_stream_index")
	purego.RegisterLibFunc(&streamAvPktSetStreamIndex, streamAvHandle, "stream_av_pkt_set_stream_index")
	purego.RegisterLibFunc(&streamAvPktGetPos, streamAvHandle, "stream_av_pkt_get_pos")

	// AVFormatContext / AVStream
	purego.RegisterLibFunc(&streamAvFmtAlloc, streamAvHandle, "stream_av_fmt_alloc")
	purego.RegisterLibFunc(&streamAvFmtFree, streamAvHandle, "stream_av_fmt_free")
	purego.RegisterLibFunc(&streamAvFmtNewStream, streamAvHandle, "stream_av_fmt_new_stream")
	purego.RegisterLibFunc(&streamAvFmtNbStreams, streamAvHandle, "stream_av_fmt_nb_streams")
	purego.RegisterLibFunc(&streamAvFmtStream, streamAvHandle, "stream_av_fmt_stream")
	purego.RegisterLibFunc(&streamAvFmtDuration, streamAvHandle, "stream_av_fmt_duration")
	purego.RegisterLibFunc(&streamAvFmtOformatFlags, streamAvHandle, "stream_av_fmt_oformat_flags")
	purego.RegisterLibFunc(&streamAvStreamIndex, streamAvHandle, "stream_av_stream_index")
	purego.RegisterLibFunc(&streamAvStreamDuration, streamAvHandle, "stream_av_stream_duration")
	purego.RegisterLibFunc(&streamAvStreamSetTimeBase, streamAvHandle, "stream_av_stream_set_time_base")
	purego.RegisterLibFunc(&streamAvStreamGetTimeBase, streamAvHandle, "stream_av_stream_get_time_base")
	purego.RegisterLibFunc(&streamAvStreamCodecpar, streamAvHandle, "stream_av_stream_codecpar")

	// AVCodecParameters
	purego.RegisterLibFunc(&streamAvParAlloc, streamAvHandle, "stream_av_par_alloc")
	purego.RegisterLibFunc(&streamAvParFree, streamAvHandle, "stream_av_par_free")
	purego.RegisterLibFunc(&streamAvParSetCodecType, streamAvHandle, "stream_av_par_set_codec_type")
	purego.RegisterLibFunc(&streamAvParGetCodecType, streamAvHandle, "stream_av_par_get_codec_type")
	purego.RegisterLibFunc(&streamAvParSetCodecID, streamAvHandle, "stream_av_par_set_codec_id")
	purego.RegisterLibFunc(&streamAvParGetCodecID, streamAvHandle, "stream_av_par_get_codec_id")
	purego.RegisterLibFunc(&streamAvParSetFormat, streamAvHandle, "stream_av_par_set_format")
	purego.RegisterLibFunc(&streamAvParGetFormat, streamAvHandle, "stream_av_par_get_format")
	purego.RegisterLibFunc(&streamAvParSetWidth, streamAvHandle, "stream_av_par_set_width")
	purego.RegisterLibFunc(&streamAvParGetWidth, streamAvHandle, "stream_av_par_get_width")
	purego.RegisterLibFunc(&streamAvParSetHeight, streamAvHandle, "stream_av_par_set_height")
	purego.RegisterLibFunc(&streamAvParGetHeight, streamAvHandle, "stream_av_par_get_height")
	purego.RegisterLibFunc(&streamAvParSetSampleRate, streamAvHandle, "stream_av_par_set_sample_rate")
	purego.RegisterLibFunc(&streamAvParGetSampleRate, streamAvHandle, "stream_av_par_get_sample_rate")
	purego.RegisterLibFunc(&streamAvParSetBitRate, streamAvHandle, "stream_av_par_set_bit_rate")
	purego.RegisterLibFunc(&streamAvParGetBitRate, streamAvHandle, "stream_av_par_get_bit_rate")
	purego.RegisterLibFunc(&streamAvParSetFrameSize, streamAvHandle, "stream_av_par_set_frame_size")
	purego.RegisterLibFunc(&streamAvParGetFrameSize, streamAvHandle, "stream_av_par_get_frame_size")
	purego.RegisterLibFunc(&streamAvParSetChannelCount, streamAvHandle, "stream_av_par_set_channel_count")
	purego.RegisterLibFunc(&streamAvParGetChannelCount, streamAvHandle, "stream_av_par_get_channel_count")
	purego.RegisterLibFunc(&streamAvParSetChannelLayout, streamAvHandle, "stream_av_par_set_channel_layout")
	purego.RegisterLibFunc(&streamAvParGetChannelLayout, streamAvHandle, "stream_av_par_get_channel_layout")
	purego.RegisterLibFunc(&streamAvParSetExtradata, streamAvHandle, "stream_av_par_set_extradata")
	purego.RegisterLibFunc(&streamAvParGetExtradata, streamAvHandle, "stream_av_par_get_extradata")
	purego.RegisterLibFunc(&streamAvParGetExtradataSize, streamAvHandle, "stream_av_par_get_extradata_size")

	// AVBufferRef / hardware contexts
	purego.RegisterLibFunc(&streamAvBufferAlloc, streamAvHandle, "stream_av_buffer_alloc")
	purego.RegisterLibFunc(&streamAvBufferRef, streamAvHandle, "stream_av_buffer_ref")
	purego.RegisterLibFunc(&streamAvBufferUnref, streamAvHandle, "stream_av_buffer_unref")
	purego.RegisterLibFunc(&streamAvBufferRefcount, streamAvHandle, "stream_av_buffer_refcount")
	purego.RegisterLibFunc(&streamAvBufferData, streamAvHandle, "stream_av_buffer_data")
	purego.RegisterLibFunc(&streamAvBufferSize, streamAvHandle, "stream_av_buffer_size")
	purego.RegisterLibFunc(&streamAvHWDeviceCtxAlloc, streamAvHandle, "stream_av_hwdevice_ctx_alloc")
	purego.RegisterLibFunc(&streamAvHWFrameCtxAlloc, streamAvHandle, "stream_av_hwframe_ctx_alloc")
	purego.RegisterLibFunc(&streamAvHWFramesSetFormat, streamAvHandle, "stream_av_hwframes_set_format")
	purego.RegisterLibFunc(&streamAvHWFramesGetFormat, streamAvHandle, "stream_av_hwframes_get_format")
	purego.RegisterLibFunc(&streamAvHWFramesSetSWFormat, streamAvHandle, "stream_av_hwframes_set_sw_format")
	purego.RegisterLibFunc(&streamAvHWFramesGetSWFormat, streamAvHandle, "stream_av_hwframes_get_sw_format")
	purego.RegisterLibFunc(&streamAvHWFramesSetWidth, streamAvHandle, "stream_av_hwframes_set_width")
	purego.RegisterLibFunc(&streamAvHWFramesGetWidth, streamAvHandle, "stream_av_hwframes_get_width")
	purego.RegisterLibFunc(&streamAvHWFramesSetHeight, streamAvHandle, "stream_av_hwframes_set_height")
	purego.RegisterLibFunc(&streamAvHWFramesGetHeight, streamAvHandle, "stream_av_hwframes_get_height")
	purego.RegisterLibFunc(&streamAvHWFramesSetInitialPoolSize, streamAvHandle, "stream_av_hwframes_set_initial_pool_size")
	purego.RegisterLibFunc(&streamAvHWFramesGetInitialPoolSize, streamAvHandle, "stream_av_hwframes_get_initial_pool_size")

	// Buffer geometry
	purego.RegisterLibFunc(&streamAvImageBufferSize, streamAvHandle, "stream_av_image_buffer_size")
	purego.RegisterLibFunc(&streamAvImageFillArrays, streamAvHandle, "stream_av_image_fill_arrays")
	purego.RegisterLibFunc(&streamAvSamplesBufferSize, streamAvHandle, "stream_av_samples_buffer_size")
	purego.RegisterLibFunc(&streamAvSamplesFillArrays, streamAvHandle, "stream_av_samples_fill_arrays")
	purego.RegisterLibFunc(&streamAvBytesPerSample, streamAvHandle, "stream_av_bytes_per_sample")
	purego.RegisterLibFunc(&streamAvSampleFmtIsPlanar, streamAvHandle, "stream_av_sample_fmt_is_planar")
	purego.RegisterLibFunc(&streamAvDefaultChannelLayout, streamAvHandle, "stream_av_default_channel_layout")
}
