// Package avfields provides version-stable accessors for the fields of
// FFmpeg's public structs (AVCodecContext, AVFrame, AVPacket, AVStream,
// AVCodecParameters, hardware context buffer references).
//
// FFmpeg changes the binary layout of these structs across major releases.
// Rather than mirroring any particular layout in Go, the package calls into
// libstream_avfields, a thin C wrapper built from clib/ against whatever
// FFmpeg is installed. The wrapper resolves, at its own compile time, which
// representation backs each versioned concept (channel layout, key-frame
// signal) and exposes exactly one logical field per concept; building it
// against an FFmpeg with no known layout generation fails the build.
//
// # Ownership
//
// Every handle borrows a struct owned by the caller. Accessors never
// allocate or free the structs they touch; the only exceptions are the
// explicit Alloc*/Free* lifecycle helpers, the extradata setters (which copy
// into library-owned padded storage), and the hardware-context setters
// (which adjust reference counts on the supplied buffer reference).
//
// # Concurrency
//
// Accessors take no locks. A struct instance must not be mutated while
// another goroutine reads or writes it; synchronization is the caller's
// responsibility. Rational pairs (time base, frame rate, aspect ratio) cross
// the boundary as one call so no reader of the same struct can observe a
// torn pair wider than the two underlying stores.
//
// # Native Library
//
// Bindings load libstream_avfields built from clib/ into build/. Set
// STREAM_AVFIELDS_LIB_PATH or STREAM_SDK_LIB_PATH to override the search
// path. By default the package uses purego (CGO_ENABLED=0). With CGO enabled
// it links against the same wrapper for lower overhead.
package avfields
