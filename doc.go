// Package speechwarp is an in-memory forced-alignment core: it time-warps a
// labeled reference timeline (segments → words → phones) onto a source audio
// recording using multi-pass windowed Dynamic Time Warping over MFCC features.
//
// 🚀 What is speechwarp?
//
//	A library that brings together everything a forced aligner needs
//	between "two PCM buffers" and "a retimed timeline":
//		• Raw audio primitives: silence scanning, resampling, downmix, WAV I/O
//		• MFCC feature extraction with tunable window/hop/FFT geometry
//		• Banded DTW: Sakoe–Chiba or per-row centered bands, ragged storage
//		• Compacted warp paths: per-reference-frame source ranges
//		• Multi-pass refinement: coarse corridor first, fine band inside it
//		• Timeline remapping with silence trimming at interval edges
//		• Indirect alignment through a synthesized intermediate + anchor table
//
// ✨ Why choose speechwarp?
//
//   - Minimal API, clear naming – one exported operation per alignment mode
//   - Predictable memory – banded matrices, size estimable before allocation
//   - Pure Go – no cgo; TTS and recognizers stay behind interfaces
//   - Deterministic – same inputs, same warp path, same timeline
//
// Under the hood, everything is organized under five subpackages:
//
//	audio/    — RawAudio model, silence detection, resample, downmix, WAV codec
//	mfcc/     — PCM → mel-frequency cepstral coefficient sequences
//	dtw/      — banded DTW over vector sequences + compacted paths
//	timeline/ — labeled interval trees, invariants, rescaling, flattening
//	align/    — multi-pass driver, timeline mapper, indirect alignment
//
// Quick ASCII example:
//
//	reference  ──[w1]──[w2]────[w3]──
//	                │ DTW warp path │
//	source     ──[ w1 ]──[w2]──[ w3 ]──
//
//	every labeled interval slides and stretches onto the source recording.
//
// Dive into each package's doc.go for contracts, complexity and error
// surfaces, and into align/example_test.go for end-to-end usage.
//
//	go get github.com/katalvlaran/speechwarp/align
package speechwarp
