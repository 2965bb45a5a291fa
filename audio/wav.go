package audio

import (
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DecodeWAV reads a RIFF/WAVE payload and returns its PCM as RawAudio,
// de-interleaving channels and scaling integer samples into [−1, 1]
// according to the container's bit depth.
func DecodeWAV(r io.ReadSeeker) (*RawAudio, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 || len(buf.Data) == 0 {
		return nil, ErrEmptyAudio
	}

	numChannels := buf.Format.NumChannels
	frameCount := len(buf.Data) / numChannels
	scale := float32(int(1) << (d.BitDepth - 1))

	channels := make([][]float32, numChannels)
	for c := range channels {
		channels[c] = make([]float32, frameCount)
	}
	for i := 0; i < frameCount; i++ {
		for c := 0; c < numChannels; c++ {
			channels[c][i] = float32(buf.Data[i*numChannels+c]) / scale
		}
	}

	return &RawAudio{Channels: channels, SampleRate: buf.Format.SampleRate}, nil
}

// EncodeWAV writes a as 16-bit PCM RIFF/WAVE. Samples are clipped to
// [−1, 1] before quantization.
func EncodeWAV(w io.WriteSeeker, a *RawAudio) error {
	if a == nil || len(a.Channels) == 0 || a.SampleCount() == 0 {
		return ErrEmptyAudio
	}

	const bitDepth = 16
	numChannels := len(a.Channels)
	frameCount := a.SampleCount()

	data := make([]int, frameCount*numChannels)
	for i := 0; i < frameCount; i++ {
		for c := 0; c < numChannels; c++ {
			s := a.Channels[c][i]
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			data[i*numChannels+c] = int(s * 32767)
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, bitDepth, numChannels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: numChannels, SampleRate: a.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audio: encoding WAV: %w", err)
	}

	return enc.Close()
}
