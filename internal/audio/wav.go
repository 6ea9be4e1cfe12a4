package audio

import (
	"encoding/binary"
	"io"
)

// writeWAV wraps raw little endian PCM samples in a canonical RIFF/WAVE header
func writeWAV(w io.Writer, pcm []byte, sampleRate, bitsPerSample, channels int) error {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	header := []interface{}{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + len(pcm)),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16), // fmt chunk size
		uint16(1),  // PCM
		uint16(channels),
		uint32(sampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(len(pcm)),
	}

	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	_, err := w.Write(pcm)
	return err
}
