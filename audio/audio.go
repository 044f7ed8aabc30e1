// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// ContextDecoder is a Decoder whose codec takes a context, for example one
// running in a WebAssembly runtime. The Source it returns keeps using ctx
// until it is closed.
type ContextDecoder interface {
	Decoder
	DecodeContext(ctx context.Context, r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders, and
// file extensions and MIME types to format keys.
//
// A Registry is the decoding context of a session. After Close every lookup
// fails with ErrResource.
type Registry struct {
	codecs  map[string]Decoder
	aliases map[string]string
	closed  bool

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:  make(map[string]Decoder),
		aliases: make(map[string]string),
		mtx:     &sync.Mutex{},
	}
}

// Register adds d under format. Each alias is an extension (".wav") or a
// MIME type ("audio/wav") that should resolve to format.
func (r *Registry) Register(format string, d Decoder, aliases ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = format
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.closed {
		return nil, false
	}

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Lookup resolves the decoder for an input. Content sniffing of head wins,
// then the file extension of name, then the MIME type.
func (r *Registry) Lookup(name, mime string, head []byte) (string, Decoder, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.closed {
		return "", nil, ErrResource
	}

	candidates := []string{Sniff(head)}
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		candidates = append(candidates, r.aliases[ext])
	}
	if mime != "" {
		m, _, _ := strings.Cut(strings.ToLower(mime), ";")
		candidates = append(candidates, r.aliases[strings.TrimSpace(m)])
	}

	for _, format := range candidates {
		if format == "" {
			continue
		}
		if d, ok := r.codecs[format]; ok {
			return format, d, nil
		}
	}

	return "", nil, ErrUnknownFormat
}

// Close releases the registry. It is safe to call more than once.
func (r *Registry) Close() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.closed = true
	clear(r.codecs)
	clear(r.aliases)

	return nil
}
