// Package imaging defines the pluggable on-disk image writer contract
// (§6 "On-disk artifacts: optional final image saved via an ImageWriter
// plugin (defaults to BMP)").
package imaging

import "io"

// ImageWriter encodes an RGB framebuffer to w.
type ImageWriter interface {
	// Write encodes width x height pixels (row-major, top-down, 3 bytes
	// per pixel) to w.
	Write(w io.Writer, width, height int, pixels []byte) error
}

// ImageReader decodes an image back into an RGB pixel buffer. No reader
// is registered or used in this module; the registry holds writers only.
type ImageReader interface {
	Read(r io.Reader) (width, height int, pixels []byte, err error)
}

var writers = map[string]ImageWriter{}

// RegisterWriter installs w under name (e.g. "bmp"), making it
// selectable by the render command's --output file extension.
func RegisterWriter(name string, w ImageWriter) { writers[name] = w }

// Writer looks up a previously registered ImageWriter by name.
func Writer(name string) (ImageWriter, bool) {
	w, ok := writers[name]
	return w, ok
}

// DefaultWriterName is the plugin selected when --output doesn't imply
// one, or when none is otherwise configured (§6).
const DefaultWriterName = "bmp"
