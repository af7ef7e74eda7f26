// Package bmp implements the default ImageWriter (§6): a minimal
// uncompressed 24-bit bottom-up BMP, registered under "bmp".
package bmp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lixenwraith/turbocow/imaging"
)

func init() {
	imaging.RegisterWriter("bmp", Writer{})
}

// Writer encodes an RGB pixel buffer as an uncompressed 24-bit BMP.
type Writer struct{}

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// Write encodes width x height pixels (row-major, top-down RGB triples)
// as a BITMAPFILEHEADER + BITMAPINFOHEADER + bottom-up pixel array, each
// row padded to a 4-byte boundary as the BMP format requires.
func (Writer) Write(w io.Writer, width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height*3 {
		return fmt.Errorf("bmp: pixel buffer length %d does not match %dx%d RGB", len(pixels), width, height)
	}

	rowSize := (width*3 + 3) &^ 3
	pixelDataSize := rowSize * height
	fileSize := fileHeaderSize + infoHeaderSize + pixelDataSize

	var fileHeader [fileHeaderSize]byte
	fileHeader[0], fileHeader[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(fileHeader[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(fileHeader[10:14], uint32(fileHeaderSize+infoHeaderSize))
	if _, err := w.Write(fileHeader[:]); err != nil {
		return err
	}

	var infoHeader [infoHeaderSize]byte
	binary.LittleEndian.PutUint32(infoHeader[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(infoHeader[4:8], uint32(width))
	binary.LittleEndian.PutUint32(infoHeader[8:12], uint32(height))
	binary.LittleEndian.PutUint16(infoHeader[12:14], 1)  // planes
	binary.LittleEndian.PutUint16(infoHeader[14:16], 24) // bits per pixel
	binary.LittleEndian.PutUint32(infoHeader[20:24], uint32(pixelDataSize))
	if _, err := w.Write(infoHeader[:]); err != nil {
		return err
	}

	pad := make([]byte, rowSize-width*3)
	row := make([]byte, width*3)
	// BMP pixel rows are stored bottom-up.
	for y := height - 1; y >= 0; y-- {
		srcOffset := y * width * 3
		for x := 0; x < width; x++ {
			r := pixels[srcOffset+x*3]
			g := pixels[srcOffset+x*3+1]
			b := pixels[srcOffset+x*3+2]
			row[x*3], row[x*3+1], row[x*3+2] = b, g, r
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if len(pad) > 0 {
			if _, err := w.Write(pad); err != nil {
				return err
			}
		}
	}

	return nil
}
