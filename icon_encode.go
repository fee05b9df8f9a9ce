package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// encodePNG encodes an image as PNG bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeForPath picks the container from the output extension: .ico gets a
// PNG-in-ICO wrapper, everything else is plain PNG.
func encodeForPath(img image.Image, path string) ([]byte, error) {
	pngData, err := encodePNG(img)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		return wrapPNGInICO(pngData, img.Bounds().Dx(), img.Bounds().Dy()), nil
	}
	return pngData, nil
}

// wrapPNGInICO wraps raw PNG bytes in a minimal ICO container.
func wrapPNGInICO(pngData []byte, w, h int) []byte {
	const headerSize = 6
	const entrySize = 16

	// ICO dimensions: 0 means 256 (or larger).
	bw, bh := byte(w), byte(h)
	if w >= 256 {
		bw = 0
	}
	if h >= 256 {
		bh = 0
	}

	buf := make([]byte, headerSize+entrySize+len(pngData))

	binary.LittleEndian.PutUint16(buf[0:], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1) // type: ICO
	binary.LittleEndian.PutUint16(buf[4:], 1) // image count

	off := headerSize
	buf[off+0] = bw
	buf[off+1] = bh
	binary.LittleEndian.PutUint16(buf[off+4:], 1)  // planes
	binary.LittleEndian.PutUint16(buf[off+6:], 32) // bpp
	binary.LittleEndian.PutUint32(buf[off+8:], uint32(len(pngData)))
	binary.LittleEndian.PutUint32(buf[off+12:], headerSize+entrySize)

	copy(buf[headerSize+entrySize:], pngData)
	return buf
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so readers never see a partial icon. The parent directory must exist.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
