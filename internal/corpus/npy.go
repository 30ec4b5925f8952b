// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// npyMagic prefixes every NumPy .npy file.
var npyMagic = []byte("\x93NUMPY")

var (
	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']+)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// maxNPYHeaderLen bounds the header dict for v2/v3 files, whose length
// field is 32 bits wide.
const maxNPYHeaderLen = 1 << 20

// errNPYHeader indicates a malformed or unsupported .npy header.
var errNPYHeader = errors.New("invalid npy header")

type npyHeader struct {
	descr string
	rows  int
	cols  int
	// size is the number of bytes before the payload.
	size int64
}

// npyItemSize returns the element width for the supported dtypes.
func npyItemSize(descr string) (int64, bool) {
	switch descr {
	case "<f4", "|f4":
		return 4, true
	case "<f8":
		return 8, true
	default:
		return 0, false
	}
}

// readNPYEmbeddings decodes a 2-D little-endian float32 or float64 array
// in C order, as written by numpy.save. fileSize is the total length of
// the input; the declared shape must fit in it before anything is allocated.
func readNPYEmbeddings(r io.Reader, fileSize int64) ([][]float32, error) {
	br := bufio.NewReader(r)

	hdr, err := readNPYHeader(br)
	if err != nil {
		return nil, err
	}

	itemSize, ok := npyItemSize(hdr.descr)
	if !ok {
		return nil, fmt.Errorf("%w: dtype %q", ErrUnsupportedFormat, hdr.descr)
	}
	if err := checkNPYPayload(hdr, itemSize, fileSize); err != nil {
		return nil, err
	}

	vectors := make([][]float32, hdr.rows)
	switch itemSize {
	case 4:
		flat := make([]float32, hdr.rows*hdr.cols)
		if err := binary.Read(br, binary.LittleEndian, flat); err != nil {
			return nil, fmt.Errorf("read npy data: %w", err)
		}
		for i := range vectors {
			vectors[i] = flat[i*hdr.cols : (i+1)*hdr.cols : (i+1)*hdr.cols]
		}
	default:
		row := make([]float64, hdr.cols)
		for i := range vectors {
			if err := binary.Read(br, binary.LittleEndian, row); err != nil {
				return nil, fmt.Errorf("read npy row %d: %w", i, err)
			}
			vec := make([]float32, hdr.cols)
			for j, x := range row {
				vec[j] = float32(x)
			}
			vectors[i] = vec
		}
	}

	return vectors, nil
}

// checkNPYPayload rejects shapes whose element count overflows or whose
// payload is larger than what remains of the file.
func checkNPYPayload(hdr npyHeader, itemSize, fileSize int64) error {
	rows, cols := int64(hdr.rows), int64(hdr.cols)
	if rows != 0 && cols > math.MaxInt64/itemSize/rows {
		return fmt.Errorf("%w: shape (%d, %d) overflows", errNPYHeader, hdr.rows, hdr.cols)
	}
	need := rows * cols * itemSize
	if have := fileSize - hdr.size; need > have {
		return fmt.Errorf("%w: shape (%d, %d) needs %d bytes, file has %d", errNPYHeader, hdr.rows, hdr.cols, need, max(have, 0))
	}
	return nil
}

func readNPYHeader(r io.Reader) (npyHeader, error) {
	var hdr npyHeader

	prefix := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return hdr, fmt.Errorf("%w: %w", errNPYHeader, err)
	}
	if !bytes.Equal(prefix[:len(npyMagic)], npyMagic) {
		return hdr, fmt.Errorf("%w: bad magic", errNPYHeader)
	}

	var headerLen int
	switch major := prefix[len(npyMagic)]; major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return hdr, fmt.Errorf("%w: %w", errNPYHeader, err)
		}
		headerLen = int(n)
		hdr.size = int64(len(prefix)) + 2 + int64(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return hdr, fmt.Errorf("%w: %w", errNPYHeader, err)
		}
		if n > maxNPYHeaderLen {
			return hdr, fmt.Errorf("%w: header length %d is too large", errNPYHeader, n)
		}
		headerLen = int(n)
		hdr.size = int64(len(prefix)) + 4 + int64(n)
	default:
		return hdr, fmt.Errorf("%w: version %d", errNPYHeader, major)
	}

	raw := make([]byte, headerLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return hdr, fmt.Errorf("%w: %w", errNPYHeader, err)
	}
	text := string(raw)

	m := npyDescrRe.FindStringSubmatch(text)
	if m == nil {
		return hdr, fmt.Errorf("%w: missing descr", errNPYHeader)
	}
	hdr.descr = m[1]

	if m := npyFortranRe.FindStringSubmatch(text); m != nil && m[1] == "True" {
		return hdr, fmt.Errorf("%w: fortran order is not supported", ErrUnsupportedFormat)
	}

	m = npyShapeRe.FindStringSubmatch(text)
	if m == nil {
		return hdr, fmt.Errorf("%w: missing shape", errNPYHeader)
	}
	dims, err := parseShape(m[1])
	if err != nil {
		return hdr, err
	}
	if len(dims) != 2 {
		return hdr, fmt.Errorf("%w: shape has %d dimensions, want 2", ErrDimension, len(dims))
	}
	hdr.rows, hdr.cols = dims[0], dims[1]
	if hdr.cols == 0 {
		return hdr, fmt.Errorf("%w: zero-width vectors", ErrDimension)
	}
	if hdr.rows > math.MaxInt32 || hdr.cols > math.MaxInt32 {
		return hdr, fmt.Errorf("%w: shape (%d, %d) is too large", errNPYHeader, hdr.rows, hdr.cols)
	}

	return hdr, nil
}

func parseShape(s string) ([]int, error) {
	var dims []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: shape %q", errNPYHeader, s)
		}
		dims = append(dims, n)
	}
	return dims, nil
}
