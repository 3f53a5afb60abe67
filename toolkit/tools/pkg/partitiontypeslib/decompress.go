// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
)

// prepareDiskImage returns a path to an uncompressed copy of the image.
// Uncompressed images are used in place; cleanup is always safe to call.
func prepareDiskImage(imagePath string, tempDir string) (string, func(), error) {
	noCleanup := func() {}

	var openDecompressor func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".zst":
		openDecompressor = func(r io.Reader) (io.ReadCloser, error) {
			decoder, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return decoder.IOReadCloser(), nil
		}

	case ".gz":
		openDecompressor = func(r io.Reader) (io.ReadCloser, error) {
			return pgzip.NewReader(r)
		}

	default:
		return imagePath, noCleanup, nil
	}

	logger.Log.Debugf("Decompressing disk image (%s)", imagePath)

	rawFile, err := os.CreateTemp(tempDir, "partitiontypes-*.raw")
	if err != nil {
		return "", noCleanup, fmt.Errorf("%w:\nfailed to create temporary file:\n%w", ErrDiskImageDecompress, err)
	}

	rawPath := rawFile.Name()
	cleanup := func() {
		err := os.Remove(rawPath)
		if err != nil && !os.IsNotExist(err) {
			logger.Log.Warnf("Failed to delete temporary file (%s):\n%s", rawPath, err)
		}
	}

	err = decompressFile(imagePath, rawFile, openDecompressor)
	closeErr := rawFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", noCleanup, fmt.Errorf("%w (%s):\n%w", ErrDiskImageDecompress, imagePath, err)
	}

	return rawPath, cleanup, nil
}

func decompressFile(imagePath string, output io.Writer, openDecompressor func(io.Reader) (io.ReadCloser, error),
) error {
	input, err := os.Open(imagePath)
	if err != nil {
		return err
	}
	defer input.Close()

	reader, err := openDecompressor(input)
	if err != nil {
		return err
	}
	defer reader.Close()

	_, err = io.Copy(output, reader)
	return err
}
