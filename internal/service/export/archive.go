package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/WillSanton/WebSite/internal/domain"
)

// ContentType is the media type of every archive.
const ContentType = "application/zip"

// Archive is a finished zip file in the temp directory. The caller owns it
// and must call Remove once the download completes or fails.
type Archive struct {
	Name    string
	Path    string
	Size    int64
	Entries int
}

// Open opens the archive for reading.
func (a *Archive) Open() (*os.File, error) {
	return os.Open(a.Path)
}

// Remove deletes the archive file. Removing a missing file is not an error.
func (a *Archive) Remove() error {
	if err := os.Remove(a.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// entryWriter adds named entries to an open archive.
type entryWriter struct {
	zw    *zip.Writer
	self  string // absolute path of the archive being written
	count int
}

func (w *entryWriter) create(name string) (io.Writer, error) {
	f, err := w.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return nil, err
	}
	w.count++
	return f, nil
}

func (w *entryWriter) add(name string, data []byte) error {
	f, err := w.create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

// build writes a new archive into the temp directory and lets fill add
// entries. Name is the download name <prefix>-<unix-ms>.zip; the file itself
// gets a random suffix so concurrent exports never share a path. On any
// failure the partial file is removed and the error wraps domain.ErrArchive.
func (s *Service) build(prefix string, fill func(w *entryWriter) error) (*Archive, error) {
	stamp := fmt.Sprintf("%s-%d", prefix, s.now().UnixMilli())
	name := stamp + ".zip"

	f, err := os.CreateTemp(s.tempDir, stamp+"-*.zip")
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", domain.ErrArchive, name, err)
	}
	path := f.Name()

	archive := &Archive{Name: name, Path: path}
	fail := func(err error) (*Archive, error) {
		_ = f.Close()
		_ = archive.Remove()
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArchive, name, err)
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	self, err := filepath.Abs(path)
	if err != nil {
		_ = zw.Close()
		return fail(err)
	}

	w := &entryWriter{zw: zw, self: self}
	if err := fill(w); err != nil {
		_ = zw.Close()
		return fail(err)
	}
	if err := zw.Close(); err != nil {
		return fail(err)
	}

	info, err := f.Stat()
	if err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = archive.Remove()
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArchive, name, err)
	}

	archive.Size = info.Size()
	archive.Entries = w.count
	return archive, nil
}
