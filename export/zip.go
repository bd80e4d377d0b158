package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

// Compress writes files into a new archive at zipPath. Entries are stored
// under their base names, so files from different directories share one
// flat namespace.
func Compress(zipPath string, files []string) (err error) {
	out, err := os.Create(zipPath)
	if err != nil {
		return &Error{Op: "create", Path: zipPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &Error{Op: "close", Path: zipPath, Err: cerr}
		}
	}()

	zw := zip.NewWriter(out)
	for _, name := range files {
		if err := addToZip(zw, name); err != nil {
			return &Error{Op: "zip", Path: name, Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &Error{Op: "zip", Path: zipPath, Err: err}
	}
	return nil
}

func addToZip(zw *zip.Writer, name string) error {
	in, err := os.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(name)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
