package textrecord

import (
	"fmt"
	"io"
	"os"
)

// Encode marshals records and writes the resulting lines to w. Nothing is written if marshaling fails.
func (c *Codec) Encode(w io.Writer, records any) error {
	lines, err := c.Marshal(records)
	if err != nil {
		return err
	}
	tw := NewWriter(w)
	tw.UseCRLF = c.UseCRLF
	return tw.WriteAll(lines)
}

// Decode reads every line from r and unmarshals them into dst.
func (c *Codec) Decode(r io.Reader, dst any) error {
	lines, err := NewReader(r).ReadAll()
	if err != nil {
		return err
	}
	return c.Unmarshal(lines, dst)
}

// SaveFile writes records to path, creating or truncating the file.
func SaveFile[T any](path string, records []T) error {
	return defaultCodec.SaveFile(path, records)
}

// LoadFile reads the records stored at path.
func LoadFile[T any](path string) ([]T, error) {
	var out []T
	if err := defaultCodec.LoadFile(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveFile writes records to path, creating or truncating the file.
// The file is not touched when records cannot be marshaled.
func (c *Codec) SaveFile(path string, records any) (err error) {
	lines, err := c.Marshal(records)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := NewWriter(f)
	w.UseCRLF = c.UseCRLF
	if err := w.WriteAll(lines); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads the records stored at path into dst.
func (c *Codec) LoadFile(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := c.Unmarshal(lines, dst); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
