package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Compressed reports whether path names a zstd level document.
func Compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

func Encode(lvl *Level, compress bool) ([]byte, error) {
	data, err := json.MarshalIndent(lvl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal level: %w", err)
	}
	if !compress {
		return data, nil
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("levels: zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func Decode(data []byte, compressed bool) (*Level, error) {
	if compressed {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("levels: zstd reader: %w", err)
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("levels: decompress: %w", err)
		}
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}

// Save writes lvl to path, compressed when path ends in .zst.
func Save(path string, lvl *Level) error {
	data, err := Encode(lvl, Compressed(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("levels: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("levels: write %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Decode(data, Compressed(path))
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return lvl, nil
}
