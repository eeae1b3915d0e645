package discovery

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"lukechampine.com/blake3"
)

// Digest returns the hex BLAKE3-256 digest and size of the file at path
func Digest(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New(32, nil)
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
