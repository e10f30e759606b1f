// Package artifact computes deterministic output paths for compiled
// Culebra build products, using a sha256-truncate-to-32-hex
// content-addressing scheme keyed on the source text and target kind.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NameFor returns a deterministic build-product name for sourceText
// compiled to kind ("ll" for textual LLVM IR, "exe" for a linked
// binary). Identical source and kind always hash to the same name, so
// repeated builds of unchanged source reuse the same output file
// instead of colliding or requiring the caller to invent one.
func NameFor(sourceText, kind string) string {
	h := sha256.Sum256([]byte("kind=" + kind + "\n" + sourceText))
	hash := hex.EncodeToString(h[:])[:32]

	return fmt.Sprintf("%s.%s", hash, kind)
}

// Hash returns just the 32-hex-character content hash, without the
// kind suffix - used when the caller wants to key a cache entry rather
// than name a file on disk.
func Hash(sourceText, kind string) string {
	h := sha256.Sum256([]byte("kind=" + kind + "\n" + sourceText))

	return hex.EncodeToString(h[:])[:32]
}
