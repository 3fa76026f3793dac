package codegen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/schema"
)

// hashDefinitions computes the drift-detection hash: SHA-256 over the
// canonical JSON of the sorted definition list. buildDefinitions already
// normalizes ordering, so two responses describing the same schema hash
// identically regardless of how the API ordered them.
func hashDefinitions(defs []schema.Definition) (string, error) {
	canonical, err := json.Marshal(defs)
	if err != nil {
		return "", errors.New(err).
			Category(errors.CategoryCodegen).
			Component("codegen").
			Context("operation", "hash_definitions").
			Build()
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// readHashMarker returns the stored hash, or "" when no marker exists yet.
func readHashMarker(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.New(err).
			Category(errors.CategoryFileIO).
			Component("codegen").
			Context("operation", "read_hash_marker").
			Context("path", path).
			Build()
	}
	return strings.TrimSpace(string(data)), nil
}

func writeHashMarker(path, hash string) error {
	if err := os.WriteFile(path, []byte(hash+"\n"), 0o644); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("codegen").
			Context("operation", "write_hash_marker").
			Context("path", path).
			Build()
	}
	return nil
}
