package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
)

// ComputeChecksum returns the hex SHA-256 of the parameters listed in name
// order as "name=value\n", values in shortest round-trip form.
func ComputeChecksum(params map[string]float64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte{'='})
		h.Write([]byte(strconv.FormatFloat(params[name], 'g', -1, 64)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored string) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
