package alerts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint produces a stable content hash for an alert. Two semantically
// identical alerts must hash to the same value regardless of the insertion
// order of metadata keys; encoding/json marshals map keys in sorted order,
// which gives us that canonical form for arbitrarily nested objects.
func Fingerprint(source, title string, metadata map[string]any) string {
	payload := map[string]any{
		"source": source,
		"title":  title,
	}

	for k, v := range metadata {
		if k == "source" || k == "title" {
			continue
		}
		payload[k] = v
	}

	b, _ := json.Marshal(payload)
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:])
}
