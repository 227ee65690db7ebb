package jwtcompression

// Reserved metadata keys for the compressed token form. Keys are
// case-sensitive ASCII lowercase; the static and session fragments are the
// ones HPACK's dynamic table is expected to index across calls.
const (
	MetadataKeyStatic  = "x-jwt-static"
	MetadataKeySession = "x-jwt-session"
	MetadataKeyDynamic = "x-jwt-dynamic"
	MetadataKeySig     = "x-jwt-sig"

	// MetadataKeyAuthorization carries the uncompressed fallback form.
	MetadataKeyAuthorization = "authorization"
)

// BearerPrefix is the scheme prefix of the fallback authorization entry,
// single space separator included.
const BearerPrefix = "Bearer "

// Pair is a single metadata entry. Transports that carry raw bytes should
// UTF-8 decode values before constructing pairs; in Go that is the string
// conversion.
type Pair struct {
	Key   string
	Value string
}

// Carrier is an ordered metadata collection with possibly repeating keys,
// owned by the surrounding transport. This package only reads from it and
// appends to it; existing entries are never removed or reordered.
type Carrier []Pair

// Append adds an entry to the end of the collection.
func (c *Carrier) Append(key, value string) {
	*c = append(*c, Pair{Key: key, Value: value})
}

// Get returns the value for key, the last occurrence winning when the key
// repeats. The second return reports whether the key was present at all.
func (c Carrier) Get(key string) (string, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Key == key {
			return c[i].Value, true
		}
	}
	return "", false
}
