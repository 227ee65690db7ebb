package main

import (
	"fmt"

	jwtcompression "github.com/tokensplit/go-jwt-compression"
)

// indexedEntrySize is the approximate HPACK cost of a header that is fully
// indexed in the dynamic table from a previous request.
const indexedEntrySize = 2

// printSavings estimates the per-request byte savings once HPACK has
// indexed the static and session fragments. The dynamic fragment and the
// signature change on every token and stay uncompressed.
func printSavings(token string, fragments *jwtcompression.Fragments) {
	fullSize := len(jwtcompression.MetadataKeyAuthorization+": "+jwtcompression.BearerPrefix) + len(token)

	entry := func(key, value string) int { return len(key+": ") + len(value) }
	splitSize := entry(jwtcompression.MetadataKeyStatic, fragments.Static) +
		entry(jwtcompression.MetadataKeySession, fragments.Session) +
		entry(jwtcompression.MetadataKeyDynamic, fragments.Dynamic) +
		entry(jwtcompression.MetadataKeySig, fragments.Signature)

	hpackEstimate := indexedEntrySize + // static, indexed
		indexedEntrySize + // session, indexed for the session's lifetime
		entry(jwtcompression.MetadataKeyDynamic, fragments.Dynamic) +
		entry(jwtcompression.MetadataKeySig, fragments.Signature)

	fmt.Printf("full bearer header:      %d bytes\n", fullSize)
	fmt.Printf("split, first request:    %d bytes\n", splitSize)
	fmt.Printf("split, warm hpack table: %d bytes (estimated)\n", hpackEstimate)
	if fullSize > 0 {
		fmt.Printf("steady-state savings:    %d bytes (%d%%)\n",
			fullSize-hpackEstimate, (fullSize-hpackEstimate)*100/fullSize)
	}
}
