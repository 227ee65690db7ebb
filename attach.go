package jwtcompression

// Attach appends token to an outgoing metadata collection, compressed when
// the Compressor was built with compression enabled. With compression
// disabled, or with an empty token, a single bearer authorization entry is
// appended instead. A token that fails to decompose also degrades to the
// bearer form, so the receiver always sees exactly one of the two shapes.
// Attach only appends; it never removes or mutates pre-existing entries.
func (cp *Compressor) Attach(md *Carrier, token string) {
	if token == "" || !cp.enabled {
		md.Append(MetadataKeyAuthorization, BearerPrefix+token)
		return
	}

	fragments, err := cp.Decompose(token)
	if err != nil {
		cp.logger.Warnf("falling back to bearer authorization: %v", err)
		md.Append(MetadataKeyAuthorization, BearerPrefix+token)
		return
	}

	md.Append(MetadataKeyStatic, fragments.Static)
	md.Append(MetadataKeySession, fragments.Session)
	md.Append(MetadataKeyDynamic, fragments.Dynamic)
	md.Append(MetadataKeySig, fragments.Signature)

	cp.logger.Debugf("attached compressed jwt (total=%db)", fragments.Sizes()["total"])
}
