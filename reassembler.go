package jwtcompression

import (
	"fmt"
	"strings"
)

// Reassemble rebuilds a JWT from the metadata collection of an incoming
// call. The compressed path is attempted first: when all four fragment
// entries are present, the token is reconstructed from them, and a decode
// or parse failure on any one fragment aborts the whole reassembly with an
// error; no partially reconstructed token is ever returned. Only when the
// fragment set is incomplete does the fallback path look for a standard
// "authorization: Bearer <token>" entry. An empty token with a nil error
// means no token of either form was present.
func (cp *Compressor) Reassemble(md Carrier) (string, error) {
	span := cp.tracer.StartSpan("jwtcompression.reassemble")
	defer span.Finish()

	token, compressed, err := reassembleFromCarrier(md)
	if err != nil {
		span.SetTag("error", err.Error())
		cp.metrics.IncCounter("jwt_reassemble_total", map[string]string{"outcome": errorCode(err)})
		cp.logger.Warnf("failed to reassemble jwt: %v", err)
		return "", err
	}

	switch {
	case token == "":
		cp.metrics.IncCounter("jwt_reassemble_total", map[string]string{"outcome": "absent"})
	case compressed:
		cp.metrics.IncCounter("jwt_reassemble_total", map[string]string{"outcome": "ok"})
		cp.logger.Debugf("jwt reassembled from compressed metadata (%d bytes)", len(token))
	default:
		cp.metrics.IncCounter("jwt_reassemble_total", map[string]string{"outcome": "fallback"})
		cp.logger.Debugf("jwt extracted from authorization metadata (%d bytes)", len(token))
	}

	return token, nil
}

func reassembleFromCarrier(md Carrier) (token string, compressed bool, err error) {
	static, okStatic := md.Get(MetadataKeyStatic)
	session, okSession := md.Get(MetadataKeySession)
	dynamic, okDynamic := md.Get(MetadataKeyDynamic)
	signature, okSig := md.Get(MetadataKeySig)

	if okStatic && okSession && okDynamic && okSig {
		token, err := reassembleFragments(&Fragments{
			Static:    static,
			Session:   session,
			Dynamic:   dynamic,
			Signature: signature,
		})
		if err != nil {
			return "", false, err
		}
		return token, true, nil
	}

	auth, ok := md.Get(MetadataKeyAuthorization)
	if !ok {
		return "", false, nil
	}
	bearer, found := strings.CutPrefix(auth, BearerPrefix)
	if !found {
		return "", false, nil
	}
	return bearer, false, nil
}

// reassembleFragments is the inverse of decomposeToken. The header is
// rebuilt from the static fragment alone; the payload is the union of all
// three buckets with alg and typ removed. Explicit JSON nulls are treated
// as absent fields, so senders that encode missing claims as null round
// trip the same as senders that omit them.
func reassembleFragments(f *Fragments) (string, error) {
	static, err := decodeJSONSegment(f.Static)
	if err != nil {
		return "", fmt.Errorf("static fragment: %w", err)
	}
	session, err := decodeJSONSegment(f.Session)
	if err != nil {
		return "", fmt.Errorf("session fragment: %w", err)
	}
	dynamic, err := decodeJSONSegment(f.Dynamic)
	if err != nil {
		return "", fmt.Errorf("dynamic fragment: %w", err)
	}

	header := make(map[string]any, len(staticHeaderFields))
	for _, field := range staticHeaderFields {
		if v, ok := static[field]; ok && v != nil {
			header[field] = v
		}
	}

	// Buckets are disjoint by construction, so first write wins: a
	// colliding key in a later bucket must not silently replace an
	// earlier one.
	payload := make(map[string]any)
	mergeClaims(payload, static)
	mergeClaims(payload, session)
	mergeClaims(payload, dynamic)
	delete(payload, "alg")
	delete(payload, "typ")

	headerSeg, err := encodeJSONSegment(header)
	if err != nil {
		return "", err
	}
	payloadSeg, err := encodeJSONSegment(payload)
	if err != nil {
		return "", err
	}

	return headerSeg + "." + payloadSeg + "." + f.Signature, nil
}

func mergeClaims(dst, src map[string]any) {
	for k, v := range src {
		if v == nil {
			continue
		}
		if _, exists := dst[k]; exists {
			continue
		}
		dst[k] = v
	}
}
