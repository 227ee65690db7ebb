package jwtcompression

import (
	"fmt"
	"strings"
)

// Fragments holds the four independently transmissible pieces of a
// decomposed JWT. Static, Session, and Dynamic are base64url encodings of
// compact JSON objects; Signature is the original signature segment,
// never decoded or re-encoded.
type Fragments struct {
	Static    string
	Session   string
	Dynamic   string
	Signature string
}

// Sizes reports the byte size of each fragment plus the total, for logging
// and metrics.
func (f *Fragments) Sizes() map[string]int {
	return map[string]int{
		"static":    len(f.Static),
		"session":   len(f.Session),
		"dynamic":   len(f.Dynamic),
		"signature": len(f.Signature),
		"total":     len(f.Static) + len(f.Session) + len(f.Dynamic) + len(f.Signature),
	}
}

// Decompose splits a JWT into its four fragments. Any structural problem
// with the token, from a wrong segment count to a header or payload that
// fails to decode or parse, yields nil fragments and an error satisfying
// errors.Is(err, ErrMalformedToken). There are no partial results.
func (cp *Compressor) Decompose(token string) (*Fragments, error) {
	span := cp.tracer.StartSpan("jwtcompression.decompose")
	defer span.Finish()

	fragments, err := decomposeToken(token)
	if err != nil {
		span.SetTag("error", err.Error())
		cp.metrics.IncCounter("jwt_decompose_total", map[string]string{"outcome": errorCode(err)})
		cp.logger.Warnf("failed to decompose jwt: %v", err)
		return nil, err
	}

	cp.metrics.IncCounter("jwt_decompose_total", map[string]string{"outcome": "ok"})
	for fragment, size := range fragments.Sizes() {
		cp.metrics.ObserveHistogram("jwt_fragment_bytes", float64(size), map[string]string{"fragment": fragment})
	}
	span.SetTag("jwt.fragments.total_bytes", fragments.Sizes()["total"])

	return fragments, nil
}

func decomposeToken(token string) (*Fragments, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, &malformedTokenError{details: fmt.Errorf("expected 3 segments, got %d", len(parts))}
	}

	header, err := decodeJSONSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("header segment: %w", err)
	}

	payload, err := decodeJSONSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("payload segment: %w", err)
	}

	static, session, dynamic := classify(header, payload)

	staticSeg, err := encodeJSONSegment(static)
	if err != nil {
		return nil, err
	}
	sessionSeg, err := encodeJSONSegment(session)
	if err != nil {
		return nil, err
	}
	dynamicSeg, err := encodeJSONSegment(dynamic)
	if err != nil {
		return nil, err
	}

	return &Fragments{
		Static:    staticSeg,
		Session:   sessionSeg,
		Dynamic:   dynamicSeg,
		Signature: parts[2],
	}, nil
}
