/*
Package jwtcompression decomposes a signed JWT into a fixed set of
semantically grouped fragments so the token can be carried across repeated
calls in a session using far fewer bytes on the wire, by letting the
transport's incremental header compression (HPACK for gRPC over HTTP/2)
cache the fragments that do not change between calls.

A JWT is split into four independently transmissible fragments:

  - static:  alg, typ, iss, aud, name (identical for every request)
  - session: sub, session_id, market_id, currency, cart_id (stable per session)
  - dynamic: exp, iat, jti (changes on every token)
  - signature: the original signature segment, carried through verbatim

Claims outside these fixed tables are dropped during decomposition and do
not survive a round trip. This is a deliberate lossy-compression trade-off:
only the fields the receiving services actually consume are transported.

# Quick Start

	compressor, err := jwtcompression.New(
	    jwtcompression.WithCompression(true),
	)
	if err != nil {
	    log.Fatal(err)
	}

	// Sender side: attach the token to an outgoing metadata collection.
	var md jwtcompression.Carrier
	compressor.Attach(&md, token)

	// Receiver side: rebuild the token from incoming metadata.
	token, err := compressor.Reassemble(md)

On any decode or parse failure the compressed path fails closed: no
partially reconstructed token is ever produced. The sender falls back to a
standard "authorization: Bearer <token>" entry, and the receiver honors
that entry when the fragment set is absent.

This package performs no signature verification, issuance, or expiry
enforcement; it only transforms the token's representation. Transport
integrations live in integrations/grpc and framework/.
*/
package jwtcompression
