package jwtcompression

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressedCarrier(t *testing.T, cp *Compressor, token string) Carrier {
	t.Helper()

	fragments, err := cp.Decompose(token)
	require.NoError(t, err)

	return Carrier{
		{Key: MetadataKeyStatic, Value: fragments.Static},
		{Key: MetadataKeySession, Value: fragments.Session},
		{Key: MetadataKeyDynamic, Value: fragments.Dynamic},
		{Key: MetadataKeySig, Value: fragments.Signature},
	}
}

func TestReassemble_CompressedPath(t *testing.T) {
	cp := newTestCompressor(t)
	original := mintToken(t, sessionClaims(t))
	md := compressedCarrier(t, cp, original)

	rebuilt, err := cp.Reassemble(md)
	require.NoError(t, err)
	require.NotEmpty(t, rebuilt)

	wantHeader, wantPayload, wantSig := splitToken(t, original)
	gotHeader, gotPayload, gotSig := splitToken(t, rebuilt)

	if diff := cmp.Diff(wantHeader, gotHeader); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPayload, gotPayload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, wantSig, gotSig)
}

func TestReassemble_CompressedPathPrecedence(t *testing.T) {
	cp := newTestCompressor(t)
	original := mintToken(t, sessionClaims(t))

	md := compressedCarrier(t, cp, original)
	md.Append(MetadataKeyAuthorization, BearerPrefix+"completely-different-token")

	rebuilt, err := cp.Reassemble(md)
	require.NoError(t, err)
	assert.NotEqual(t, "completely-different-token", rebuilt)

	_, _, sig := splitToken(t, rebuilt)
	assert.Equal(t, tokenParts(t, original)[2], sig)
}

func TestReassemble_PartialFragmentSetFallsBack(t *testing.T) {
	cp := newTestCompressor(t)
	original := mintToken(t, sessionClaims(t))
	fragments, err := cp.Decompose(original)
	require.NoError(t, err)

	// Only static and sig present: no partial JSON merge, straight to the
	// bearer fallback.
	md := Carrier{
		{Key: MetadataKeyStatic, Value: fragments.Static},
		{Key: MetadataKeySig, Value: fragments.Signature},
		{Key: MetadataKeyAuthorization, Value: BearerPrefix + "fallback-token"},
	}

	token, err := cp.Reassemble(md)
	require.NoError(t, err)
	assert.Equal(t, "fallback-token", token)
}

func TestReassemble_CorruptFragmentFailsClosed(t *testing.T) {
	cp := newTestCompressor(t)
	original := mintToken(t, sessionClaims(t))

	for _, key := range []string{MetadataKeyStatic, MetadataKeySession, MetadataKeyDynamic} {
		t.Run(key, func(t *testing.T) {
			md := compressedCarrier(t, cp, original)
			for i := range md {
				if md[i].Key == key {
					md[i].Value = "!!!!"
				}
			}
			// A bearer entry is present, but the compressed and fallback
			// paths are mutually exclusive per call: a complete-but-corrupt
			// fragment set yields no token at all.
			md.Append(MetadataKeyAuthorization, BearerPrefix+"fallback-token")

			token, err := cp.Reassemble(md)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestReassemble_BearerFallback(t *testing.T) {
	cp := newTestCompressor(t)

	testCases := []struct {
		name      string
		md        Carrier
		wantToken string
	}{
		{
			name:      "bearer entry",
			md:        Carrier{{Key: MetadataKeyAuthorization, Value: "Bearer abc.def.ghi"}},
			wantToken: "abc.def.ghi",
		},
		{
			name:      "no prefix",
			md:        Carrier{{Key: MetadataKeyAuthorization, Value: "abc.def.ghi"}},
			wantToken: "",
		},
		{
			name:      "wrong scheme",
			md:        Carrier{{Key: MetadataKeyAuthorization, Value: "Basic dXNlcg=="}},
			wantToken: "",
		},
		{
			name:      "empty carrier",
			md:        Carrier{},
			wantToken: "",
		},
		{
			name:      "unrelated entries only",
			md:        Carrier{{Key: "content-type", Value: "application/grpc"}},
			wantToken: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			token, err := cp.Reassemble(testCase.md)
			require.NoError(t, err)
			assert.Equal(t, testCase.wantToken, token)
		})
	}
}

func TestReassemble_NullFieldsTreatedAsAbsent(t *testing.T) {
	cp := newTestCompressor(t)

	// Some senders encode missing claims as explicit nulls. Those must
	// not reappear as "null" claims in the rebuilt payload.
	static, err := encodeJSONSegment(map[string]any{
		"alg": "HS256", "typ": "JWT", "iss": nil, "aud": nil, "name": nil,
	})
	require.NoError(t, err)
	session, err := encodeJSONSegment(map[string]any{
		"sub": "user-1", "session_id": nil, "market_id": nil, "currency": nil, "cart_id": nil,
	})
	require.NoError(t, err)
	dynamic, err := encodeJSONSegment(map[string]any{
		"exp": float64(1700003600), "iat": nil, "jti": nil,
	})
	require.NoError(t, err)

	md := Carrier{
		{Key: MetadataKeyStatic, Value: static},
		{Key: MetadataKeySession, Value: session},
		{Key: MetadataKeyDynamic, Value: dynamic},
		{Key: MetadataKeySig, Value: "sig"},
	}

	token, err := cp.Reassemble(md)
	require.NoError(t, err)

	header, payload, _ := splitToken(t, token)
	assert.Equal(t, map[string]any{"alg": "HS256", "typ": "JWT"}, header)

	want := map[string]any{"sub": "user-1", "exp": float64(1700003600)}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestReassemble_CrossBucketCollisionNotOverwritten(t *testing.T) {
	cp := newTestCompressor(t)

	// The bucket tables are disjoint, so a cross-bucket collision should
	// never happen; if a hand-built fragment set produces one anyway, the
	// earlier bucket's value must not be silently replaced.
	static, err := encodeJSONSegment(map[string]any{"alg": "HS256", "typ": "JWT", "sub": "from-static"})
	require.NoError(t, err)
	session, err := encodeJSONSegment(map[string]any{"sub": "from-session"})
	require.NoError(t, err)
	dynamic, err := encodeJSONSegment(map[string]any{})
	require.NoError(t, err)

	md := Carrier{
		{Key: MetadataKeyStatic, Value: static},
		{Key: MetadataKeySession, Value: session},
		{Key: MetadataKeyDynamic, Value: dynamic},
		{Key: MetadataKeySig, Value: "sig"},
	}

	token, err := cp.Reassemble(md)
	require.NoError(t, err)

	_, payload, _ := splitToken(t, token)
	assert.Equal(t, "from-static", payload["sub"])
}

func TestReassemble_LastOccurrenceWins(t *testing.T) {
	cp := newTestCompressor(t)
	original := mintToken(t, sessionClaims(t))
	md := compressedCarrier(t, cp, original)

	// A stale duplicate earlier in the collection is shadowed by the
	// later entry.
	stale := Carrier{{Key: MetadataKeyStatic, Value: "!!!!"}}
	md = append(stale, md...)

	rebuilt, err := cp.Reassemble(md)
	require.NoError(t, err)
	assert.NotEmpty(t, rebuilt)
}
