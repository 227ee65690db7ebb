package jwtcompression

// Bucket membership tables. The buckets are disjoint and their union is the
// set of claims this package understands; anything else is dropped during
// decomposition. alg and typ are read from the token header, every other
// field from the payload.
var (
	staticHeaderFields  = []string{"alg", "typ"}
	staticPayloadFields = []string{"iss", "aud", "name"}
	sessionFields       = []string{"sub", "session_id", "market_id", "currency", "cart_id"}
	dynamicFields       = []string{"exp", "iat", "jti"}
)

// classify partitions the combined claim set of a decoded header and
// payload into the three buckets. Fields present in the input are copied
// verbatim; absent fields are omitted from the output. There are no error
// conditions.
func classify(header, payload map[string]any) (static, session, dynamic map[string]any) {
	static = make(map[string]any, len(staticHeaderFields)+len(staticPayloadFields))
	for _, field := range staticHeaderFields {
		if v, ok := header[field]; ok {
			static[field] = v
		}
	}
	for _, field := range staticPayloadFields {
		if v, ok := payload[field]; ok {
			static[field] = v
		}
	}

	session = pickFields(payload, sessionFields)
	dynamic = pickFields(payload, dynamicFields)
	return static, session, dynamic
}

func pickFields(claims map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if v, ok := claims[field]; ok {
			out[field] = v
		}
	}
	return out
}
