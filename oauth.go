package bots

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// generateNonce returns a random 32-char hex string for oauth_nonce.
func generateNonce() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}

// authorizationHeader builds an OAuth 1.0a HMAC-SHA1 Authorization header.
// params are the request's query/body parameters; they are signed but not
// included in the header.
func authorizationHeader(creds Credentials, method, baseURL string, params url.Values, nonce string, ts int64) string {
	oauth := map[string]string{
		"oauth_consumer_key":     creds.ConsumerKey,
		"oauth_nonce":            nonce,
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        strconv.FormatInt(ts, 10),
		"oauth_token":            creds.AccessKey,
		"oauth_version":          "1.0",
	}

	all := url.Values{}
	for k, vs := range params {
		all[k] = append([]string(nil), vs...)
	}
	for k, v := range oauth {
		all.Set(k, v)
	}
	oauth["oauth_signature"] = oauthSignature(method, baseURL, all, creds.ConsumerSecret, creds.AccessSecret)

	keys := make([]string, 0, len(oauth))
	for k := range oauth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, percentEncode(k), percentEncode(oauth[k])))
	}
	return "OAuth " + strings.Join(parts, ", ")
}

// oauthSignature computes the base64 HMAC-SHA1 signature of a request.
func oauthSignature(method, baseURL string, params url.Values, consumerSecret, tokenSecret string) string {
	base := strings.ToUpper(method) + "&" + percentEncode(baseURL) + "&" + percentEncode(encodeParams(params))
	key := percentEncode(consumerSecret) + "&" + percentEncode(tokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// encodeParams percent-encodes and sorts parameters by key, then value (RFC 5849 3.4.1.3.2).
func encodeParams(params url.Values) string {
	type pair struct{ k, v string }
	pairs := make([]pair, 0, len(params))
	for k, vs := range params {
		for _, v := range vs {
			pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.k)
		b.WriteByte('=')
		b.WriteString(p.v)
	}
	return b.String()
}

// percentEncode escapes everything but RFC 3986 unreserved characters.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
