package bots

import (
	"hash/fnv"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Credentials is the OAuth 1.0a credential set for one account.
// Consumer values belong to the app, access values to the user.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessKey      string
	AccessSecret   string
}

// missing returns the config key names of absent credential values.
func (c Credentials) missing() []string {
	var out []string
	if c.ConsumerKey == "" {
		out = append(out, keyConsumerKey)
	}
	if c.ConsumerSecret == "" {
		out = append(out, keyConsumerSecret)
	}
	if c.AccessKey == "" {
		out = append(out, keyAccessKey)
	}
	if c.AccessSecret == "" {
		out = append(out, keyAccessSecret)
	}
	return out
}

// Complete reports whether all four values are present.
func (c Credentials) Complete() bool {
	return len(c.missing()) == 0
}

// String masks the secrets so credentials can be logged safely.
func (c Credentials) String() string {
	return "consumer_key=" + maskSecret(c.ConsumerKey) + " key=" + maskSecret(c.AccessKey)
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// browserProfileFor picks a stable builtin browser profile for a screen name,
// so the same account always presents the same fingerprint.
func browserProfileFor(screenName string) stealth.BrowserProfile {
	h := fnv.New32a()
	_, _ = h.Write([]byte(screenName))
	return stealth.BuiltinProfiles[int(h.Sum32()%uint32(len(stealth.BuiltinProfiles)))]
}
