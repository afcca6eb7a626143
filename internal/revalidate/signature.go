// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package revalidate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// SignatureHeader is the header carrying the webhook signature.
const SignatureHeader = "sanity-webhook-signature"

// signaturePayload holds the parsed signature header: a millisecond
// timestamp and the base64url-encoded HMAC.
type signaturePayload struct {
	Timestamp int64
	V1        string
}

// parseSignatureHeader parses "t=<millis>,v1=<mac>".
func parseSignatureHeader(header string) (signaturePayload, error) {
	var sig signaturePayload
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return sig, fmt.Errorf("revalidate: invalid signature timestamp: %w", err)
			}
			sig.Timestamp = ts
		case "v1":
			sig.V1 = value
		}
	}
	if sig.Timestamp == 0 || sig.V1 == "" {
		return sig, fmt.Errorf("revalidate: malformed signature header")
	}
	return sig, nil
}

// ComputeSignature generates the HMAC-SHA256 signature over
// "<timestamp>.<body>", base64url-encoded without padding. Exported for
// tests and for webhook delivery tooling.
func ComputeSignature(body []byte, timestamp int64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SignatureFor returns a complete signature header value for a body, for
// use by tests and local webhook replays.
func SignatureFor(body []byte, timestamp int64, secret string) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, ComputeSignature(body, timestamp, secret))
}

// IsValidSignature verifies a signature header against the request body
// using a constant-time comparison.
func IsValidSignature(body []byte, header, secret string) bool {
	sig, err := parseSignatureHeader(header)
	if err != nil {
		return false
	}
	expected := ComputeSignature(body, sig.Timestamp, secret)
	return hmac.Equal([]byte(sig.V1), []byte(expected))
}
