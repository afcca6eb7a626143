// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package revalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-webhook-secret-0123456789"

func TestSignatureRoundTrip(t *testing.T) {
	body := []byte(`{"_type": "blogPost", "slug": {"current": "my-post"}}`)
	header := SignatureFor(body, 1700000000000, testSecret)

	assert.True(t, IsValidSignature(body, header, testSecret))
}

func TestSignatureRejectsTamperedBody(t *testing.T) {
	body := []byte(`{"_type": "blogPost"}`)
	header := SignatureFor(body, 1700000000000, testSecret)

	tampered := []byte(`{"_type": "project"}`)
	assert.False(t, IsValidSignature(tampered, header, testSecret))
}

func TestSignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"_type": "blogPost"}`)
	header := SignatureFor(body, 1700000000000, testSecret)

	assert.False(t, IsValidSignature(body, header, "a-different-secret-value"))
}

func TestSignatureTimestampIsPartOfMAC(t *testing.T) {
	body := []byte(`{"_type": "blogPost"}`)
	s1 := ComputeSignature(body, 1700000000000, testSecret)
	s2 := ComputeSignature(body, 1700000000001, testSecret)
	assert.NotEqual(t, s1, s2)
}

func TestSignatureMalformedHeaders(t *testing.T) {
	body := []byte(`{}`)
	for _, header := range []string{
		"",
		"garbage",
		"t=123",
		"v1=abc",
		"t=notanumber,v1=abc",
		"t=0,v1=abc",
	} {
		assert.False(t, IsValidSignature(body, header, testSecret), "header %q", header)
	}
}

func TestSignatureHeaderFormat(t *testing.T) {
	header := SignatureFor([]byte("x"), 42, testSecret)
	assert.Regexp(t, `^t=42,v1=[A-Za-z0-9_-]+$`, header, "base64url without padding")
}
