package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"
)

func signBody(secret string, ts time.Time, body []byte) (string, string) {
	timestamp := fmt.Sprintf("%d", ts.Unix())

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)

	return timestamp, hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAcceptsValidRequest(t *testing.T) {
	is := is.New(t)

	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	body := []byte(`{"title": "disk full"}`)
	timestamp, signature := signBody("s3cret", now, body)

	is.NoErr(verifySignature("s3cret", timestamp, signature, body, now))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	is := is.New(t)

	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	body := []byte(`{"title": "disk full"}`)
	timestamp, signature := signBody("wrong", now, body)

	is.Equal(verifySignature("s3cret", timestamp, signature, body, now), ErrBadSignature)
}

func TestVerifySignatureRejectsTamperedBody(t *testing.T) {
	is := is.New(t)

	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	timestamp, signature := signBody("s3cret", now, []byte(`{"title": "disk full"}`))

	err := verifySignature("s3cret", timestamp, signature, []byte(`{"title": "all good"}`), now)
	is.Equal(err, ErrBadSignature)
}

func TestVerifySignatureRejectsReplayedTimestamp(t *testing.T) {
	is := is.New(t)

	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	body := []byte(`{"title": "disk full"}`)
	timestamp, signature := signBody("s3cret", now.Add(-6*time.Minute), body)

	is.Equal(verifySignature("s3cret", timestamp, signature, body, now), ErrStaleTimestamp)
}

func TestVerifySignatureRejectsMissingHeaders(t *testing.T) {
	is := is.New(t)

	err := verifySignature("s3cret", "", "", []byte(`{}`), time.Now())
	is.Equal(err, ErrMissingSignature)
}
