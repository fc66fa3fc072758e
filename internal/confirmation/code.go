// Package confirmation derives signup confirmation codes.
//
// A code is the MD5 hex digest of the username and nothing else: no secret,
// no expiry, no randomness. Issuing a code means computing and mailing it,
// validating one means computing it again. Anyone who knows a username can
// therefore derive its code; this is a known weakness kept for compatibility
// with already mailed codes and must not be reused for other secrets.
package confirmation

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// Code returns the confirmation code for username.
func Code(username string) string {
	sum := md5.Sum([]byte(username))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether code is the confirmation code of username.
func Verify(username, code string) bool {
	return subtle.ConstantTimeCompare([]byte(Code(username)), []byte(code)) == 1
}
