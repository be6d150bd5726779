// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// # Token Claims

// UserIDFromToken extracts the numeric user ID embedded in a bearer token.
//
// # Best Effort
//
// The gateway never verifies the token — verification is the backend's job —
// it only peeks at the payload to recover the user ID for display and log
// correlation. Absence is a valid, expected case: the function returns 0
// for a missing, malformed, or claim-less token and never fails.
//
// The backend emits the ID as a `userId` claim; older tokens carry it only
// in `sub`. Both spellings are accepted, numbers and numeric strings alike.
func UserIDFromToken(token string) int64 {
	if token == "" {
		return 0
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0
	}

	if id := numericClaim(claims["userId"]); id != 0 {
		return id
	}
	return numericClaim(claims["sub"])
}

// numericClaim coerces a JSON claim value into an int64, returning 0 when
// the value is absent or not numeric.
func numericClaim(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return id
	}
	return 0
}
