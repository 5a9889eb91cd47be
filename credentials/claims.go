// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingExpiry  = errors.New("token has no exp claim")
)

// State is the lifecycle state of a stored credential.
type State int

const (
	StateAbsent State = iota
	StateValid
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Credential is a raw bearer token together with the expiry it claims.
type Credential struct {
	Raw       string
	ExpiresAt time.Time
}

// State reports whether the credential is still valid at now. The comparison
// is made at millisecond precision, so a token expiring exactly at now is
// still valid.
func (c Credential) State(now time.Time) State {
	if c.Raw == "" {
		return StateAbsent
	}
	if c.ExpiresAt.IsZero() || c.ExpiresAt.UnixMilli() < now.UnixMilli() {
		return StateExpired
	}
	return StateValid
}

// maxExpSeconds is the largest exp whose millisecond value fits in an int64.
// Anything later is clamped to farFuture.
const maxExpSeconds = math.MaxInt64 / 1000

var farFuture = time.UnixMilli(math.MaxInt64)

// segmentParser only decodes segments. Padding is tolerated because some
// issuers emit padded base64url.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// standard alphabet characters are mapped onto the URL-safe alphabet before
// decoding, so both encodings of the payload are accepted.
var toURLAlphabet = strings.NewReplacer("+", "-", "/", "_")

// ParseCredential reads the exp claim from the payload segment of raw. Only
// the payload is decoded; header and signature are not inspected.
func ParseCredential(raw string) (Credential, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Credential{}, fmt.Errorf("%w: expected 3 segments, found %d", ErrMalformedToken, len(parts))
	}

	payload, err := segmentParser.DecodeSegment(toURLAlphabet.Replace(parts[1]))
	if err != nil {
		return Credential{}, fmt.Errorf("%w: failed to decode payload: %w", ErrMalformedToken, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Credential{}, fmt.Errorf("%w: failed to unmarshal payload: %w", ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if exp == nil {
		return Credential{}, ErrMissingExpiry
	}
	if seconds, ok := claims["exp"].(float64); ok && seconds >= maxExpSeconds {
		return Credential{Raw: raw, ExpiresAt: farFuture}, nil
	}
	return Credential{Raw: raw, ExpiresAt: exp.Time}, nil
}
