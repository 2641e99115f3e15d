package security

import (
	"errors"

	"storefront/internal/core/domain/model/analytics"

	"github.com/golang-jwt/jwt/v5"
)

// trackingClaims keep the cookie's own expiry in "exp" so a stale cookie
// still decodes; the tracker decides what an expired cookie means.
type trackingClaims struct {
	Identity   string  `json:"id"`
	SessionKey string  `json:"sk"`
	Expires    float64 `json:"exp"`
}

func (c trackingClaims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c trackingClaims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c trackingClaims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c trackingClaims) GetIssuer() (string, error)                   { return "", nil }
func (c trackingClaims) GetSubject() (string, error)                  { return "", nil }
func (c trackingClaims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// TrackingCookieCodec signs tracking cookies so browsers cannot claim
// another visitor's identity.
type TrackingCookieCodec struct {
	secret []byte
}

func NewTrackingCookieCodec(secret string) (*TrackingCookieCodec, error) {
	if len(secret) < 32 {
		return nil, errors.New("tracking cookie secret must be at least 32 bytes")
	}
	return &TrackingCookieCodec{secret: []byte(secret)}, nil
}

func (c *TrackingCookieCodec) Encode(cookie analytics.TrackingCookie) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, trackingClaims(cookie)).SignedString(c.secret)
}

// Decode returns false for missing, tampered or malformed cookies.
func (c *TrackingCookieCodec) Decode(value string) (analytics.TrackingCookie, bool) {
	if value == "" {
		return analytics.TrackingCookie{}, false
	}
	var claims trackingClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return analytics.TrackingCookie{}, false
	}
	return analytics.TrackingCookie(claims), true
}
