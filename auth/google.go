package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"

	"github.com/forhad-fhj/SkillBridge/config"
)

// Google sign-in rejections
var (
	ErrGoogleNotConfigured = errors.New("google client ID not configured")
	ErrEmailNotVerified    = errors.New("google email not verified")
	ErrMissingEmail        = errors.New("email not found in token")
	ErrHostedDomain        = errors.New("google account is outside the allowed domain")
)

// GoogleVerifier checks Google ID tokens
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error)
}

// GoogleUserInfo is the identity carried by a verified Google ID token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
}

// tokenValidator checks a raw ID token for an audience. idtoken.Validate in
// production.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthService verifies Google sign-in tokens for this client ID and
// maps them to a SkillBridge identity
type GoogleAuthService struct {
	clientID     string
	hostedDomain string
	validate     tokenValidator
}

// NewGoogleAuthService creates a new Google auth service. An empty
// GOOGLE_HOSTED_DOMAIN accepts any verified Google account.
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID:     cfg.GoogleClientID,
		hostedDomain: strings.ToLower(strings.TrimSpace(cfg.GoogleHostedDomain)),
		validate:     idtoken.Validate,
	}
}

// VerifyIDToken validates the token signature and audience, then requires a
// verified email (and the hosted domain, when one is configured).
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}
	return s.userInfo(payload)
}

func (s *GoogleAuthService) userInfo(payload *idtoken.Payload) (*GoogleUserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(stringClaim(payload.Claims, "email")))
	if email == "" {
		return nil, ErrMissingEmail
	}
	if !verifiedClaim(payload.Claims["email_verified"]) {
		return nil, ErrEmailNotVerified
	}
	if s.hostedDomain != "" && !strings.EqualFold(stringClaim(payload.Claims, "hd"), s.hostedDomain) {
		return nil, fmt.Errorf("%w: %s", ErrHostedDomain, email)
	}

	name := strings.TrimSpace(stringClaim(payload.Claims, "name"))
	if name == "" {
		name = strings.TrimSpace(stringClaim(payload.Claims, "given_name") + " " + stringClaim(payload.Claims, "family_name"))
	}
	if name == "" {
		name = email[:strings.Index(email+"@", "@")]
	}

	return &GoogleUserInfo{
		GoogleID: payload.Subject,
		Email:    email,
		Name:     name,
	}, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}

// verifiedClaim accepts email_verified as a bool or as the string "true";
// Google has issued both.
func verifiedClaim(v interface{}) bool {
	switch verified := v.(type) {
	case bool:
		return verified
	case string:
		return strings.EqualFold(verified, "true")
	default:
		return false
	}
}
