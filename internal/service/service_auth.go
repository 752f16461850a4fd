package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dbelyakov/go-market/internal/config"
	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// authService is the concrete implementation of AuthService.
// It verifies stored bcrypt credentials, issues and validates JWT bearer
// tokens, and resolves principals (user id + granted scope set) from the
// permission store.
type authService struct {
	// userRepository resolves usernames to stored accounts.
	userRepository store.UserRepository

	// permissionRepository resolves an account to its granted scopes.
	permissionRepository store.PermissionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Loaded once from configuration; immutable afterwards.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, permissionRepository store.PermissionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		permissionRepository: permissionRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// Login authenticates a username/password pair and issues a bearer token.
//
// An unknown username and a wrong password both map to
// [ErrInvalidCredentials]; login responses never reveal whether the account
// exists. The plaintext password is compared against the stored bcrypt digest
// and never logged.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the pair does not match a stored account.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate resolves an inbound bearer token to a principal.
//
// Algorithm:
//  1. Validate and parse the token (signature, issuer, expiry, subject).
//  2. Resolve the subject username to a stored account.
//  3. Collect the scopes currently granted to that account.
//
// Every failure mode (malformed token, bad signature, expiry, or a subject
// naming a since-deleted account) collapses into [ErrUnauthorized] so the
// response leaks no account-existence information.
//
// The scope set is recomputed from the store on every call, never cached, so
// a revoked grant is reflected on the very next request. The method performs
// exactly one signature check and one store round trip per call.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("token validation failed")
		return models.Principal{}, ErrUnauthorized
	}

	principal, err := a.resolvePrincipal(ctx, token.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("subject", token.Subject).Msg("token subject does not resolve to an account")
			return models.Principal{}, ErrUnauthorized
		}

		log.Err(err).Str("subject", token.Subject).Msg("principal resolution failed")
		return models.Principal{}, fmt.Errorf("principal resolution failed: %w", err)
	}

	return principal, nil
}

// Authorize checks that the principal holds every required scope.
//
// The rule is a conjunction: holding any one of several required scopes is
// insufficient. On success the resolved user id is returned; downstream
// handlers use it to constrain owner-scoped store filters.
func (a *authService) Authorize(principal models.Principal, requiredScopes ...string) (int64, error) {
	for _, scope := range requiredScopes {
		if !principal.HasScope(scope) {
			return 0, ErrForbidden
		}
	}

	return principal.UserID, nil
}

// resolvePrincipal looks up the account for the given username and projects
// its permission grants to a scope set.
func (a *authService) resolvePrincipal(ctx context.Context, username string) (models.Principal, error) {
	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.Principal{}, err
	}

	scopes, err := a.permissionRepository.FindScopesByUserID(ctx, foundUser.UserID)
	if err != nil {
		return models.Principal{}, err
	}

	return models.NewPrincipal(foundUser.UserID, scopes), nil
}
