package service

import (
	"context"
	"fmt"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// clearUsersBatchLimit bounds the listing used to cascade-delete everything
// owned by existing accounts before the users table is cleared.
const clearUsersBatchLimit = 1 << 31

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository       store.UserRepository
	permissionRepository store.PermissionRepository
	cartRepository       store.CartRepository
	logger               *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
// The cart and permission repositories are needed for the deletion cascade.
func NewUserService(userRepository store.UserRepository, permissionRepository store.PermissionRepository, cartRepository store.CartRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:       userRepository,
		permissionRepository: permissionRepository,
		cartRepository:       cartRepository,
		logger:               logger,
	}
}

// Register creates a new account and seeds its permission grants: every
// account receives the base scope set, and the admin flag additionally grants
// the administrative set.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//
// Grant seeding is not transactional with the account insert; a failure
// between the two leaves an account without grants, which simply cannot
// authorize anything until deleted.
func (s *userService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	scopes := models.BaseScopes
	if req.Admin {
		scopes = append(append([]string{}, models.BaseScopes...), models.AdminScopes...)
	}

	if err := s.permissionRepository.CreatePermissions(ctx, created.UserID, scopes...); err != nil {
		log.Err(err).Int64("id", created.UserID).Msg("permission seeding ended with error")
		return models.User{}, fmt.Errorf("permission seeding ended with error: %w", err)
	}

	log.Debug().Int64("id", created.UserID).Strs("scopes", scopes).Msg("user registered")

	return created, nil
}

// GetUser retrieves one account by id.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns one page of accounts together with the echoed pagination
// parameters and the total result count.
func (s *userService) ListUsers(ctx context.Context, skip, limit uint64) (models.UserList, error) {
	users, total, err := s.userRepository.ListUsers(ctx, skip, limit)
	if err != nil {
		return models.UserList{}, fmt.Errorf("user listing failed: %w", err)
	}

	return models.UserList{
		Skip:         skip,
		Limit:        limit,
		TotalResults: total,
		Users:        users,
	}, nil
}

// UpdateUser applies a profile mutation to the given account. A new password
// is re-hashed before it reaches the store; an empty update returns the
// current record unchanged.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == nil && req.Password == nil {
		return s.GetUser(ctx, userID)
	}

	if (req.Username != nil && *req.Username == "") || (req.Password != nil && *req.Password == "") {
		log.Error().Int64("id", userID).Msg("invalid profile update data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	update := store.UserUpdate{Username: req.Username}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes an account together with everything it owns: carts
// first, then permission grants, then the account record itself.
//
// Grants are cascaded too: an account id must not retain scope rows after
// the account is gone, or a future account reusing the id would inherit
// them.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.cartRepository.DeleteCartsByUserID(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("cart cascade ended with error")
		return fmt.Errorf("cart cascade ended with error: %w", err)
	}

	if err := s.permissionRepository.DeletePermissionsByUserID(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("permission cascade ended with error")
		return fmt.Errorf("permission cascade ended with error: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// DeleteAllUsers clears the whole users collection, cascading carts, cart
// items and grants along the way. Administrative maintenance operation.
func (s *userService) DeleteAllUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	users, _, err := s.userRepository.ListUsers(ctx, 0, clearUsersBatchLimit)
	if err != nil {
		return fmt.Errorf("user listing failed: %w", err)
	}

	for _, user := range users {
		if err := s.cartRepository.DeleteCartsByUserID(ctx, user.UserID); err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("cart cascade ended with error")
			return fmt.Errorf("cart cascade ended with error: %w", err)
		}
		if err := s.permissionRepository.DeletePermissionsByUserID(ctx, user.UserID); err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("permission cascade ended with error")
			return fmt.Errorf("permission cascade ended with error: %w", err)
		}
	}

	if err := s.userRepository.DeleteAllUsers(ctx); err != nil {
		log.Err(err).Msg("user clearing ended with error")
		return fmt.Errorf("user clearing ended with error: %w", err)
	}

	return nil
}
