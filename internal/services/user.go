package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inholiday/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenIssuer
}

// NewUserService creates a UserService over the given repository and auth ports.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer) domain.UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *userService) Register(ctx context.Context, input domain.RegisterInput, asAdmin bool) domain.Result[*domain.AuthPayload] {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	// Uniqueness pre-check by the natural key; the database constraint still
	// backs this up against races.
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.Err[*domain.AuthPayload](domain.Existsf("user with email %q already exists", email))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to check email: %w", err))
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to hash password: %w", err))
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
		OtherContact: input.OtherContact,
		IsAdmin:      asAdmin,
	}
	created, err := s.userRepo.Add(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrExists) {
			return domain.Err[*domain.AuthPayload](err)
		}
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to create user: %w", err))
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role())
	if err != nil {
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to sign token: %w", err))
	}
	return domain.Ok(&domain.AuthPayload{Token: token, User: created})
}

func (s *userService) Login(ctx context.Context, email, password string) domain.Result[*domain.AuthPayload] {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Credential mismatch is reported as not-found, never revealing
			// which part of the pair was wrong.
			return domain.Err[*domain.AuthPayload](domain.NotFoundf("user with given credentials cannot be found"))
		}
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to get user: %w", err))
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.Err[*domain.AuthPayload](domain.NotFoundf("user with given credentials cannot be found"))
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role())
	if err != nil {
		return domain.Err[*domain.AuthPayload](fmt.Errorf("failed to sign token: %w", err))
	}
	return domain.Ok(&domain.AuthPayload{Token: token, User: user})
}

func (s *userService) GetByID(ctx context.Context, id int) domain.Result[*domain.User] {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[*domain.User](err)
		}
		return domain.Err[*domain.User](fmt.Errorf("failed to get user: %w", err))
	}
	return domain.Ok(user)
}

func (s *userService) GetByEmail(ctx context.Context, email string) domain.Result[*domain.User] {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[*domain.User](err)
		}
		return domain.Err[*domain.User](fmt.Errorf("failed to get user: %w", err))
	}
	return domain.Ok(user)
}

func (s *userService) List(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) domain.Result[*domain.UserPage] {
	users, total, err := s.userRepo.List(ctx, filter, p)
	if err != nil {
		return domain.Err[*domain.UserPage](fmt.Errorf("failed to list users: %w", err))
	}
	return domain.Ok(&domain.UserPage{Users: users, Total: total})
}

func (s *userService) Update(ctx context.Context, input domain.UserUpdate) domain.Empty {
	old, err := s.userRepo.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get user: %w", err))
	}

	// Partial merge: nil means "leave unchanged". Email and the admin flag
	// are never updated through this path.
	updated := &domain.User{
		ID:           old.ID,
		Name:         old.Name,
		Email:        old.Email,
		PasswordHash: old.PasswordHash,
		PhoneNumber:  old.PhoneNumber,
		OtherContact: old.OtherContact,
		IsAdmin:      old.IsAdmin,
	}
	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return domain.Fail(fmt.Errorf("failed to hash password: %w", err))
		}
		updated.PasswordHash = hash
	}
	if input.PhoneNumber != nil {
		updated.PhoneNumber = input.PhoneNumber
	}
	if input.OtherContact != nil {
		updated.OtherContact = input.OtherContact
	}

	if err := s.userRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to update user: %w", err))
	}
	return domain.Done()
}

func (s *userService) Delete(ctx context.Context, id int) domain.Empty {
	if _, err := s.userRepo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get user: %w", err))
	}
	if _, err := s.userRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to delete user: %w", err))
	}
	return domain.Done()
}
