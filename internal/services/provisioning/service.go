// Package provisioning stands up the accounts behind a business: the owner
// login, the creator roster and each creator's zero-balance wallet.
package provisioning

import (
	"context"
	"fmt"
	"log"
	"strings"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/repositories"
	"creditcall/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	OnboardBusiness(ctx context.Context, input OnboardInput) (*OnboardResult, error)
	InviteUser(ctx context.Context, input InviteInput) (*InviteResult, error)
}

type service struct {
	users      repositories.UserRepository
	businesses repositories.BusinessRepository
	creators   repositories.CreatorRepository
	wallets    repositories.WalletRepository
}

func NewService(
	users repositories.UserRepository,
	businesses repositories.BusinessRepository,
	creators repositories.CreatorRepository,
	wallets repositories.WalletRepository,
) Service {
	if users == nil {
		panic("user repository is required")
	}
	if businesses == nil {
		panic("business repository is required")
	}
	if creators == nil {
		panic("creator repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	return &service{users: users, businesses: businesses, creators: creators, wallets: wallets}
}

// OnboardBusiness creates the business, invites (or reuses) the owner
// account and provisions every creator on the roster with an empty wallet.
// The Stripe payout account is connected later by a separate onboarding
// callback, so the business starts with no stripe_account_id and cannot
// receive transfers until that completes.
func (s *service) OnboardBusiness(ctx context.Context, input OnboardInput) (*OnboardResult, error) {
	if input.BusinessName == "" || input.OwnerEmail == "" {
		return nil, &apperr.DomainError{
			Kind:    apperr.KindClient,
			Code:    "INVALID_ONBOARD_REQUEST",
			Message: "business name and owner email are required",
		}
	}

	owner, invited, err := s.getOrInviteUser(ctx, input.OwnerEmail, input.OwnerName, models.RoleBusinessOwner)
	if err != nil {
		return nil, err
	}

	business := &models.Business{
		Name:    input.BusinessName,
		OwnerID: owner.ID,
	}
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	result := &OnboardResult{
		BusinessID:   business.ID,
		OwnerUserID:  owner.ID,
		OwnerInvited: invited,
	}

	for _, spec := range input.Creators {
		creatorID, err := s.provisionCreator(ctx, business.ID, spec)
		if err != nil {
			return nil, err
		}
		result.CreatorIDs = append(result.CreatorIDs, creatorID)
	}

	log.Printf("provisioning: onboarded business %s (%s) with %d creators",
		business.Name, business.ID, len(result.CreatorIDs))
	return result, nil
}

func (s *service) provisionCreator(ctx context.Context, businessID string, spec CreatorSpec) (string, error) {
	if spec.Handle == "" {
		return "", &apperr.DomainError{
			Kind:    apperr.KindClient,
			Code:    "INVALID_CREATOR_SPEC",
			Message: "creator handle is required",
		}
	}

	var userID string
	if spec.Email != "" {
		user, _, err := s.getOrInviteUser(ctx, spec.Email, spec.DisplayName, models.RoleCreator)
		if err != nil {
			return "", err
		}
		userID = user.ID
	}

	creator := &models.Creator{
		BusinessID:  businessID,
		UserID:      userID,
		Handle:      strings.ToLower(spec.Handle),
		DisplayName: spec.DisplayName,
	}
	if err := s.creators.Create(ctx, creator); err != nil {
		return "", apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	if err := s.wallets.Create(ctx, &models.Wallet{CreatorID: creator.ID}); err != nil {
		return "", apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	return creator.ID, nil
}

// InviteUser is the standalone invite surface; it shares the same
// invite-or-reuse routine the onboarding flow uses so the two paths can never
// drift apart.
func (s *service) InviteUser(ctx context.Context, input InviteInput) (*InviteResult, error) {
	if input.Email == "" {
		return nil, &apperr.DomainError{
			Kind:    apperr.KindClient,
			Code:    "INVALID_INVITE_REQUEST",
			Message: "email is required",
		}
	}
	role := input.Role
	if role == "" {
		role = models.RoleCreator
	}
	if role != models.RoleCreator && role != models.RoleBusinessOwner {
		return nil, &apperr.DomainError{
			Kind:    apperr.KindClient,
			Code:    "INVALID_ROLE",
			Message: fmt.Sprintf("role %q cannot be granted by invite", role),
		}
	}

	user, invited, err := s.getOrInviteUser(ctx, input.Email, input.Name, role)
	if err != nil {
		return nil, err
	}
	return &InviteResult{UserID: user.ID, Invited: invited}, nil
}

// getOrInviteUser returns the user for email, creating an invited account
// with a throwaway credential when none exists. An existing creator is
// promoted when a business_owner role is requested; a role is never
// downgraded.
func (s *service) getOrInviteUser(ctx context.Context, email, name, role string) (*models.User, bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if role == models.RoleBusinessOwner && user.Role == models.RoleCreator {
			if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
				return nil, false, apperr.Wrap(apperr.ErrPersistenceFailed, err)
			}
			user.Role = role
		}
		return user, false, nil
	}
	if err != repositories.ErrUserNotFound {
		return nil, false, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(utils.MustGenerateSecureCode()), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	user = &models.User{
		Email:    strings.ToLower(email),
		Password: string(hash),
		Name:     name,
		Role:     role,
		Status:   models.UserStatusInvited,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent invite for the same email.
		if err == repositories.ErrDuplicateRecord {
			existing, lookupErr := s.users.GetByEmail(ctx, email)
			if lookupErr != nil {
				return nil, false, apperr.Wrap(apperr.ErrPersistenceFailed, lookupErr)
			}
			return existing, false, nil
		}
		return nil, false, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	log.Printf("provisioning: invited %s as %s", user.Email, role)
	return user, true, nil
}
