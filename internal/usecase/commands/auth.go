package commands

import (
	"context"
	"log/slog"

	"salon-reserve/internal/domain/user"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/pkg/jwt"
	"salon-reserve/internal/pkg/password"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = queries.ErrUserNotFound
	ErrUserInactive         = queries.ErrUserInactive
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Principal user.Principal
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	principal, err := toPrincipal(userReadModel)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(principal)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), principal.Kind, principal.UserID)
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", principal.UserID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", principal.UserID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    principal.UserID,
		Principal: principal,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	principal, err := claims.Principal()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active; the role is re-read for operators
	switch principal.Kind {
	case user.KindOperator:
		op, err := a.readStore.FindOperatorByID(ctx, principal.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		if !op.IsActive {
			return nil, ErrUserInactive
		}
		role, err := user.NewRole(op.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrTokenValidation)
		}
		principal.Role = role
	case user.KindCustomer:
		cu, err := a.readStore.FindCustomerByID(ctx, principal.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		if !cu.IsActive {
			return nil, ErrUserInactive
		}
	}

	return a.issueTokens(principal)
}

func (a *authCommandsImpl) issueTokens(principal user.Principal) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(principal)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(principal)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func toPrincipal(v *queries.AuthorizedUserView) (user.Principal, error) {
	kind, err := user.NewKind(v.Kind)
	if err != nil {
		return user.Principal{}, err
	}
	p := user.Principal{UserID: v.ID, Kind: kind, SalonID: v.SalonID}
	if kind == user.KindOperator {
		role, err := user.NewRole(v.Role)
		if err != nil {
			return user.Principal{}, err
		}
		p.Role = role
	}
	return p, nil
}
