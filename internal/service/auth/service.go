// Package auth implements credential verification and session issuance.
package auth

import (
	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/util/jwt"
)

// authService implements service.AuthService.
type authService struct {
	repos *repository.Repositories
}

// NewAuthService wires the auth service onto the repository layer.
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// Login verifies credentials and issues a 24-hour session token.
// An unknown email and a wrong password produce the identical error so the
// response never reveals which emails are registered.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	member, err := s.repos.Member.FindByEmail(req.Email)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUnauthenticated, "invalid credentials")
		}
		zap.L().Error("login lookup failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}
	if !member.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthenticated, "invalid credentials")
	}

	token, err := jwt.GenerateToken(member.ID, member.Email, member.Role, member.Name, member.PhotoURL)
	if err != nil {
		zap.L().Error("generating session token failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}

	// Password hash carries json:"-", the serialised member never holds it.
	return &respond.LoginRespond{
		Token:  token,
		Member: *member,
	}, nil
}

// ChangePassword re-verifies the current password before overwriting the
// stored hash with a freshly salted one.
func (s *authService) ChangePassword(principal model.Principal, req request.ChangePasswordRequest) error {
	if len(req.NewPassword) < constants.MIN_PASSWORD_LENGTH {
		return errorx.Newf(errorx.CodeInvalidArgument, "new password must be at least %d characters", constants.MIN_PASSWORD_LENGTH)
	}

	member, err := s.repos.Member.FindByID(principal.ID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeUnauthenticated, "invalid credentials")
		}
		zap.L().Error("change password lookup failed", zap.Error(err))
		return errorx.ErrInternal
	}
	if !member.CheckPassword(req.CurrentPassword) {
		return errorx.New(errorx.CodeUnauthenticated, "current password is incorrect")
	}

	member.RawPassword = req.NewPassword
	if err := s.repos.Member.Save(member); err != nil {
		zap.L().Error("storing new password failed", zap.Error(err))
		return errorx.ErrInternal
	}
	return nil
}
