package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/auth"
	"github.com/khoahotran/inkwell/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

// LoginUseCase authenticates the single admin account held in config.
// There is no user table; the credentials come from the environment.
type LoginUseCase struct {
	adminEmail        string
	adminPasswordHash string
	adminID           uuid.UUID
	jwtSvc            *auth.JWTService
	logger            logger.Logger
}

func NewLoginUseCase(adminEmail, adminPasswordHash string, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		adminID:           uuid.New(),
		jwtSvc:            jwtSvc,
		logger:            log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	_, span := tracer.Start(ctx, "Login")
	defer span.End()

	if uc.adminEmail == "" || uc.adminPasswordHash == "" {
		err := apperror.NewInternal("admin credentials are not configured", nil)
		span.RecordError(err)
		return nil, err
	}

	if input.Email != uc.adminEmail || !auth.CheckPasswordHash(input.Password, uc.adminPasswordHash) {
		err := apperror.NewUnauthorized("incorrect email or password", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(uc.adminID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("email", input.Email))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	return &LoginOutput{AccessToken: token}, nil
}
