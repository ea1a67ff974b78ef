package authservice

import (
	"context"
	"errors"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}
type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrDeleteForbidden    = errors.New("not allowed")
	ErrMDOnlyManagers     = errors.New("md can only delete managers")
)

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role domain.Role) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, role)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, username: ", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user successfully created", zap.String("username", username), zap.String("role", string(role)))
	return newUser, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users: ", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the target account. Deleting a missing user is not an
// error. An md actor may only delete managers; admins may delete anyone.
func (s *Service) DeleteUser(ctx context.Context, actorRole domain.Role, targetID int) error {
	if actorRole == domain.RoleManager {
		return ErrDeleteForbidden
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return err
	}
	if target == nil {
		return nil
	}
	if actorRole == domain.RoleMD && target.Role != domain.RoleManager {
		return ErrMDOnlyManagers
	}
	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		zap.L().Error("can't delete user: ", zap.Error(err))
		return err
	}
	zap.L().Info("user deleted", zap.Int("userID", targetID))
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, password string) error {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}
	zap.L().Info("password updated", zap.Int("userID", userID))
	return nil
}
