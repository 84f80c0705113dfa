package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/fund"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateFamily(ctx context.Context, name string) (*domain.Family, error)
}
type Service struct {
	userRepo    Repo
	fundService fund.Service
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, fundService fund.Service, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		fundService: fundService,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the family, its first user and an empty collective fund.
func (s *Service) Register(ctx context.Context, email, password, familyName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, email: ", zap.String("email", email))
		return nil, errors.New("email already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	family, err := s.userRepo.CreateFamily(ctx, familyName)
	if err != nil {
		zap.L().Error("can't create family: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FamilyID:     family.ID,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.fundService.CreateFund(ctx, newUser.FamilyID)
	if err != nil {
		zap.L().Error("can't create family fund: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID, familyID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, familyID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
