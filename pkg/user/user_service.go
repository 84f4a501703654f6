package user

import (
	"context"
	"errors"

	"cooknextdoor/domain"
	"cooknextdoor/entities"
	"cooknextdoor/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Location: req.Location,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) authResponse(user *entities.User) (domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return domain.AuthResponse{}, err
	}

	return domain.AuthResponse{
		Token: token,
		User: domain.UserResponse{
			ID:   user.ID.String(),
			Name: user.Name,
			Role: user.Role,
		},
	}, nil
}
