package user

import (
	"RecipeHub-Backend/domain"
	"RecipeHub-Backend/entities"
	"RecipeHub-Backend/internal/utils/mailing"
	"RecipeHub-Backend/pkg/jwt"
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, userID string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		EnsureProfile(ctx context.Context, userID string) (*entities.User, error)
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

func usernameLengthOK(username string) bool {
	n := utf8.RuneCountInString(username)
	return n >= 3 && n <= 50
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error) {
	if len(req.Password) < 6 {
		return domain.LoginResponse{}, domain.ErrPasswordTooShort
	}
	username := strings.TrimSpace(req.Username)
	if !usernameLengthOK(username) {
		return domain.LoginResponse{}, domain.ErrUsernameLength
	}

	email := strings.TrimSpace(req.Email)
	if s.userRepository.CheckEmailExist(ctx, email) {
		return domain.LoginResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		FullName: strings.TrimSpace(req.FullName),
		Password: string(hashed),
	}

	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	// Verification mail is best effort; registration succeeds either way.
	if err := s.sendVerificationMail(user); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Username != "" {
		username := strings.TrimSpace(req.Username)
		if !usernameLengthOK(username) {
			return domain.UserResponse{}, domain.ErrUsernameLength
		}
		user.Username = username
	}
	if req.FullName != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Bio != "" {
		user.Bio = strings.TrimSpace(req.Bio)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerificationMail(user)
}

func (s *userService) sendVerificationMail(user *entities.User) error {
	token, err := s.jwtService.GeneratePurposedToken(map[string]any{
		"email":   user.Email,
		"purpose": "verify_email",
	}, time.Hour*24)
	if err != nil {
		return err
	}
	return mailing.SendVerificationMail(user.Email, token)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidatePurposedToken(token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return domain.ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the address is registered.
			return nil
		}
		return err
	}

	token, err := s.jwtService.GeneratePurposedToken(map[string]any{
		"email":   user.Email,
		"purpose": "reset_password",
	}, time.Hour)
	if err != nil {
		return err
	}
	return mailing.SendResetPasswordMail(user.Email, token)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	if len(req.Password) < 6 {
		return domain.ErrPasswordTooShort
	}

	claims, err := s.jwtService.ValidatePurposedToken(req.Token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != "reset_password" {
		return domain.ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

// EnsureProfile returns the acting user, lazily filling a missing username
// from the email local part so a recipe can always carry an author.
func (s *userService) EnsureProfile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	if user.Username == "" {
		username := strings.SplitN(user.Email, "@", 2)[0]
		if username == "" {
			username = "user_" + user.ID.String()[:8]
		}
		user.Username = username
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Username:   user.Username,
		FullName:   user.FullName,
		Bio:        user.Bio,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
