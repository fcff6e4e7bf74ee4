package user

import (
	"context"
	"testing"
	"time"

	"RecipeHub-Backend/domain"
	"RecipeHub-Backend/entities"
	"RecipeHub-Backend/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newService(t *testing.T) (UserService, jwt.JWTService, *gorm.DB) {
	db := setupTestDB(t)
	jwtService := jwt.NewJWTService()
	return NewUserService(NewUserRepository(db), jwtService), jwtService, db
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	service, _, db := newService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Username: "alice",
		FullName: "Alice Baker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.False(t, res.User.IsVerified)

	// the stored password is a bcrypt hash, never the plaintext
	var stored entities.User
	require.NoError(t, db.First(&stored, "email = ?", "alice@example.com").Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{
		Email: "a@example.com", Password: "short", Username: "alice",
	})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters", err.Error())

	_, err = service.Register(ctx, domain.RegisterRequest{
		Email: "a@example.com", Password: "secret123", Username: "ab",
	})
	require.Error(t, err)
	assert.Equal(t, "Username must be between 3 and 50 characters", err.Error())

	// two multibyte runes are two characters, whatever their byte width
	_, err = service.Register(ctx, domain.RegisterRequest{
		Email: "a@example.com", Password: "secret123", Username: "éé",
	})
	require.ErrorIs(t, err, domain.ErrUsernameLength)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	req := domain.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", Username: "alice",
	}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	req.Username = "alice2"
	_, err = service.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "An account with this email already exists", err.Error())

	// padding around the address must not sneak past the duplicate check
	req.Email = "  alice@example.com  "
	_, err = service.Register(ctx, req)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", Username: "alice",
	})
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	_, err = service.Login(ctx, domain.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", Username: "alice",
	})
	require.NoError(t, err)

	updated, err := service.UpdateProfile(ctx, domain.UpdateProfileRequest{
		Username: "alice_b",
		Bio:      "I bake bread",
	}, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice_b", updated.Username)
	assert.Equal(t, "I bake bread", updated.Bio)

	_, err = service.UpdateProfile(ctx, domain.UpdateProfileRequest{Username: "xy"}, res.User.ID)
	require.ErrorIs(t, err, domain.ErrUsernameLength)
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()
	service, jwtService, db := newService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", Username: "alice",
	})
	require.NoError(t, err)

	token, err := jwtService.GeneratePurposedToken(map[string]any{
		"email":   "alice@example.com",
		"purpose": "verify_email",
	}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(ctx, token))

	var stored entities.User
	require.NoError(t, db.First(&stored, "id = ?", res.User.ID).Error)
	assert.True(t, stored.IsVerified)
}

func TestVerifyEmailRejectsWrongPurpose(t *testing.T) {
	ctx := context.Background()
	service, jwtService, _ := newService(t)

	token, err := jwtService.GeneratePurposedToken(map[string]any{
		"email":   "alice@example.com",
		"purpose": "reset_password",
	}, time.Hour)
	require.NoError(t, err)

	err = service.VerifyEmail(ctx, token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	service, jwtService, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{
		Email: "alice@example.com", Password: "secret123", Username: "alice",
	})
	require.NoError(t, err)

	token, err := jwtService.GeneratePurposedToken(map[string]any{
		"email":   "alice@example.com",
		"purpose": "reset_password",
	}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token: token, Password: "newsecret",
	}))

	_, err = service.Login(ctx, domain.LoginRequest{
		Email: "alice@example.com", Password: "newsecret",
	})
	assert.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	assert.Error(t, err)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	// unknown addresses get the same outcome as known ones
	err := service.ForgotPassword(ctx, domain.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	assert.NoError(t, err)
}

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()
	service, _, db := newService(t)

	t.Run("fills missing username from email", func(t *testing.T) {
		u := &entities.User{ID: uuid.New(), Email: "carol.baker@example.com"}
		require.NoError(t, db.Create(u).Error)

		profile, err := service.EnsureProfile(ctx, u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "carol.baker", profile.Username)
	})

	t.Run("requires an email", func(t *testing.T) {
		u := &entities.User{ID: uuid.New()}
		require.NoError(t, db.Create(u).Error)

		_, err := service.EnsureProfile(ctx, u.ID.String())
		require.Error(t, err)
		assert.Equal(t, "User email is required. Please complete your profile setup.", err.Error())
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.EnsureProfile(ctx, uuid.New().String())
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
