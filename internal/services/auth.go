package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/repositories"
)

// minPasswordLength is the minimum accepted plaintext password length
const minPasswordLength = 5

// Error variables
var (
	ErrEmailRequired     = errors.New("email address is required")
	ErrPasswordTooShort  = errors.New("password must be at least 5 characters")
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned for unknown email, wrong password
	// and inactive accounts alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	// ErrInvalidToken is returned when a bearer token resolves to no user.
	ErrInvalidToken = errors.New("invalid token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash *string, name string, isStaff, isSuperuser bool) (*models.UserDB, error)
}

// TokenReader defines read-only operations for persisted tokens.
type TokenReader interface {
	GetByToken(ctx context.Context, token string) (*models.TokenDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.TokenDB, error)
}

// TokenWriter defines write operations for persisted tokens.
type TokenWriter interface {
	Save(ctx context.Context, token string, userID uuid.UUID) (bool, error)
}

// TokenCache caches token-to-user lookups.
type TokenCache interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
	SetUserID(ctx context.Context, token string, userID uuid.UUID) error
}

// TokenGenerator mints opaque token values.
type TokenGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles signup, login and bearer-token resolution.
type AuthService struct {
	userReader  UserReader
	userWriter  UserWriter
	tokenReader TokenReader
	tokenWriter TokenWriter
	tokenCache  TokenCache
	generator   TokenGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance. tokenCache and
// kafkaWriter may be nil; the service then skips caching/publishing.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	tokenReader TokenReader,
	tokenWriter TokenWriter,
	tokenCache TokenCache,
	generator TokenGenerator,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		userReader:  userReader,
		userWriter:  userWriter,
		tokenReader: tokenReader,
		tokenWriter: tokenWriter,
		tokenCache:  tokenCache,
		generator:   generator,
		kafkaWriter: kafkaWriter,
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the
// domain part of the address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Register creates a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (*models.UserDB, error) {
	return svc.register(ctx, email, password, name, false, false)
}

// CreateSuperuser creates a user carrying the staff/superuser flags.
// The flags go into the same insert, so a failure leaves nothing behind.
func (svc *AuthService) CreateSuperuser(ctx context.Context, email, password string) (*models.UserDB, error) {
	return svc.register(ctx, email, password, "", true, true)
}

func (svc *AuthService) register(ctx context.Context, email, password, name string, isStaff, isSuperuser bool) (*models.UserDB, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	hash := string(hashed)
	user, err := svc.userWriter.Save(ctx, email, &hash, name, isStaff, isSuperuser)
	if errors.Is(err, repositories.ErrEmailTaken) {
		// Lost a race against a concurrent signup for the same email.
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, "user.registered", user.UserID.String(), "")

	return user, nil
}

// Login verifies the credentials and returns the user's bearer token.
// An existing token is reused; one is minted on first login.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	existing, err := svc.tokenReader.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to look up token", "err", err)
		return "", err
	}
	if existing != nil {
		svc.cacheToken(ctx, existing.Token, user.UserID)
		return existing.Token, nil
	}

	value, err := svc.generator.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	inserted, err := svc.tokenWriter.Save(ctx, value, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to save token", "err", err)
		return "", err
	}
	if !inserted {
		// Lost a race against a concurrent login; use the winner's token.
		existing, err = svc.tokenReader.GetByUserID(ctx, user.UserID)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return "", ErrInvalidToken
		}
		value = existing.Token
	}

	svc.cacheToken(ctx, value, user.UserID)
	return value, nil
}

// authenticate looks the user up by normalized email and verifies the
// password. The failure mode is never disclosed.
func (svc *AuthService) authenticate(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.userReader.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil || !user.PasswordHash.Valid || !user.IsActive {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Resolve maps a bearer token to its owning user. The returned user may
// be inactive; the caller decides what that means for the request.
func (svc *AuthService) Resolve(ctx context.Context, token string) (*models.UserDB, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if svc.tokenCache != nil {
		userID, err := svc.tokenCache.GetUserID(ctx, token)
		if err == nil && userID != uuid.Nil {
			user, err := svc.userReader.GetByID(ctx, userID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				return user, nil
			}
		}
	}

	t, err := svc.tokenReader.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up token", "err", err)
		return nil, err
	}
	if t == nil {
		return nil, ErrInvalidToken
	}

	user, err := svc.userReader.GetByID(ctx, t.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get token owner", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	svc.cacheToken(ctx, token, user.UserID)
	return user, nil
}

// cacheToken stores a resolved token in the cache, when one is configured.
func (svc *AuthService) cacheToken(ctx context.Context, token string, userID uuid.UUID) {
	if svc.tokenCache == nil {
		return
	}
	if err := svc.tokenCache.SetUserID(ctx, token, userID); err != nil {
		logger.Log.Errorw("failed to cache token", "err", err)
	}
}

// publishEvent publishes an audit event to Kafka. A nil writer skips
// publishing.
func publishEvent(ctx context.Context, w KafkaWriter, operation, userID, entityID string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Operation: operation,
		EntityID:  entityID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "operation", operation, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "operation", operation, "error", err)
	} else {
		logger.Log.Infow("event published to Kafka", "operation", operation, "event_id", event.EventID)
	}
}
