package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoProfile          = errors.New("user has no customer or vendor profile")
)

const sessionCacheTTL = time.Minute

type RegisterCustomerInput struct {
	Username         string
	Email            string
	Password         string
	FirstName        string
	LastName         string
	PhoneNo          string
	ShippingAddress1 string
	ShippingAddress2 string
	ShippingAddress3 string
}

type RegisterVendorInput struct {
	Username  string
	Email     string
	Password  string
	PhoneNo   string
	StoreName string
}

type AuthService struct {
	users       repository.UserRepository
	tokens      repository.TokenRepository
	stores      repository.StoreRepository
	tx          repository.TxManager
	redisClient *redis.Client
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, stores repository.StoreRepository, tx repository.TxManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		stores: stores,
		tx:     tx,
	}
}

func (s *AuthService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// RegisterCustomer creates the user, its customer profile, and an auth token
// in one transaction.
func (s *AuthService) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, *domain.AuthToken, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	var (
		customer *domain.Customer
		token    *domain.AuthToken
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if existing, err := s.users.FindUserByUsername(ctx, in.Username); err != nil {
			return err
		} else if existing != nil {
			return ErrUsernameTaken
		}

		user := &domain.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return err
		}

		customer = &domain.Customer{
			UserID:           user.ID,
			FirstName:        in.FirstName,
			LastName:         in.LastName,
			PhoneNo:          in.PhoneNo,
			ShippingAddress1: in.ShippingAddress1,
			ShippingAddress2: in.ShippingAddress2,
			ShippingAddress3: in.ShippingAddress3,
		}
		if err := s.users.CreateCustomer(ctx, customer); err != nil {
			return err
		}
		customer.User = user

		token = newToken(user.ID, domain.RoleCustomer, customer.ID)
		return s.tokens.Create(ctx, token)
	})
	if err != nil {
		return nil, nil, err
	}
	return customer, token, nil
}

// RegisterVendor creates the user, the vendor profile, and the vendor's one
// store in a single transaction.
func (s *AuthService) RegisterVendor(ctx context.Context, in RegisterVendorInput) (*domain.Vendor, *domain.Store, *domain.AuthToken, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		vendor *domain.Vendor
		store  *domain.Store
		token  *domain.AuthToken
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if existing, err := s.users.FindUserByUsername(ctx, in.Username); err != nil {
			return err
		} else if existing != nil {
			return ErrUsernameTaken
		}

		user := &domain.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return err
		}

		vendor = &domain.Vendor{
			UserID:  user.ID,
			PhoneNo: in.PhoneNo,
		}
		if err := s.users.CreateVendor(ctx, vendor); err != nil {
			return err
		}
		vendor.User = user

		store = &domain.Store{
			VendorID:  vendor.ID,
			StoreName: in.StoreName,
		}
		if err := s.stores.Create(ctx, store); err != nil {
			return err
		}

		token = newToken(user.ID, domain.RoleVendor, vendor.ID)
		return s.tokens.Create(ctx, token)
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return vendor, store, token, nil
}

// Login verifies credentials, resolves the user's role exactly once, and
// issues (or reuses) an opaque token carrying that role.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.AuthToken, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, profileID, err := s.resolveRole(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		token = newToken(user.ID, role, profileID)
		if err := s.tokens.Create(ctx, token); err != nil {
			return nil, nil, err
		}
	}

	session := &domain.Session{UserID: user.ID, Role: role, ProfileID: profileID}
	return session, token, nil
}

// Logout deletes the presented token and its cached session.
func (s *AuthService) Logout(ctx context.Context, key string) error {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, sessionCacheKey(key))
	}
	return s.tokens.DeleteByKey(ctx, key)
}

// Authenticate resolves a token key into a session, consulting the redis
// cache before the database.
func (s *AuthService) Authenticate(ctx context.Context, key string) (*domain.Session, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, sessionCacheKey(key)).Result(); err == nil {
			var session domain.Session
			if json.Unmarshal([]byte(cached), &session) == nil {
				return &session, nil
			}
		}
	}

	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrInvalidToken
	}

	session := &domain.Session{UserID: token.UserID, Role: token.Role, ProfileID: token.ProfileID}
	if s.redisClient != nil {
		if data, err := json.Marshal(session); err == nil {
			s.redisClient.Set(ctx, sessionCacheKey(key), data, sessionCacheTTL)
		}
	}
	return session, nil
}

// CustomerProfile loads the customer behind a session.
func (s *AuthService) CustomerProfile(ctx context.Context, session *domain.Session) (*domain.Customer, error) {
	customer, err := s.users.FindCustomerByID(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNoProfile
	}
	return customer, nil
}

// VendorProfile loads the vendor behind a session.
func (s *AuthService) VendorProfile(ctx context.Context, session *domain.Session) (*domain.Vendor, error) {
	vendor, err := s.users.FindVendorByID(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrNoProfile
	}
	return vendor, nil
}

func (s *AuthService) resolveRole(ctx context.Context, userID uint64) (domain.Role, uint64, error) {
	if customer, err := s.users.FindCustomerByUserID(ctx, userID); err != nil {
		return "", 0, err
	} else if customer != nil {
		return domain.RoleCustomer, customer.ID, nil
	}

	if vendor, err := s.users.FindVendorByUserID(ctx, userID); err != nil {
		return "", 0, err
	} else if vendor != nil {
		return domain.RoleVendor, vendor.ID, nil
	}

	log.Warn().Uint64("user_id", userID).Msg("login for user without profile")
	return "", 0, ErrNoProfile
}

func newToken(userID uint64, role domain.Role, profileID uint64) *domain.AuthToken {
	key := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
	return &domain.AuthToken{
		Key:       key,
		UserID:    userID,
		Role:      role,
		ProfileID: profileID,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func sessionCacheKey(tokenKey string) string {
	return "session:" + tokenKey
}
