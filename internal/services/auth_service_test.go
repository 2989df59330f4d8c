package services

import (
	"context"
	"testing"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthService, *mocks.MockUserRepository, *mocks.MockTokenRepository, *mocks.MockStoreRepository) {
	users := new(mocks.MockUserRepository)
	tokens := new(mocks.MockTokenRepository)
	stores := new(mocks.MockStoreRepository)
	svc := NewAuthService(users, tokens, stores, mocks.PassthroughTx())
	return svc, users, tokens, stores
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterCustomer(t *testing.T) {
	input := RegisterCustomerInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "s3cret",
		FirstName:        "Alice",
		LastName:         "Doe",
		ShippingAddress1: "1 Home Street",
	}

	t.Run("creates user, profile, and token together", func(t *testing.T) {
		svc, users, tokens, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "alice").Return(nil, nil)
		users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 50
			})
		users.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*domain.Customer")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Customer).ID = testCustomerID
			})
		tokens.On("Create", mock.Anything, mock.MatchedBy(func(token *domain.AuthToken) bool {
			return token.UserID == 50 &&
				token.Role == domain.RoleCustomer &&
				token.ProfileID == testCustomerID &&
				len(token.Key) == 64
		})).Return(nil)

		customer, token, err := svc.RegisterCustomer(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, uint64(50), customer.UserID)
		assert.NotEqual(t, "s3cret", customer.User.PasswordHash, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.User.PasswordHash), []byte("s3cret")))
		assert.Len(t, token.Key, 64)

		users.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, users, tokens, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "alice").
			Return(&domain.User{ID: 1, Username: "alice"}, nil)

		_, _, err := svc.RegisterCustomer(context.Background(), input)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_RegisterVendor(t *testing.T) {
	svc, users, tokens, stores := newAuthService()

	users.On("FindUserByUsername", mock.Anything, "bob").Return(nil, nil)
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(nil).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 60
		})
	users.On("CreateVendor", mock.Anything, mock.AnythingOfType("*domain.Vendor")).
		Return(nil).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Vendor).ID = testVendorID
		})
	stores.On("Create", mock.Anything, mock.MatchedBy(func(store *domain.Store) bool {
		return store.VendorID == testVendorID && store.StoreName == "Bob's Boutique"
	})).Return(nil)
	tokens.On("Create", mock.Anything, mock.MatchedBy(func(token *domain.AuthToken) bool {
		return token.Role == domain.RoleVendor && token.ProfileID == testVendorID
	})).Return(nil)

	vendor, store, token, err := svc.RegisterVendor(context.Background(), RegisterVendorInput{
		Username:  "bob",
		Email:     "bob@example.com",
		Password:  "s3cret",
		StoreName: "Bob's Boutique",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(60), vendor.UserID)
	assert.Equal(t, testVendorID, store.VendorID)
	assert.Equal(t, domain.RoleVendor, token.Role)

	stores.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("resolves the customer role at login", func(t *testing.T) {
		svc, users, tokens, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "alice").
			Return(&domain.User{ID: 50, Username: "alice", PasswordHash: hashOf(t, "s3cret")}, nil)
		users.On("FindCustomerByUserID", mock.Anything, uint64(50)).
			Return(&domain.Customer{ID: testCustomerID, UserID: 50}, nil)
		existing := &domain.AuthToken{Key: "existingkey", UserID: 50, Role: domain.RoleCustomer, ProfileID: testCustomerID}
		tokens.On("FindByUser", mock.Anything, uint64(50)).Return(existing, nil)

		session, token, err := svc.Login(context.Background(), "alice", "s3cret")
		require.NoError(t, err)

		assert.Equal(t, domain.RoleCustomer, session.Role)
		assert.Equal(t, testCustomerID, session.ProfileID)
		assert.Equal(t, "existingkey", token.Key, "existing token is reused")
		tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("issues a token when none exists", func(t *testing.T) {
		svc, users, tokens, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "bob").
			Return(&domain.User{ID: 60, Username: "bob", PasswordHash: hashOf(t, "s3cret")}, nil)
		users.On("FindCustomerByUserID", mock.Anything, uint64(60)).Return(nil, nil)
		users.On("FindVendorByUserID", mock.Anything, uint64(60)).
			Return(&domain.Vendor{ID: testVendorID, UserID: 60}, nil)
		tokens.On("FindByUser", mock.Anything, uint64(60)).Return(nil, nil)
		tokens.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuthToken")).Return(nil)

		session, token, err := svc.Login(context.Background(), "bob", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleVendor, session.Role)
		assert.Len(t, token.Key, 64)
		tokens.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "alice").
			Return(&domain.User{ID: 50, PasswordHash: hashOf(t, "s3cret")}, nil)

		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users, _, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, nil)

		_, _, err := svc.Login(context.Background(), "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user without a profile", func(t *testing.T) {
		svc, users, _, _ := newAuthService()

		users.On("FindUserByUsername", mock.Anything, "limbo").
			Return(&domain.User{ID: 70, PasswordHash: hashOf(t, "s3cret")}, nil)
		users.On("FindCustomerByUserID", mock.Anything, uint64(70)).Return(nil, nil)
		users.On("FindVendorByUserID", mock.Anything, uint64(70)).Return(nil, nil)

		_, _, err := svc.Login(context.Background(), "limbo", "s3cret")
		assert.ErrorIs(t, err, ErrNoProfile)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		svc, _, tokens, _ := newAuthService()

		tokens.On("FindByKey", mock.Anything, "goodkey").Return(&domain.AuthToken{
			Key:       "goodkey",
			UserID:    50,
			Role:      domain.RoleCustomer,
			ProfileID: testCustomerID,
		}, nil)

		session, err := svc.Authenticate(context.Background(), "goodkey")
		require.NoError(t, err)
		assert.Equal(t, uint64(50), session.UserID)
		assert.Equal(t, domain.RoleCustomer, session.Role)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, _, tokens, _ := newAuthService()

		tokens.On("FindByKey", mock.Anything, "badkey").Return(nil, nil)

		session, err := svc.Authenticate(context.Background(), "badkey")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, session)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokens, _ := newAuthService()

	tokens.On("DeleteByKey", mock.Anything, "goodkey").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "goodkey"))
	tokens.AssertExpectations(t)
}
