package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth"
	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/auth/signup"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/utils"
	userErrors "github.com/qolzam/jobly/users/errors"
	userModels "github.com/qolzam/jobly/users/models"
	userServices "github.com/qolzam/jobly/users/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, cfg *platformconfig.Config) (*testutil.HTTPHelper, *userServices.MockUserRepository) {
	t.Helper()
	keys := testutil.NewKeys(t)
	repo := new(userServices.MockUserRepository)

	jwksHandler, err := jwks.NewHandler(keys.PublicKeyPEM)
	require.NoError(t, err)

	app := fiber.New()
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		LoginHandler:  login.NewHandler(login.NewService(repo, keys.Issuer())),
		SignupHandler: signup.NewHandler(signup.NewService(repo, keys.Issuer(), cfg.Security)),
		JWKSHandler:   jwksHandler,
	}, cfg, nil)

	return testutil.NewHTTPHelper(t, app), repo
}

func testConfig() *platformconfig.Config {
	return &platformconfig.Config{
		Security: platformconfig.SecurityConfig{BcryptCost: 4, MinPasswordScore: 2},
		RateLimits: platformconfig.RateLimitsConfig{
			Login:    platformconfig.RateLimitConfig{Enabled: true, Max: 2, Duration: time.Minute},
			Register: platformconfig.RateLimitConfig{Enabled: false},
		},
	}
}

func TestToken(t *testing.T) {
	helper, repo := setup(t, testConfig())
	hashed, err := utils.HashPassword("password1", 4)
	require.NoError(t, err)
	repo.On("FindByUsername", mock.Anything, "u1").Return(&userModels.User{Username: "u1", Password: hashed}, nil)

	resp := helper.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1", "password": "password1"}).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	assert.NotEmpty(t, body["token"])

	resp = helper.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1", "password": "nope"}).Send()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errBody authErrors.ErrorResponse
	testutil.DecodeJSON(t, resp, &errBody)
	assert.Equal(t, authErrors.CodeInvalidCredentials, errBody.Code)

	// Max is 2 per window.
	resp = helper.NewRequest(http.MethodPost, "/auth/token", map[string]string{"username": "u1", "password": "password1"}).Send()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRegister(t *testing.T) {
	helper, repo := setup(t, testConfig())
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u userModels.User) bool { return u.Username == "new" })).
		Return(&userModels.User{Username: "new"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u userModels.User) bool { return u.Username == "taken" })).
		Return(nil, userErrors.ErrDuplicateUser)

	body := map[string]string{
		"username":  "new",
		"password":  "correct-horse-battery-staple-42",
		"firstName": "first",
		"lastName":  "last",
		"email":     "new@email.com",
	}
	resp := helper.NewRequest(http.MethodPost, "/auth/register", body).Send()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body["username"] = "taken"
	resp = helper.NewRequest(http.MethodPost, "/auth/register", body).Send()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody userErrors.ErrorResponse
	testutil.DecodeJSON(t, resp, &errBody)
	assert.Equal(t, userErrors.CodeDuplicateUser, errBody.Code)

	body["username"] = "weak"
	body["password"] = "password"
	resp = helper.NewRequest(http.MethodPost, "/auth/register", body).Send()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &errBody)
	assert.Equal(t, userErrors.CodeWeakPassword, errBody.Code)

	body["email"] = "bad"
	resp = helper.NewRequest(http.MethodPost, "/auth/register", body).Send()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &errBody)
	assert.Equal(t, userErrors.CodeValidationFailed, errBody.Code)
}

func TestJWKS(t *testing.T) {
	helper, _ := setup(t, testConfig())
	resp := helper.NewRequest(http.MethodGet, "/auth/.well-known/jwks.json", nil).Send()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
