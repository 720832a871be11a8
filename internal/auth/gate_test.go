package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newGate(t *testing.T) *Gate {
	t.Helper()
	g, err := NewGate("tijera-dorada", "", "access-secret", "refresh-secret")
	require.NoError(t, err)
	return g
}

func TestVerifyAcceptsOnlyExactSecret(t *testing.T) {
	g := newGate(t)

	assert.NoError(t, g.Verify("tijera-dorada"))
	assert.ErrorIs(t, g.Verify("tijera-dorad"), ErrInvalidSecret)
	assert.ErrorIs(t, g.Verify("tijera-dorada "), ErrInvalidSecret)
	assert.ErrorIs(t, g.Verify(""), ErrInvalidSecret)
	assert.ErrorIs(t, g.Verify(strings.Repeat("x", 73)), ErrSecretTooLong)
}

func TestGateFromHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("navaja"), bcrypt.MinCost)
	require.NoError(t, err)

	g, err := NewGate("", string(hash), "a", "r")
	require.NoError(t, err)
	assert.NoError(t, g.Verify("navaja"))

	_, err = NewGate("", "not-a-hash", "a", "r")
	assert.Error(t, err)
	_, err = NewGate("", "", "a", "r")
	assert.Error(t, err)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	g := newGate(t)
	access, refresh, err := g.Issue()
	require.NoError(t, err)

	assert.NoError(t, g.ValidateAccess(access))
	assert.ErrorIs(t, g.ValidateAccess(refresh), ErrInvalidToken)

	_, _, err = g.Refresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	newAccess, _, err := g.Refresh(refresh)
	require.NoError(t, err)
	assert.NoError(t, g.ValidateAccess(newAccess))
}

func TestAccessTokenExpires(t *testing.T) {
	g := newGate(t)
	issued := time.Now()
	g.now = func() time.Time { return issued }
	access, _, err := g.Issue()
	require.NoError(t, err)

	g.now = func() time.Time { return issued.Add(AccessTTL + time.Minute) }
	assert.ErrorIs(t, g.ValidateAccess(access), ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := newGate(t)
	access, _, err := g.Issue()
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", Middleware(g), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("role"))
	})

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/admin", "", http.StatusUnauthorized},
		{"bad token", "/admin", "Bearer nope", http.StatusUnauthorized},
		{"header", "/admin", "Bearer " + access, http.StatusOK},
		{"query", "/admin?token=" + access, "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
