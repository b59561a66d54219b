package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/recipe-server/internal/api/http/context"
	"github.com/dtroode/recipe-server/internal/mocks"
	"github.com/dtroode/recipe-server/internal/model"
	"github.com/dtroode/recipe-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(svc Authenticator, reached *bool) *gin.Engine {
	ctxMgr := httpctx.NewManager()
	auth := NewAuthenticate(svc, ctxMgr, testutil.MakeNoopLogger())

	r := gin.New()
	r.GET("/protected", auth.Handle, func(c *gin.Context) {
		*reached = true
		u, _ := ctxMgr.GetUser(c)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	return r
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Email: "a@example.com", IsActive: true}

	tests := []struct {
		name       string
		header     string
		setup      func(svc *mocks.AuthService)
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(*mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantDetail: msgNotProvided,
		},
		{
			name:       "unsupported scheme",
			header:     "Basic abc",
			setup:      func(*mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantDetail: msgNotProvided,
		},
		{
			name:       "keyword only",
			header:     "Bearer",
			setup:      func(*mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantDetail: msgNoCredentials,
		},
		{
			name:       "spaces in key",
			header:     "Bearer a b",
			setup:      func(*mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantDetail: msgHasSpaces,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "bad").Return(model.User{}, model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: msgInvalidToken,
		},
		{
			name:   "store failure",
			header: "Bearer k",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "k").Return(model.User{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "bearer ok",
			header: "Bearer good",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "token keyword ok",
			header: "token good",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			tt.setup(svc)

			var reached bool
			r := newAuthEngine(svc, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)

			if tt.wantDetail != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantDetail, body["detail"])
				assert.Equal(t, "Token", w.Header().Get("WWW-Authenticate"))
			}
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"email":"a@example.com"}`, w.Body.String())
			}
		})
	}
}
