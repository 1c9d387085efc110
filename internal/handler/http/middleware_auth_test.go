package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(f routerFixture)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer"},
		{
			name:   "invalid token",
			header: "Bearer bad-token",
			setup: func(f routerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), "bad-token").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
		{
			name:   "token without owner",
			header: "Bearer " + testToken,
			setup: func(f routerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/files"+testFilePath, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := httptest.NewRecorder()
			f.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestAuth_OwnerScopesRequests(t *testing.T) {
	f := newTestRouter(t)
	f.authorizeAs("bob")

	f.files.EXPECT().GetFile(gomock.Any(), "bob", testFilePath).Return(models.RemoteFile{Path: testFilePath}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, withBearer(httptest.NewRequest(http.MethodGet, "/api/files"+testFilePath, nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
}
