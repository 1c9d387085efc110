package http

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

const testToken = "good-token"

type routerFixture struct {
	router http.Handler
	files  *mock.MockFileService
	auth   *mock.MockAuthService
	info   *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := routerFixture{
		files: mock.NewMockFileService(ctrl),
		auth:  mock.NewMockAuthService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    f.auth,
		FileService:    f.files,
		AppInfoService: f.info,
	}, logger.Nop())
	f.router = h.Init()

	return f
}

// authorizeAs makes testToken valid for owner.
func (f routerFixture) authorizeAs(owner string) {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{RegisteredClaims: jwt.RegisteredClaims{Subject: owner}}, nil).
		AnyTimes()
}

func withBearer(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}
