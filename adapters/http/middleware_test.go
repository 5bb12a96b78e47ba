package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestRouter_PanicIsRecoveredAndLogged(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := NewRouter(RouterConfig{
		Logger: logger.NewFromZap(zap.New(core)),
		JWT:    auth.NewJWTService("test-secret", time.Hour),
	})
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	assert.Len(t, logs.FilterMessage("Panic recovered").All(), 1)
	access := logs.FilterMessage("HTTP Request").All()
	require.Len(t, access, 1)
	fields := access[0].ContextMap()
	assert.Equal(t, "/boom", fields["path"])
	assert.Equal(t, int64(http.StatusInternalServerError), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
