package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docfill/docfill-go/config"
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/handlers"
	"github.com/docfill/docfill-go/internal/testutils"
	"github.com/docfill/docfill-go/middleware"
	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/routes"
	"github.com/docfill/docfill-go/services"
	"github.com/docfill/docfill-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// objectStore replaces MinIO for the integration run.
var objectStore = map[string][]byte{}

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Template{},
		&models.Field{},
		&models.Assignment{},
		&models.FieldValue{},
		&models.Version{},
	); err != nil {
		log.Fatal(err)
	}

	utils.UploadBytes = func(ctx context.Context, name, contentType string, content []byte) error {
		objectStore[name] = content
		return nil
	}
	utils.DownloadObject = func(ctx context.Context, name string) ([]byte, error) {
		data, ok := objectStore[name]
		if !ok {
			return nil, errors.New("object not found: " + name)
		}
		return data, nil
	}
	utils.DeleteObject = func(ctx context.Context, name string) error {
		delete(objectStore, name)
		return nil
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, handlers.New(services.New(repositories.New())))

	registerUserForTests("alice", "123456")
	registerUserForTests("bob", "123456")
	registerUserForTests("carol", "123456")
	gormDB.Model(&models.User{}).Where("username = ?", "alice").Update("role", models.UserRoleAdmin)

	os.Exit(m.Run())
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func registerUserForTests(username, password string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}
