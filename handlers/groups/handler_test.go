package groups

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gvnna/bookworms/models"
	"github.com/gvnna/bookworms/testutils"
	"github.com/gvnna/bookworms/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreateGroup_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("456"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/groups", CreateGroup)

	jsonBody, _ := json.Marshal(models.Group{
		Name:     "Clube do Livro",
		Duration: "3 meses",
		Type:     "leitura",
	})
	req, _ := http.NewRequest(http.MethodPost, "/groups", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.True(t, response.Success)
	assert.Equal(t, "Grupo criado com sucesso", response.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup_MissingName(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/groups", CreateGroup)

	req, _ := http.NewRequest(http.MethodPost, "/groups", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "Invalid input")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupByID_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()

	rows := mock.NewRows([]string{"id", "name", "duration", "type", "image", "created_at"}).
		AddRow("456", "Clube do Livro", "3 meses", "leitura", "", createdAt)

	mock.ExpectQuery(`SELECT \* FROM "groups" WHERE id = \$1`).
		WithArgs("456", 1).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/groups/:id", GetGroupByID)

	req, _ := http.NewRequest(http.MethodGet, "/groups/456", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var group models.Group
	json.Unmarshal(resp.Body.Bytes(), &group)
	assert.Equal(t, "456", group.ID)
	assert.Equal(t, "Clube do Livro", group.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "groups" WHERE id = \$1`).
		WithArgs("missing", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/groups/:id", GetGroupByID)

	req, _ := http.NewRequest(http.MethodGet, "/groups/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response utils.Response
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Equal(t, "Grupo não encontrado", response.Error)

	assert.NoError(t, mock.ExpectationsWereMet())
}
