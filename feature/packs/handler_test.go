package packs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"holiday-manager/core/storage/mocks"
	"holiday-manager/feature/packs"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	feature := packs.NewFeature(client, bucket, nil, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleListPacks_OK(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, bucket).Return(true, nil)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(objectChannel())

	app := newTestApp(client)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/packs/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []packs.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	assert.Empty(t, summaries)
}

func TestHandleListPacks_SourceUnavailable(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, bucket).Return(false, nil)

	app := newTestApp(client)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/packs/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleUploadPack_OK(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, bucket, "uk.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	app := newTestApp(client)
	body := bytes.NewReader([]byte(`{"category":"Public Holidays","holidays":[{"name":"Boxing Day","date":"2025-12-26"}]}`))
	req := httptest.NewRequest(http.MethodPut, "/packs/uk", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleUploadPack_Malformed(t *testing.T) {
	app := newTestApp(new(mocks.Client))
	req := httptest.NewRequest(http.MethodPut, "/packs/uk", bytes.NewReader([]byte(`{broken`)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleDeletePack_NotFound(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, bucket, "ghost.json", mock.Anything).
		Return(minio.ObjectInfo{}, assert.AnError)

	app := newTestApp(client)
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/packs/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
