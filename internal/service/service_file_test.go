package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

func newTestFileService(t *testing.T) (FileService, *mock.MockFileRepository) {
	t.Helper()

	repo := mock.NewMockFileRepository(gomock.NewController(t))
	return NewFileService(repo, logger.Nop()), repo
}

func TestFileService_GetFile(t *testing.T) {
	svc, repo := newTestFileService(t)
	want := models.RemoteFile{Owner: "alice", Path: testListPath, Data: json.RawMessage(`{}`)}

	repo.EXPECT().GetFile(gomock.Any(), "alice", testListPath).Return(want, nil)

	got, err := svc.GetFile(context.Background(), "alice", "shop-sync//list_abc.json")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileService_GetFile_NotFound(t *testing.T) {
	svc, repo := newTestFileService(t)

	repo.EXPECT().GetFile(gomock.Any(), "alice", testListPath).Return(models.RemoteFile{}, store.ErrFileNotFound)

	_, err := svc.GetFile(context.Background(), "alice", testListPath)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileService_GetFile_StorageError(t *testing.T) {
	svc, repo := newTestFileService(t)

	repo.EXPECT().GetFile(gomock.Any(), "alice", testListPath).Return(models.RemoteFile{}, assert.AnError)

	_, err := svc.GetFile(context.Background(), "alice", testListPath)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestFileService_PutFile_SetsRevision(t *testing.T) {
	svc, repo := newTestFileService(t)
	data := []byte(`{"id": "abc"}`)

	repo.EXPECT().PutFile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, file models.RemoteFile) (models.RemoteFile, error) {
		assert.Equal(t, "alice", file.Owner)
		assert.Equal(t, testListPath, file.Path)
		assert.Equal(t, utils.Revision(data), file.Revision)
		return file, nil
	})

	stored, err := svc.PutFile(context.Background(), "alice", testListPath, data)

	require.NoError(t, err)
	assert.Equal(t, utils.Revision([]byte(`{"id":"abc"}`)), stored.Revision)
}

func TestFileService_PutFile_RejectsInvalidJSON(t *testing.T) {
	svc, _ := newTestFileService(t)

	_, err := svc.PutFile(context.Background(), "alice", testListPath, []byte(`{"id":`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestFileService_DeleteFile(t *testing.T) {
	svc, repo := newTestFileService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteFile(ctx, "alice", testListPath).Return(nil)
	repo.EXPECT().DeleteFile(ctx, "alice", "/gone.json").Return(store.ErrFileNotFound)

	require.NoError(t, svc.DeleteFile(ctx, "alice", testListPath))
	assert.ErrorIs(t, svc.DeleteFile(ctx, "alice", "gone.json"), ErrFileNotFound)
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "shop-sync/list_a.json", want: "/shop-sync/list_a.json"},
		{raw: "/shop-sync/./list_a.json", want: "/shop-sync/list_a.json"},
		{raw: "/shop-sync/list_a.json/", want: "/shop-sync/list_a.json"},
		{raw: "", wantErr: true},
		{raw: "/", wantErr: true},
		{raw: "../etc/passwd", wantErr: true},
		{raw: "/shop-sync/../../x.json", wantErr: true},
		{raw: "/" + strings.Repeat("a", maxPathLength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := cleanPath(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
