package installer

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/testutil"
)

func TestDownloadWritesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#!/bin/sh\necho installer\n"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "installer.sh")
	err := Download(server.URL, dest)

	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho installer\n", testutil.ReadFile(t, dest))
}

func TestDownloadNonOKStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.tar.gz")
	err := Download(server.URL, dest)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDownloadFailed))
	assert.False(t, testutil.FileExists(t, dest))
}

func TestDownloadUnreachableServerFails(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	err := Download("http://127.0.0.1:1/nothing", dest)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDownloadFailed))
}
