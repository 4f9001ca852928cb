package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPermission, "no write access")
	assert.Equal(t, ErrPermission, err.Code)
	assert.Equal(t, "[PERMISSION] no write access", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInstallFailed, "failed to install %s", "ripgrep")
	assert.Equal(t, "[INSTALL_FAILED] failed to install ripgrep", err.Error())
}

func TestWrap(t *testing.T) {
	inner := errors.New("disk full")
	err := Wrap(inner, ErrFileWrite, "writing init.lua")
	require.NotNil(t, err)
	assert.Equal(t, "[FILE_WRITE] writing init.lua: disk full", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "should be %s", "nil"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrBackupFailed, "copy of %s failed", "/tmp/src")
	target := New(ErrBackupFailed, "")
	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, New(ErrWriteFailed, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrDistroUnsupported, "no such distro"))
	assert.True(t, IsErrorCode(err, ErrDistroUnsupported))
	assert.False(t, IsErrorCode(err, ErrPermission))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrPermission))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrPatchMarker, GetErrorCode(New(ErrPatchMarker, "marker not found")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCommandFailed, "apt install failed").
		WithDetail("package", "neovim").
		WithDetail("exit_code", 100)
	assert.Equal(t, "neovim", err.Details["package"])
	assert.Equal(t, 100, err.Details["exit_code"])
}
