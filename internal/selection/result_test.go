package selection

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelled_AllFieldsNil(t *testing.T) {
	r := Cancelled()

	fields := r.Fields()
	require.Len(t, fields, 10)

	for i, f := range fields {
		assert.Nil(t, f, "field %d", i)
	}

	assert.True(t, r.IsCancelled())
	assert.Equal(t, "", r.Path())
}

func TestIsCancelled_AnySingleFieldBreaksCancellation(t *testing.T) {
	path := "/tmp/x"
	now := time.Now()
	size := int64(0)
	flag := false
	msg := "boom"

	cases := map[string]Result{
		"file path":      {FilePath: &path},
		"folder path":    {FolderPath: &path},
		"last modified":  {LastModified: &now},
		"created":        {Created: &now},
		"size":           {SizeBytes: &size},
		"readonly":       {Readonly: &flag},
		"venv":           {FolderHasVenv: &flag},
		"symlink":        {IsSymlink: &flag},
		"symlink broken": {SymlinkBroken: &flag},
		"error":          {ErrorMessage: &msg},
	}

	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, r.IsCancelled())
		})
	}
}

func TestFailed_OnlyPathAndMessage(t *testing.T) {
	r := Failed("/root/secret", false, errors.New("permission denied"))

	require.NotNil(t, r.FilePath)
	assert.Equal(t, "/root/secret", *r.FilePath)
	assert.Nil(t, r.FolderPath)
	require.True(t, r.HasError())
	assert.Equal(t, "permission denied", *r.ErrorMessage)

	nonNil := 0
	for _, f := range r.Fields() {
		if f != nil {
			nonNil++
		}
	}

	assert.Equal(t, 2, nonNil)

	dir := Failed("/root", true, errors.New("gone"))
	assert.True(t, dir.IsDir())
	assert.Equal(t, "/root", dir.Path())
}

func TestResult_JSONUsesNulls(t *testing.T) {
	data, err := json.Marshal(Cancelled())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Len(t, decoded, 10)

	for key, value := range decoded {
		assert.Nil(t, value, key)
	}
}
