/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	w, err := Create(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.GetName())

	// truncated on create
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	for _, v := range []string{"1.00", "1.50", "2.00"} {
		require.NoError(t, w.Write(context.Background(), v))
	}
	require.NoError(t, w.Close())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.00\n1.50\n2.00\n", string(data))
}

func TestCreate_BadPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "output.txt"))
	assert.Error(t, err)
}

type brokenWriter struct {
	closed bool
}

func (b *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("no space left")
}

func (b *brokenWriter) Close() error {
	b.closed = true
	return errors.New("close failed")
}

func TestWriter_Errors(t *testing.T) {
	bw := &brokenWriter{}
	w := New("broken", bw)
	// buffered, the error surfaces on flush
	require.NoError(t, w.Write(context.Background(), "1.00"))
	err := w.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left")
	assert.Contains(t, err.Error(), "close failed")
	assert.True(t, bw.closed)
}
