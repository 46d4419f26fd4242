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

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `{"created_time": "2016-04-07T03:33:19Z", "target": "Jamie-Korn", "actor": "Jordan-Gruber"}
{"created_time": "2016-04-07T03:33:19Z", "target": "Maryann-Berry", "actor": "Jamie-Korn"}
{"created_time": "2016-04-07T03:33:20Z", "target": "Ying-Mo"}
{"created_time": "2016-04-07T03:34:18Z", "target": "Ying-Mo", "actor": "Maryann-Berry"}
{"created_time": "2016-04-07T03:34:58Z", "target": "Jamie-Korn", "actor": "Ying-Mo"}
{"created_time": "2016-04-07T03:32:00Z", "target": "a", "actor": "b"}
{"created_time": "2016-04-07T03:34:00Z", "target": "Maryann-Berry", "actor": "Maddie-Franklin"}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func Test_Commands(t *testing.T) {
	t.Run("test root", func(t *testing.T) {
		output, err := execute(t, "--help")
		require.NoError(t, err)
		assert.Contains(t, output, "Available Commands")
		assert.Contains(t, output, "rolling-median [flags] <input> <output>")
	})

	t.Run("flags", func(t *testing.T) {
		cmd := NewRootCommand()
		assert.True(t, cmd.HasLocalFlags())
		assert.Equal(t, "string", cmd.Flag("config").Value.Type())
		assert.Equal(t, "string", cmd.Flag("log-level").Value.Type())
		assert.Equal(t, "bool", cmd.Flag("fold-case").Value.Type())
		assert.Equal(t, "bool", cmd.Flag("verify").Value.Type())
		assert.Equal(t, "string", cmd.Flag("metrics-file").Value.Type())
	})

	t.Run("missing arguments", func(t *testing.T) {
		output, err := execute(t, "only-input.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 2 arg(s), received 1")
		assert.Contains(t, output, "Usage:")
	})

	t.Run("unreadable input", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "output.txt")
		_, err := execute(t, filepath.Join(dir, "absent.txt"), out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input file")
		assert.NoFileExists(t, out)
	})

	t.Run("version", func(t *testing.T) {
		output, err := execute(t, "version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "Version: "))
	})
}

func Test_Run(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "output.txt")
	metricsFile := filepath.Join(dir, "metrics.prom")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	// stale content must be truncated.
	require.NoError(t, os.WriteFile(out, []byte("9.99\n9.99\n9.99\n9.99\n9.99\n9.99\n9.99\n9.99\n"), 0o644))

	_, err := execute(t, "--verify", "--log-level=warn", "--metrics-file="+metricsFile, in, out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1.00\n1.00\n1.50\n1.00\n1.00\n1.50\n", string(got))

	snapshot, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(snapshot), "build_info")
	assert.Contains(t, string(snapshot), "forwarder_emit_total")
}

func Test_Run_FoldCase(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte(`{"created_time": "2016-04-07T03:33:19Z", "target": "Ann", "actor": "Bob"}
{"created_time": "2016-04-07T03:33:20Z", "target": "bob", "actor": "Cid"}
{"created_time": "2016-04-07T03:33:21Z", "target": "cid", "actor": "ANN"}
`), 0o644))

	_, err := execute(t, "--fold-case", "--log-level=error", in, out)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1.00\n1.00\n2.00\n", string(got))

	_, err = execute(t, "--log-level=error", in, out)
	require.NoError(t, err)
	got, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1.00\n1.00\n1.00\n", string(got))
}
