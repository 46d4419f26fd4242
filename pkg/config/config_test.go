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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		args    []string
		want    *Config
		wantErr string
	}{
		{
			name: "flags",
			args: []string{"--log-level=debug", "--fold-case", "--verify", "--metrics-file=/tmp/m.prom"},
			want: &Config{LogLevel: "debug", FoldCase: true, Verify: true, MetricsFile: "/tmp/m.prom"},
		},
		{
			name: "file",
			file: "log-level: warn\nfold-case: true\n",
			want: &Config{LogLevel: "warn", FoldCase: true},
		},
		{
			name: "flag wins over file",
			file: "log-level: warn\nverify: true\n",
			args: []string{"--log-level=error"},
			want: &Config{LogLevel: "error", Verify: true},
		},
		{
			name:    "bad level",
			args:    []string{"--log-level=loud"},
			wantErr: `invalid log-level "loud"`,
		},
		{
			name:    "bad file",
			file:    "log-level: [",
			wantErr: "failed to load configuration file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.file != "" {
				args = append([]string{"--config=" + writeFile(t, tt.file)}, args...)
			}
			conf, err := Load(newFlagSet(t, args...))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, conf)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config="+filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	c := Default()
	c.MetricsFile = t.TempDir()
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
