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

package window

import (
	"go.uber.org/zap"

	"github.com/numaproj/rollingmedian/pkg/shared/logging"
)

type options struct {
	// verify runs a full consistency check after every event
	verify bool
	// logger is used to pass the logger variable
	logger *zap.SugaredLogger
}

func defaultOptions() *options {
	return &options{
		logger: logging.NewLogger(),
	}
}

type Option func(*options) error

// WithVerify enables the consistency check after every processed event.
func WithVerify(v bool) Option {
	return func(o *options) error {
		o.verify = v
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}
