// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package operation provides core functionality for rewriting files and
// reporting per-target outcomes
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a runnable unit of work
type Operation interface {
	// Execute runs the operation. A per-target failure is recorded and
	// reported, never returned; only setup problems produce an error.
	Execute(ctx context.Context) error

	// Name identifies the operation for logging
	Name() string
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the renamerc configuration
	Config *config.Config
	// Files performs filesystem reads and atomic writes
	Files status.FileManager
	// Reporter records per-target outcomes
	Reporter status.Reporter
	// User emits user-facing console lines
	User *log.UserLogger
	// Logger is the structured logger
	Logger *zerolog.Logger
}

// 🏗️ BaseOperation carries the dependencies shared by all operations
type BaseOperation struct {
	Config   *config.Config
	Files    status.FileManager
	Reporter status.Reporter
	User     *log.UserLogger
	Logger   *zerolog.Logger
}

// 🏭 NewBaseOperation creates a base operation from options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return BaseOperation{}, errors.Errorf("file manager is required")
	}
	if opts.Reporter == nil {
		return BaseOperation{}, errors.Errorf("reporter is required")
	}
	if opts.User == nil {
		return BaseOperation{}, errors.Errorf("user logger is required")
	}
	if opts.Logger == nil {
		return BaseOperation{}, errors.Errorf("logger is required")
	}
	return BaseOperation{
		Config:   opts.Config,
		Files:    opts.Files,
		Reporter: opts.Reporter,
		User:     opts.User,
		Logger:   opts.Logger,
	}, nil
}
