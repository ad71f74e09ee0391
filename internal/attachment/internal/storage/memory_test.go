// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	err := s.Put(ctx, "resumes/1/a.pdf", strings.NewReader("%PDF-1.7"), 8, "application/pdf")
	require.NoError(t, err)

	rc, err := s.Get(ctx, "resumes/1/a.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	u, err := s.PresignGet(ctx, "resumes/1/a.pdf", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "memory:///resumes/1/a.pdf?expires="))

	err = s.Put(ctx, "resumes/1/b.pdf", strings.NewReader("short"), 100, "application/pdf")
	assert.Error(t, err)

	require.NoError(t, s.Delete(ctx, "resumes/1/a.pdf"))
	_, err = s.Get(ctx, "resumes/1/a.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	_, err = s.PresignGet(ctx, "resumes/1/a.pdf", time.Minute)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
