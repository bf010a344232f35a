/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package attachments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
)

func TestKeyEscapesSeparators(t *testing.T) {
	t.Parallel()

	key := Key("urn:x-test/sm1", "coll.doc")
	parts := strings.Split(key, "/")
	require.Len(t, parts, 2)
	// The slash in the identifier must not create a third path level.
	decoded, err := common.DecodeString(parts[0])
	require.NoError(t, err)
	require.Equal(t, "urn:x-test/sm1", decoded)
}

func TestLocalStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	key := Key("urn:x-test:sm1", "doc")
	_, err = s.Get(ctx, key)
	require.True(t, common.IsErrNotFound(err))

	require.NoError(t, s.Put(ctx, key, []byte("payload")))
	data, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)

	// Overwrite is allowed.
	require.NoError(t, s.Put(ctx, key, []byte("updated")))
	data, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("updated"), data)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	require.True(t, common.IsErrNotFound(err))
	require.True(t, common.IsErrNotFound(s.Delete(ctx, key)))
}
