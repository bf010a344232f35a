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

package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

func newShell(id string, idShort string) *model.AssetAdministrationShell {
	shell := model.NewAssetAdministrationShell(id, model.AssetInformation{
		AssetKind: model.ASSETKIND_INSTANCE,
	})
	shell.IdShort = idShort
	return shell
}

func TestInMemoryShellLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewInMemoryBackend()

	shell := newShell("urn:x-test:aas1", "first")
	require.NoError(t, b.CreateShell(ctx, shell))

	err := b.CreateShell(ctx, newShell("urn:x-test:aas1", "duplicate"))
	require.True(t, common.IsErrConflict(err))

	got, err := b.GetShell(ctx, "urn:x-test:aas1")
	require.NoError(t, err)
	require.Equal(t, "first", got.IdShort)

	shell.IdShort = "renamed"
	require.NoError(t, b.UpdateShell(ctx, shell))
	got, err = b.GetShell(ctx, "urn:x-test:aas1")
	require.NoError(t, err)
	require.Equal(t, "renamed", got.IdShort)

	require.NoError(t, b.DeleteShell(ctx, "urn:x-test:aas1"))
	_, err = b.GetShell(ctx, "urn:x-test:aas1")
	require.True(t, common.IsErrNotFound(err))
	err = b.DeleteShell(ctx, "urn:x-test:aas1")
	require.True(t, common.IsErrNotFound(err))
}

func TestInMemoryUpdateMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewInMemoryBackend()

	err := b.UpdateSubmodel(ctx, model.NewSubmodel("urn:x-test:sm1"))
	require.True(t, common.IsErrNotFound(err))
}

func TestInMemoryPagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewInMemoryBackend()

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("urn:x-test:aas%d", i)
		require.NoError(t, b.CreateShell(ctx, newShell(id, "shell")))
	}

	page, next, err := b.ListShells(ctx, "", 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "urn:x-test:aas0", page[0].ID)
	require.Equal(t, "urn:x-test:aas1", page[1].ID)
	require.Equal(t, "urn:x-test:aas2", next)

	page, next, err = b.ListShells(ctx, "", 2, next)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "urn:x-test:aas2", page[0].ID)
	require.Equal(t, "urn:x-test:aas4", next)

	page, next, err = b.ListShells(ctx, "", 2, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Empty(t, next)
}

func TestInMemoryIdShortFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewInMemoryBackend()

	require.NoError(t, b.CreateShell(ctx, newShell("urn:x-test:aas1", "pump")))
	require.NoError(t, b.CreateShell(ctx, newShell("urn:x-test:aas2", "valve")))
	require.NoError(t, b.CreateShell(ctx, newShell("urn:x-test:aas3", "pump")))

	page, next, err := b.ListShells(ctx, "pump", 0, "")
	require.NoError(t, err)
	require.Empty(t, next)
	require.Len(t, page, 2)
	for _, shell := range page {
		require.Equal(t, "pump", shell.IdShort)
	}
}

func TestInMemoryFromEnvironment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	env := &model.Environment{
		AssetAdministrationShells: []*model.AssetAdministrationShell{newShell("urn:x-test:aas1", "shell")},
		Submodels:                 []*model.Submodel{model.NewSubmodel("urn:x-test:sm1")},
		ConceptDescriptions:       []*model.ConceptDescription{model.NewConceptDescription("urn:x-test:cd1")},
	}
	b, err := NewInMemoryBackendFromEnvironment(env)
	require.NoError(t, err)

	_, err = b.GetShell(ctx, "urn:x-test:aas1")
	require.NoError(t, err)
	_, err = b.GetSubmodel(ctx, "urn:x-test:sm1")
	require.NoError(t, err)
	_, err = b.GetConceptDescription(ctx, "urn:x-test:cd1")
	require.NoError(t, err)
}
