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

package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// pathSegment is one dot-separated step of an idShort path. List entries are
// addressed with bracket indexes appended to the list idShort, e.g.
// "measurements[0].value".
type pathSegment struct {
	idShort string
	indexes []int
}

func parseIdShortPath(path string) ([]pathSegment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, common.NewErrBadRequest("idShort path must not be empty")
	}

	parts := strings.Split(path, ".")
	segments := make([]pathSegment, 0, len(parts))
	for _, part := range parts {
		name := part
		var indexes []int
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				break
			}
			if !strings.HasSuffix(name, "]") {
				return nil, common.NewErrBadRequest(fmt.Sprintf("malformed idShort path segment '%s'", part))
			}
			for _, raw := range strings.Split(name[open+1:len(name)-1], "][") {
				idx, err := strconv.Atoi(raw)
				if err != nil || idx < 0 {
					return nil, common.NewErrBadRequest(fmt.Sprintf("invalid list index '%s' in idShort path segment '%s'", raw, part))
				}
				indexes = append(indexes, idx)
			}
			name = name[:open]
		}
		if name == "" {
			return nil, common.NewErrBadRequest(fmt.Sprintf("idShort path segment '%s' is missing an idShort", part))
		}
		segments = append(segments, pathSegment{idShort: name, indexes: indexes})
	}
	return segments, nil
}

func childByIdShort(container model.ElementContainer, idShort string) (model.SubmodelElement, int) {
	for i, el := range container.ChildElements() {
		if el.GetIdShort() == idShort {
			return el, i
		}
	}
	return nil, -1
}

// elementPosition resolves path within the submodel and returns the parent
// container of the addressed element together with the element's index in
// the parent's child slice.
func elementPosition(sm *model.Submodel, path string) (model.ElementContainer, int, error) {
	segments, err := parseIdShortPath(path)
	if err != nil {
		return nil, 0, err
	}

	var current model.ElementContainer = sm
	parent := current
	index := -1

	for si, seg := range segments {
		el, i := childByIdShort(current, seg.idShort)
		if el == nil {
			return nil, 0, common.NewErrNotFound(path)
		}
		parent, index = current, i

		for _, idx := range seg.indexes {
			list, ok := el.(model.ElementContainer)
			if !ok {
				return nil, 0, common.NewErrBadRequest(fmt.Sprintf("element '%s' in idShort path '%s' is not a list", seg.idShort, path))
			}
			children := list.ChildElements()
			if idx >= len(children) {
				return nil, 0, common.NewErrNotFound(path)
			}
			parent, index = list, idx
			el = children[idx]
		}

		if si < len(segments)-1 {
			container, ok := el.(model.ElementContainer)
			if !ok {
				return nil, 0, common.NewErrBadRequest(fmt.Sprintf("element '%s' in idShort path '%s' cannot contain child elements", seg.idShort, path))
			}
			current = container
		}
	}

	return parent, index, nil
}

func elementAtPath(sm *model.Submodel, path string) (model.SubmodelElement, error) {
	parent, index, err := elementPosition(sm, path)
	if err != nil {
		return nil, err
	}
	return parent.ChildElements()[index], nil
}

// containerAtPath resolves the container addressed by path. The empty path
// addresses the submodel itself.
func containerAtPath(sm *model.Submodel, path string) (model.ElementContainer, error) {
	if strings.TrimSpace(path) == "" {
		return sm, nil
	}
	el, err := elementAtPath(sm, path)
	if err != nil {
		return nil, err
	}
	container, ok := el.(model.ElementContainer)
	if !ok {
		return nil, common.NewErrBadRequest(fmt.Sprintf("element at idShort path '%s' cannot contain child elements", path))
	}
	return container, nil
}

// insertElement appends el to the container. A non-empty idShort must be
// unique within the container's namespace.
func insertElement(container model.ElementContainer, el model.SubmodelElement) error {
	if idShort := el.GetIdShort(); idShort != "" {
		if existing, _ := childByIdShort(container, idShort); existing != nil {
			return common.NewErrConflict(fmt.Sprintf("an element with idShort '%s' already exists in this namespace", idShort))
		}
	}
	container.SetChildElements(append(container.ChildElements(), el))
	return nil
}

func replaceElementAtPath(sm *model.Submodel, path string, el model.SubmodelElement) error {
	parent, index, err := elementPosition(sm, path)
	if err != nil {
		return err
	}
	children := parent.ChildElements()
	if newIdShort := el.GetIdShort(); newIdShort != "" && newIdShort != children[index].GetIdShort() {
		if existing, i := childByIdShort(parent, newIdShort); existing != nil && i != index {
			return common.NewErrConflict(fmt.Sprintf("an element with idShort '%s' already exists in this namespace", newIdShort))
		}
	}
	children[index] = el
	parent.SetChildElements(children)
	return nil
}

func removeElementAtPath(sm *model.Submodel, path string) error {
	parent, index, err := elementPosition(sm, path)
	if err != nil {
		return err
	}
	children := parent.ChildElements()
	parent.SetChildElements(append(children[:index:index], children[index+1:]...))
	return nil
}

// qualifiableAtPath resolves the qualifier carrier addressed by path. The
// empty path addresses the submodel itself.
func qualifiableAtPath(sm *model.Submodel, path string) (model.Qualifiable, error) {
	if strings.TrimSpace(path) == "" {
		return sm, nil
	}
	return elementAtPath(sm, path)
}
