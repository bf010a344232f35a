/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors
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

// Package xmlization reads and writes AAS environments in the official XML
// format according to 'Details of the Asset Administration Shell', chapter 5.4.
package xmlization

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rwth-iat/basyx-go-framework/pkg/jsonization"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/store"
)

// NamespaceAAS is the XML namespace of the AAS V3 serialization.
const NamespaceAAS = "https://admin-shell.io/aas/3/0"

// node is a generic XML element tree, the intermediate representation between
// the byte stream and the typed model.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// elem and textElem build encoder output. Elements are written with the aas:
// prefix, matching the serialization of the official AAS toolchains. The
// decoder matches on local names, so it accepts the prefixed form and the
// default-namespace form alike.
func elem(name string, children ...node) node {
	return node{XMLName: xml.Name{Local: "aas:" + name}, Children: children}
}

func textElem(name string, value string) node {
	return node{XMLName: xml.Name{Local: "aas:" + name}, Text: value}
}

// childByName returns the first child with the given local name.
func (n *node) childByName(local string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

// textOf returns the trimmed character data of the first child with the given
// local name, or the empty string if there is no such child.
func (n *node) textOf(local string) string {
	child := n.childByName(local)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text)
}

// ReadEnvironmentInto reads an AAS XML document into the given object store
// and returns the identifiers that were added, in document order.
//
// It returns an error if the document does not declare the AAS V3 namespace
// on its root element. Unknown top-level lists are skipped with a warning,
// duplicate identifier handling matches the JSON adapter.
func ReadEnvironmentInto(objectStore *store.ObjectStore, r io.Reader, opts jsonization.ReadOptions) ([]string, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, &model.ParsingError{Err: err}
	}
	if root.XMLName.Space != NamespaceAAS {
		return nil, &model.ParsingError{Err: fmt.Errorf(
			"the required namespace %s is not declared - is the input document of an older version?", NamespaceAAS)}
	}

	added := make([]string, 0)
	seen := make(map[string]struct{})
	for _, list := range root.Children {
		singular := strings.TrimSuffix(list.XMLName.Local, "s")
		decode, ok := identifiableDecoders[singular]
		if !ok || !strings.HasSuffix(list.XMLName.Local, "s") {
			log.Printf("WARNING: unexpected top-level list aas:%s", list.XMLName.Local)
			continue
		}
		for i := range list.Children {
			child := &list.Children[i]
			if child.XMLName.Local != singular {
				return nil, &model.ParsingError{Err: fmt.Errorf(
					"unexpected element aas:%s in list aas:%s", child.XMLName.Local, list.XMLName.Local)}
			}
			identifiable, err := decode(child)
			if err != nil {
				return nil, err
			}

			if _, ok := seen[identifiable.GetID()]; ok {
				return nil, fmt.Errorf("identifier %s occurs twice in the document: %w",
					identifiable.GetID(), store.ErrDuplicateIdentifier)
			}
			if existing := objectStore.Get(identifiable.GetID(), nil); existing != nil {
				if !opts.ReplaceExisting {
					if !opts.IgnoreExisting {
						return nil, fmt.Errorf("object with identifier %s already exists in the object store: %w",
							identifiable.GetID(), store.ErrDuplicateIdentifier)
					}
					continue
				}
				objectStore.Discard(existing)
			}
			if err := objectStore.Add(identifiable); err != nil {
				return nil, err
			}
			added = append(added, identifiable.GetID())
			seen[identifiable.GetID()] = struct{}{}
		}
	}
	return added, nil
}

// ReadEnvironment reads an AAS XML document into a fresh object store.
func ReadEnvironment(r io.Reader, opts jsonization.ReadOptions) (*store.ObjectStore, error) {
	objectStore := store.NewObjectStore()
	if _, err := ReadEnvironmentInto(objectStore, r, opts); err != nil {
		return nil, err
	}
	return objectStore, nil
}

// ReadEnvironmentFile reads the AAS XML file at the given path into a fresh
// object store.
func ReadEnvironmentFile(path string, opts jsonization.ReadOptions) (*store.ObjectStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEnvironment(f, opts)
}

// WriteEnvironment writes all objects of the store as an AAS XML document,
// including the XML declaration.
func WriteEnvironment(w io.Writer, objectStore *store.ObjectStore) error {
	env := jsonization.EnvironmentFromObjects(objectStore.All())

	root := elem("environment")
	root.Attrs = []xml.Attr{{Name: xml.Name{Local: "xmlns:aas"}, Value: NamespaceAAS}}
	if len(env.AssetAdministrationShells) > 0 {
		list := elem("assetAdministrationShells")
		for _, aas := range env.AssetAdministrationShells {
			list.Children = append(list.Children, encodeAssetAdministrationShell(aas))
		}
		root.Children = append(root.Children, list)
	}
	if len(env.Submodels) > 0 {
		list := elem("submodels")
		for _, sm := range env.Submodels {
			list.Children = append(list.Children, encodeSubmodel(sm))
		}
		root.Children = append(root.Children, list)
	}
	if len(env.ConceptDescriptions) > 0 {
		list := elem("conceptDescriptions")
		for _, cd := range env.ConceptDescriptions {
			list.Children = append(list.Children, encodeConceptDescription(cd))
		}
		root.Children = append(root.Children, list)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Flush()
}

// WriteEnvironmentFile writes all objects of the store to an AAS XML file at
// the given path.
func WriteEnvironmentFile(path string, objectStore *store.ObjectStore) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteEnvironment(f, objectStore); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
