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

package model

// Referable is implemented by all model elements that are addressable by an
// idShort within their parent namespace.
type Referable interface {
	GetIdShort() string
	GetModelType() string

	// DescendOnce returns the direct referable children of this element.
	DescendOnce() []Referable
}

// Identifiable is implemented by the top-level model elements that carry a
// globally unique identifier: AssetAdministrationShell, Submodel and
// ConceptDescription.
type Identifiable interface {
	Referable
	GetID() string
}

// Qualifiable is implemented by submodels and submodel elements that carry
// qualifiers.
type Qualifiable interface {
	GetQualifiers() []Qualifier
	SetQualifiers([]Qualifier)
}

// Descend returns all referables transitively contained in r, depth-first,
// not including r itself.
func Descend(r Referable) []Referable {
	var out []Referable
	for _, child := range r.DescendOnce() {
		out = append(out, child)
		out = append(out, Descend(child)...)
	}
	return out
}

// QualifierByType returns the qualifier with the given type from q, or false
// if no such qualifier exists.
func QualifierByType(q Qualifiable, qualifierType string) (Qualifier, bool) {
	for _, qual := range q.GetQualifiers() {
		if qual.Type == qualifierType {
			return qual, true
		}
	}
	return Qualifier{}, false
}

// RemoveQualifierByType removes the qualifier with the given type from q.
// It reports whether a qualifier was removed.
func RemoveQualifierByType(q Qualifiable, qualifierType string) bool {
	qualifiers := q.GetQualifiers()
	for i, qual := range qualifiers {
		if qual.Type == qualifierType {
			q.SetQualifiers(append(qualifiers[:i:i], qualifiers[i+1:]...))
			return true
		}
	}
	return false
}
