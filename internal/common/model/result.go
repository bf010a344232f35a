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

package model

// Message carries a single diagnostic entry of a Result envelope.
type Message struct {
	Code string `json:"code,omitempty"`

	CorrelationID string `json:"correlationId,omitempty"`

	MessageType string `json:"messageType,omitempty"`

	Text string `json:"text,omitempty"`

	Timestamp string `json:"timestamp,omitempty"`
}

// Result is the error envelope returned by all repository endpoints.
type Result struct {
	Messages []Message `json:"messages,omitempty"`
}

// PagedResultPagingMetadata carries the cursor pointing to the next page of a
// paginated listing. An empty cursor means the listing is exhausted.
type PagedResultPagingMetadata struct {
	Cursor string `json:"cursor,omitempty"`
}
