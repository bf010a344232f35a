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

// Package model provides the shared HTTP scaffolding for the framework
// services: the response envelope, error types, routing helpers and the
// JSON response encoder.
//
//nolint:all
package model

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
)

// Response creates an ImplResponse struct with the given status code and body.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{
		Code: code,
		Body: body,
	}
}

// Redirect is a helper payload type that signals the response encoder to send an HTTP redirect.
type Redirect struct {
	Location string
}

// FileDownload is a helper payload type for binary downloads with a custom content type.
type FileDownload struct {
	Content     []byte
	ContentType string
	Filename    string
}

// SetSafeDownloadHeaders sets Content-Type, Content-Disposition and nosniff
// headers for a binary download response.
func SetSafeDownloadHeaders(wHeader http.Header, filename, contentType string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	wHeader.Set("Content-Type", contentType)
	wHeader.Set("X-Content-Type-Options", "nosniff")

	if filename == "" {
		wHeader.Set("Content-Disposition", "attachment")
		return
	}

	safeFilename := filepath.Base(filename)
	contentDisposition := mime.FormatMediaType("attachment", map[string]string{"filename": safeFilename})
	wHeader.Set("Content-Disposition", contentDisposition)
}

// IsZeroValue checks if the val is the zero-ed value.
func IsZeroValue(val interface{}) bool {
	return val == nil || reflect.DeepEqual(val, reflect.Zero(reflect.TypeOf(val)).Interface())
}

// EncodeJSONResponse uses the json encoder to write an interface to the http response with an optional status code
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	wHeader := w.Header()

	// Handle Redirect payloads: set Location header and write status without a body.
	if i != nil {
		switch r := i.(type) {
		case Redirect:
			wHeader.Set("Location", r.Location)
			if status != nil {
				w.WriteHeader(*status)
			} else {
				w.WriteHeader(http.StatusFound)
			}
			return nil
		case *Redirect:
			if r != nil {
				wHeader.Set("Location", r.Location)
				if status != nil {
					w.WriteHeader(*status)
				} else {
					w.WriteHeader(http.StatusFound)
				}
				return nil
			}
		case FileDownload:
			SetSafeDownloadHeaders(wHeader, r.Filename, r.ContentType)
			if status != nil {
				w.WriteHeader(*status)
			} else {
				w.WriteHeader(http.StatusOK)
			}
			// #nosec G705 -- writing binary attachment payload with Content-Disposition attachment and nosniff header
			_, err := w.Write(r.Content)
			return err
		case *FileDownload:
			if r != nil {
				SetSafeDownloadHeaders(wHeader, r.Filename, r.ContentType)
				if status != nil {
					w.WriteHeader(*status)
				} else {
					w.WriteHeader(http.StatusOK)
				}
				// #nosec G705 -- writing binary attachment payload with Content-Disposition attachment and nosniff header
				_, err := w.Write(r.Content)
				return err
			}
		}
	}

	f, ok := i.(*os.File)
	if ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		SetSafeDownloadHeaders(wHeader, f.Name(), "application/octet-stream")
		if status != nil {
			w.WriteHeader(*status)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		// #nosec G705 -- writing binary attachment payload with Content-Disposition attachment and nosniff header
		_, err = w.Write(data)
		return err
	}
	wHeader.Set("Content-Type", "application/json; charset=UTF-8")

	if status != nil {
		w.WriteHeader(*status)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if i != nil {
		return json.NewEncoder(w).Encode(i)
	}

	return nil
}
