//go:build unit

package common

import (
	"net/http"
	"testing"
)

func TestNewPagedResponse(t *testing.T) {
	resp := NewPagedResponse([]string{"a", "b"}, "urn:x-test:next")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	paged, ok := resp.Body.(PagedResult)
	if !ok {
		t.Fatalf("expected PagedResult body, got %T", resp.Body)
	}
	if paged.PagingMetadata.Cursor != EncodeString("urn:x-test:next") {
		t.Errorf("cursor not base64url-encoded: %q", paged.PagingMetadata.Cursor)
	}

	last := NewPagedResponse([]string{"c"}, "")
	if last.Body.(PagedResult).PagingMetadata.Cursor != "" {
		t.Error("expected empty cursor on the last page")
	}
}
