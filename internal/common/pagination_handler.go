//nolint:revive
package common

import (
	"net/http"

	"github.com/rwth-iat/basyx-go-framework/internal/common/model"
)

// PagedResult is the Part 2 paged response envelope. The cursor inside the
// paging metadata points at the next page and is base64url-encoded on the
// wire; an empty cursor means the listing is exhausted.
type PagedResult struct {
	PagingMetadata model.PagedResultPagingMetadata `json:"paging_metadata"`
	Result         any                             `json:"result"`
}

// NewPagedResponse wraps one page of results into a 200 response, encoding
// the next cursor for the wire.
func NewPagedResponse(result any, nextCursor string) model.ImplResponse {
	meta := model.PagedResultPagingMetadata{}
	if nextCursor != "" {
		meta.Cursor = EncodeString(nextCursor)
	}
	return model.Response(http.StatusOK, PagedResult{PagingMetadata: meta, Result: result})
}
