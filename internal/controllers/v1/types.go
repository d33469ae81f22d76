package v1

import (
	ez_uuid "github.com/backoffice-dms/allocations/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIAllocation struct {
	URIID
	Index int `uri:"index" binding:"min=0" minimum:"0"` // Position of the allocation in the session, starting at 0
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of items in the current response
	Total  int64 `json:"total" example:"827"` // The total amount of items for this query
	Offset uint  `json:"offset" example:"0"`  // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources returned for this request
}
