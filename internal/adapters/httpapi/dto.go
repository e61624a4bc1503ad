package httpapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
)

// Name is the wire shape of a single parsed name.
type Name struct {
	FirstName   string `json:"firstName"`
	MiddleNames string `json:"middleNames"`
	LastName    string `json:"lastName"`
	FullName    string `json:"fullName"`
}

// NameList is the wire shape of a stored, sorted name list.
type NameList struct {
	Id        openapi_types.UUID        `json:"id"`
	Label     nullable.Nullable[string] `json:"label"`
	Names     []Name                    `json:"names"`
	CreatedAt time.Time                 `json:"createdAt"`
}

type CreateNameListRequest struct {
	Names []string                  `json:"names"`
	Label nullable.Nullable[string] `json:"label,omitempty"`
}

type NameListResponse struct {
	NameList NameList `json:"nameList"`
}

type NameListsResponse struct {
	NameLists []NameList `json:"nameLists"`
}

type ErrorResponse struct {
	Error struct {
		Code      string                            `json:"code"`
		Message   string                            `json:"message"`
		Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
		RequestId nullable.Nullable[string]         `json:"requestId,omitempty"`
	} `json:"error"`
}

func nameFromDomain(n domain.Name) Name {
	return Name{
		FirstName:   n.FirstName,
		MiddleNames: n.MiddleNames,
		LastName:    n.LastName,
		FullName:    n.String(),
	}
}

func nameListFromDomain(nl domain.NameList) (NameList, error) {
	id, err := uuid.Parse(string(nl.ID))
	if err != nil {
		return NameList{}, fmt.Errorf("name list %q has a non-uuid id: %w", nl.ID, err)
	}

	out := NameList{
		Id:        id,
		Names:     make([]Name, 0, len(nl.Names)),
		CreatedAt: nl.CreatedAt.UTC(),
	}
	if nl.Label != nil {
		out.Label = nullable.NewNullableWithValue(*nl.Label)
	} else {
		out.Label = nullable.NewNullNullable[string]()
	}
	for _, n := range nl.Names {
		out.Names = append(out.Names, nameFromDomain(n))
	}
	return out, nil
}
