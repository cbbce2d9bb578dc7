package inbound

import (
	"net/http"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

type GenerateResponse struct {
	UUIDs []string `json:"uuids"`
}

func (GenerateResponse) StatusCode() int {
	return http.StatusCreated
}

func (GenerateResponse) Message() string {
	return "uuids generated"
}

func (r GenerateResponse) Meta() map[string]any {
	return map[string]any{
		"count": len(r.UUIDs),
	}
}

type InspectResponse struct {
	UUID    string        `json:"uuid"`
	Version uint8         `json:"version"`
	Variant uint8         `json:"variant"`
	IsV4    bool          `json:"is_v4"`
	Layout  entity.Layout `json:"layout"`
}

type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type CompareResponse struct {
	Equal bool `json:"equal"`
}
