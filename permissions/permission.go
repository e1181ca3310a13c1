// Package permissions holds the role table for the admin surface, keyed by chi route pattern.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Permission lists the roles allowed on one route pattern. Skip disables both session and role checks.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

// FindPermissions matches a chi route pattern. "/rooms" and "/rooms/" are the same route.
// A zero Permission means the route is not listed.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	key := routeKey(path, method)

	if r.index != nil {
		if idx, ok := r.index[key]; ok {
			return r.Endpoints[idx]
		}

		return Permission{}
	}

	for _, endpoint := range r.Endpoints {
		if routeKey(endpoint.Path, endpoint.Method) == key {
			return endpoint
		}
	}

	return Permission{}
}

// Parse decodes a permissions table and rejects duplicate or role-less entries.
func Parse(raw []byte) (*PermissionData, error) {
	data := PermissionData{}

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	data.index = make(map[string]int, len(data.Endpoints))

	for idx, endpoint := range data.Endpoints {
		method := strings.ToUpper(endpoint.Method)
		if _, ok := knownMethods[method]; !ok {
			return nil, fmt.Errorf("permissions: %s: unknown method %q", endpoint.Path, endpoint.Method)
		}

		if !endpoint.Skip && len(endpoint.Permissions) == 0 {
			return nil, fmt.Errorf("permissions: %s %s: no roles", method, endpoint.Path)
		}

		key := routeKey(endpoint.Path, method)
		if _, ok := data.index[key]; ok {
			return nil, fmt.Errorf("permissions: %s %s: listed twice", method, endpoint.Path)
		}

		data.index[key] = idx
	}

	return &data, nil
}

// Get loads the embedded table. A table that fails to load leaves RBAC denying every admin route.
func Get() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("loaded embedded permissions")

	return data
}

func routeKey(path, method string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}
