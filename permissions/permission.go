package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes one endpoint: the roles allowed to call it, or
// Skip for endpoints open to unauthenticated callers. An empty Permissions
// list means any authenticated role.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up the entry for a route pattern and method. An
// unlisted endpoint comes back as the zero Permission, which the auth
// middleware treats as authenticated-only.
func (p *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(p.Endpoints, func(endpoint Permission) bool {
		return endpoint.Path == path && endpoint.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return p.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("loaded endpoint permissions")

	return &permissions
}
