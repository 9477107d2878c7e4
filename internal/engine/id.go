package engine

import "github.com/rs/xid"

// generateID creates a sortable, globally unique job ID.
func generateID() string {
	return xid.New().String()
}
