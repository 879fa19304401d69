package http

import (
	"time"

	"taskscribe/internal/integration"
)

// --- Response DTOs ---

type connectResp struct {
	URL string `json:"url"`
}

type platformStatusResp struct {
	Platform  string     `json:"platform"`
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type statusResp struct {
	Platforms []platformStatusResp `json:"platforms"`
}

func (h *handler) newStatusResp(out integration.StatusOutput) statusResp {
	platforms := make([]platformStatusResp, len(out.Platforms))
	for i, st := range out.Platforms {
		platforms[i] = platformStatusResp{
			Platform:  string(st.Platform),
			Connected: st.Connected,
		}
		if st.Connected && !st.ExpiresAt.IsZero() {
			expires := st.ExpiresAt
			platforms[i].ExpiresAt = &expires
		}
	}
	return statusResp{Platforms: platforms}
}

type callbackResp struct {
	Platform  string `json:"platform"`
	Connected bool   `json:"connected"`
}
