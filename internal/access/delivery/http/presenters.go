package http

import (
	"vault-srv/internal/access"
	"vault-srv/internal/model"
)

type grantReq struct {
	NomineeID    string `json:"nominee_id" binding:"required"`
	ResourceType string `json:"resource_type" binding:"required"`
	ResourceID   string `json:"resource_id" binding:"required"`
	AccessLevel  string `json:"access_level"`
}

func (r grantReq) toInput() access.GrantInput {
	return access.GrantInput{
		NomineeID:    r.NomineeID,
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
		AccessLevel:  r.AccessLevel,
	}
}

type revokeReq struct {
	NomineeID    string `json:"nominee_id" binding:"required"`
	ResourceType string `json:"resource_type" binding:"required"`
	ResourceID   string `json:"resource_id" binding:"required"`
}

func (r revokeReq) toInput() access.RevokeInput {
	return access.RevokeInput{
		NomineeID:    r.NomineeID,
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
	}
}

type summaryReq struct {
	ResourceType string `form:"resource_type" binding:"required"`
	ResourceID   string `form:"resource_id" binding:"required"`
}

func (r summaryReq) toInput() access.SummaryInput {
	return access.SummaryInput{
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
	}
}

type grantItem struct {
	ID           string `json:"id"`
	NomineeID    string `json:"nominee_id"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	AccessLevel  string `json:"access_level"`
}

func newGrantItem(g model.AccessControl) grantItem {
	return grantItem{
		ID:           g.ID,
		NomineeID:    g.NomineeID,
		ResourceType: g.ResourceType,
		ResourceID:   g.ResourceID,
		AccessLevel:  g.AccessLevel,
	}
}

type nomineeAccessItem struct {
	NomineeID   string `json:"nominee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	HasAccess   bool   `json:"has_access"`
	AccessLevel string `json:"access_level,omitempty"`
}

type summaryResp struct {
	TotalNominees      int                 `json:"total_nominees"`
	NomineesWithAccess int                 `json:"nominees_with_access"`
	AccessDetails      []nomineeAccessItem `json:"access_details"`
}

func newSummaryResp(o access.SummaryOutput) summaryResp {
	details := make([]nomineeAccessItem, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, nomineeAccessItem{
			NomineeID:   d.NomineeID,
			Name:        d.Name,
			Email:       d.Email,
			HasAccess:   d.HasAccess,
			AccessLevel: d.AccessLevel,
		})
	}
	return summaryResp{
		TotalNominees:      o.TotalNominees,
		NomineesWithAccess: o.NomineesWithAccess,
		AccessDetails:      details,
	}
}
