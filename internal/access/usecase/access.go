package usecase

import (
	"context"

	"vault-srv/internal/access"
	"vault-srv/internal/access/repository"
	"vault-srv/internal/model"
)

func validResourceType(t string) bool {
	switch t {
	case model.ResourceTypeCategory, model.ResourceTypeSubcategory, model.ResourceTypeDocument:
		return true
	}
	return false
}

func (uc *usecase) HasAccess(ctx context.Context, sc model.Scope, ip access.HasAccessInput) (access.HasAccessOutput, error) {
	if !validResourceType(ip.ResourceType) {
		return access.HasAccessOutput{}, access.ErrInvalidResourceType
	}

	// Direct grant wins.
	grant, err := uc.repo.GetGrant(ctx, sc, repository.GrantKey{
		NomineeID:    ip.NomineeID,
		ResourceType: ip.ResourceType,
		ResourceID:   ip.ResourceID,
	})
	if err == nil {
		return access.HasAccessOutput{Granted: true, Grant: grant}, nil
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.access.usecase.HasAccess: %v", err)
		return access.HasAccessOutput{}, err
	}

	switch ip.ResourceType {
	case model.ResourceTypeDocument:
		return uc.resolveDocumentAccess(ctx, sc, ip)
	case model.ResourceTypeSubcategory:
		return uc.resolveSubcategoryAccess(ctx, sc, ip)
	}

	return access.HasAccessOutput{}, nil
}

// resolveDocumentAccess walks the document's ancestry: a grant on the
// parent category or subcategory also admits the document.
func (uc *usecase) resolveDocumentAccess(ctx context.Context, sc model.Scope, ip access.HasAccessInput) (access.HasAccessOutput, error) {
	refs, err := uc.repo.GetDocumentRefs(ctx, sc, ip.ResourceID)
	if err != nil {
		if err == repository.ErrNotFound {
			return access.HasAccessOutput{}, access.ErrResourceNotFound
		}
		uc.l.Errorf(ctx, "internal.access.usecase.resolveDocumentAccess: %v", err)
		return access.HasAccessOutput{}, err
	}

	grant, err := uc.repo.GetGrant(ctx, sc, repository.GrantKey{
		NomineeID:    ip.NomineeID,
		ResourceType: model.ResourceTypeCategory,
		ResourceID:   refs.CategoryID,
	})
	if err == nil {
		return access.HasAccessOutput{Granted: true, Grant: grant}, nil
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.access.usecase.resolveDocumentAccess.Category: %v", err)
		return access.HasAccessOutput{}, err
	}

	if refs.SubcategoryID != nil {
		grant, err = uc.repo.GetGrant(ctx, sc, repository.GrantKey{
			NomineeID:    ip.NomineeID,
			ResourceType: model.ResourceTypeSubcategory,
			ResourceID:   *refs.SubcategoryID,
		})
		if err == nil {
			return access.HasAccessOutput{Granted: true, Grant: grant}, nil
		}
		if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.access.usecase.resolveDocumentAccess.Subcategory: %v", err)
			return access.HasAccessOutput{}, err
		}
	}

	return access.HasAccessOutput{}, nil
}

// resolveSubcategoryAccess admits a subcategory when its parent category is
// granted.
func (uc *usecase) resolveSubcategoryAccess(ctx context.Context, sc model.Scope, ip access.HasAccessInput) (access.HasAccessOutput, error) {
	categoryID, err := uc.repo.GetSubcategoryParent(ctx, sc, ip.ResourceID)
	if err != nil {
		if err == repository.ErrNotFound {
			return access.HasAccessOutput{}, access.ErrResourceNotFound
		}
		uc.l.Errorf(ctx, "internal.access.usecase.resolveSubcategoryAccess: %v", err)
		return access.HasAccessOutput{}, err
	}

	grant, err := uc.repo.GetGrant(ctx, sc, repository.GrantKey{
		NomineeID:    ip.NomineeID,
		ResourceType: model.ResourceTypeCategory,
		ResourceID:   categoryID,
	})
	if err == nil {
		return access.HasAccessOutput{Granted: true, Grant: grant}, nil
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.access.usecase.resolveSubcategoryAccess.GetGrant: %v", err)
		return access.HasAccessOutput{}, err
	}

	return access.HasAccessOutput{}, nil
}

func (uc *usecase) GrantAccess(ctx context.Context, sc model.Scope, ip access.GrantInput) (model.AccessControl, error) {
	if !validResourceType(ip.ResourceType) {
		return model.AccessControl{}, access.ErrInvalidResourceType
	}

	level := ip.AccessLevel
	if level == "" {
		level = model.AccessLevelView
	}
	if level != model.AccessLevelView && level != model.AccessLevelDownload {
		return model.AccessControl{}, access.ErrInvalidAccessLevel
	}

	// The nominee must belong to the calling owner.
	nominee, err := uc.repo.GetNominee(ctx, sc, ip.NomineeID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AccessControl{}, access.ErrNomineeNotFound
		}
		uc.l.Errorf(ctx, "internal.access.usecase.GrantAccess: %v", err)
		return model.AccessControl{}, err
	}
	if nominee.UserID != sc.UserID {
		return model.AccessControl{}, access.ErrNomineeNotFound
	}

	grant, err := uc.repo.Insert(ctx, sc, repository.InsertOptions{
		OwnerID:      sc.UserID,
		NomineeID:    ip.NomineeID,
		ResourceType: ip.ResourceType,
		ResourceID:   ip.ResourceID,
		AccessLevel:  level,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.access.usecase.GrantAccess.Insert: %v", err)
		return model.AccessControl{}, err
	}

	return grant, nil
}

func (uc *usecase) RevokeAccess(ctx context.Context, sc model.Scope, ip access.RevokeInput) error {
	if !validResourceType(ip.ResourceType) {
		return access.ErrInvalidResourceType
	}

	if err := uc.repo.Delete(ctx, sc, repository.GrantKey{
		NomineeID:    ip.NomineeID,
		ResourceType: ip.ResourceType,
		ResourceID:   ip.ResourceID,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.access.usecase.RevokeAccess: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) GetAccessSummary(ctx context.Context, sc model.Scope, ip access.SummaryInput) (access.SummaryOutput, error) {
	if !validResourceType(ip.ResourceType) {
		return access.SummaryOutput{}, access.ErrInvalidResourceType
	}

	nominees, err := uc.repo.ListNominees(ctx, sc, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.access.usecase.GetAccessSummary: %v", err)
		return access.SummaryOutput{}, err
	}

	grants, err := uc.repo.ListByResource(ctx, sc, ip.ResourceType, ip.ResourceID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.access.usecase.GetAccessSummary.ListByResource: %v", err)
		return access.SummaryOutput{}, err
	}

	granted := make(map[string]string, len(grants))
	for _, g := range grants {
		granted[g.NomineeID] = g.AccessLevel
	}

	out := access.SummaryOutput{TotalNominees: len(nominees)}
	for _, n := range nominees {
		level, has := granted[n.ID]
		if has {
			out.NomineesWithAccess++
		}
		out.Details = append(out.Details, access.NomineeAccess{
			NomineeID:   n.ID,
			Name:        n.FullName,
			Email:       n.Email,
			HasAccess:   has,
			AccessLevel: level,
		})
	}

	return out, nil
}

func (uc *usecase) ListNomineeGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	grants, err := uc.repo.ListByNominee(ctx, sc, nomineeID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.access.usecase.ListNomineeGrants: %v", err)
		return nil, err
	}
	return grants, nil
}
