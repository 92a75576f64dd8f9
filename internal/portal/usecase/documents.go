package usecase

import (
	"context"

	"vault-srv/internal/access"
	"vault-srv/internal/model"
	"vault-srv/internal/portal"
	"vault-srv/internal/portal/repository"
)

// ViewDocument re-resolves access at retrieval time, so a grant revoked
// after the session opened immediately stops working.
func (uc *usecase) ViewDocument(ctx context.Context, sc model.Scope, documentID string) (portal.DocumentLinkOutput, error) {
	doc, _, err := uc.authorizeDocument(ctx, sc, documentID)
	if err != nil {
		return portal.DocumentLinkOutput{}, err
	}

	url, err := uc.storage.SignedViewURL(ctx, doc.FilePath, uc.cfg.SignedURLTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.ViewDocument.SignedViewURL: %v", err)
		return portal.DocumentLinkOutput{}, err
	}

	return portal.DocumentLinkOutput{
		URL:       url,
		ExpiresAt: uc.clock().Add(uc.cfg.SignedURLTTL),
	}, nil
}

// DownloadDocument is ViewDocument plus the grant level check. Inherited
// grants count the same as direct ones here.
func (uc *usecase) DownloadDocument(ctx context.Context, sc model.Scope, documentID string) (portal.DocumentLinkOutput, error) {
	doc, grant, err := uc.authorizeDocument(ctx, sc, documentID)
	if err != nil {
		return portal.DocumentLinkOutput{}, err
	}
	if !grant.CanDownload() {
		return portal.DocumentLinkOutput{}, portal.ErrDownloadNotAllowed
	}

	url, err := uc.storage.SignedDownloadURL(ctx, doc.FilePath, doc.FileName, uc.cfg.SignedURLTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.DownloadDocument.SignedDownloadURL: %v", err)
		return portal.DocumentLinkOutput{}, err
	}

	return portal.DocumentLinkOutput{
		URL:       url,
		ExpiresAt: uc.clock().Add(uc.cfg.SignedURLTTL),
	}, nil
}

func (uc *usecase) authorizeDocument(ctx context.Context, sc model.Scope, documentID string) (model.Document, model.AccessControl, error) {
	doc, err := uc.repo.GetDocument(ctx, sc, documentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Document{}, model.AccessControl{}, portal.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "internal.portal.usecase.authorizeDocument.GetDocument: %v", err)
		return model.Document{}, model.AccessControl{}, err
	}

	resolved, err := uc.accessUC.HasAccess(ctx, sc, access.HasAccessInput{
		NomineeID:    sc.UserID,
		ResourceType: model.ResourceTypeDocument,
		ResourceID:   documentID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.authorizeDocument.HasAccess: %v", err)
		return model.Document{}, model.AccessControl{}, err
	}
	if !resolved.Granted {
		return model.Document{}, model.AccessControl{}, portal.ErrAccessDenied
	}

	return doc, resolved.Grant, nil
}
