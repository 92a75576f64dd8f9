package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"

	"vault-srv/internal/model"
	"vault-srv/internal/portal/repository"
	postgresPkg "vault-srv/pkg/postgre"
)

const getNomineeByEmailQuery = `
	SELECT id, user_id, email, full_name, status, created_at, updated_at
	FROM nominees
	WHERE email = $1 AND status = $2 AND deleted_at IS NULL
	ORDER BY created_at DESC
	LIMIT 1`

func (r *implRepository) GetNomineeByEmail(ctx context.Context, sc model.Scope, email string) (model.Nominee, error) {
	var nominee model.Nominee
	err := r.db.QueryRowContext(ctx, getNomineeByEmailQuery, email, model.NomineeStatusVerified).Scan(
		&nominee.ID,
		&nominee.UserID,
		&nominee.Email,
		&nominee.FullName,
		&nominee.Status,
		&nominee.CreatedAt,
		&nominee.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Nominee{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.portal.repository.postgres.GetNomineeByEmail: %v", err)
		return model.Nominee{}, err
	}

	return nominee, nil
}

const emergencyGrantedQuery = `
	SELECT emergency_access_granted
	FROM inactivity_triggers
	WHERE user_id = $1 AND is_active = TRUE`

func (r *implRepository) EmergencyGranted(ctx context.Context, sc model.Scope, ownerID string) (bool, error) {
	if err := postgresPkg.IsUUID(ownerID); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.EmergencyGranted.IsUUID: %v", err)
		return false, err
	}

	var granted bool
	err := r.db.QueryRowContext(ctx, emergencyGrantedQuery, ownerID).Scan(&granted)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.portal.repository.postgres.EmergencyGranted: %v", err)
		return false, err
	}

	return granted, nil
}

const listDocumentGrantsQuery = `
	SELECT id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at
	FROM access_controls
	WHERE nominee_id = $1 AND resource_type = $2`

func (r *implRepository) ListDocumentGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	if err := postgresPkg.IsUUID(nomineeID); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentGrants.IsUUID: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listDocumentGrantsQuery, nomineeID, model.ResourceTypeDocument)
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentGrants: %v", err)
		return nil, err
	}
	defer rows.Close()

	var grants []model.AccessControl
	for rows.Next() {
		var grant model.AccessControl
		if err := rows.Scan(
			&grant.ID,
			&grant.OwnerID,
			&grant.NomineeID,
			&grant.ResourceType,
			&grant.ResourceID,
			&grant.AccessLevel,
			&grant.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentGrants.Scan: %v", err)
			return nil, err
		}
		grants = append(grants, grant)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentGrants.Rows: %v", err)
		return nil, err
	}

	return grants, nil
}

const listDocumentsByIDsQuery = `
	SELECT id, owner_id, category_id, subcategory_id, title, file_name, file_path, mime_type, size_bytes, created_at, updated_at
	FROM documents
	WHERE id = ANY($1) AND deleted_at IS NULL
	ORDER BY created_at DESC`

func (r *implRepository) ListDocumentsByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := postgresPkg.ValidateUUIDs(ids); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentsByIDs.ValidateUUIDs: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listDocumentsByIDsQuery, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentsByIDs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentsByIDs.Scan: %v", err)
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListDocumentsByIDs.Rows: %v", err)
		return nil, err
	}

	return docs, nil
}

const getDocumentQuery = `
	SELECT id, owner_id, category_id, subcategory_id, title, file_name, file_path, mime_type, size_bytes, created_at, updated_at
	FROM documents
	WHERE id = $1 AND deleted_at IS NULL`

func (r *implRepository) GetDocument(ctx context.Context, sc model.Scope, id string) (model.Document, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.GetDocument.IsUUID: %v", err)
		return model.Document{}, err
	}

	doc, err := scanDocument(r.db.QueryRowContext(ctx, getDocumentQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Document{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.portal.repository.postgres.GetDocument: %v", err)
		return model.Document{}, err
	}

	return doc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (model.Document, error) {
	var (
		doc           model.Document
		subcategoryID null.String
	)
	err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.CategoryID,
		&subcategoryID,
		&doc.Title,
		&doc.FileName,
		&doc.FilePath,
		&doc.MimeType,
		&doc.SizeBytes,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return model.Document{}, err
	}
	doc.SubcategoryID = subcategoryID.Ptr()
	return doc, nil
}
