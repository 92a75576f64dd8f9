package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"

	"vault-srv/internal/access/repository"
	"vault-srv/internal/model"
	postgresPkg "vault-srv/pkg/postgre"
)

const getGrantQuery = `
	SELECT id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at
	FROM access_controls
	WHERE nominee_id = $1 AND resource_type = $2 AND resource_id = $3`

func (r *implRepository) GetGrant(ctx context.Context, sc model.Scope, opts repository.GrantKey) (model.AccessControl, error) {
	if err := postgresPkg.ValidateUUIDs([]string{opts.NomineeID, opts.ResourceID}); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetGrant.ValidateUUIDs: %v", err)
		return model.AccessControl{}, err
	}

	var grant model.AccessControl
	err := r.db.QueryRowContext(ctx, getGrantQuery, opts.NomineeID, opts.ResourceType, opts.ResourceID).Scan(
		&grant.ID,
		&grant.OwnerID,
		&grant.NomineeID,
		&grant.ResourceType,
		&grant.ResourceID,
		&grant.AccessLevel,
		&grant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AccessControl{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetGrant: %v", err)
		return model.AccessControl{}, err
	}

	return grant, nil
}

const insertGrantQuery = `
	INSERT INTO access_controls (id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at`

func (r *implRepository) Insert(ctx context.Context, sc model.Scope, opts repository.InsertOptions) (model.AccessControl, error) {
	if err := postgresPkg.ValidateUUIDs([]string{opts.OwnerID, opts.NomineeID, opts.ResourceID}); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.Insert.ValidateUUIDs: %v", err)
		return model.AccessControl{}, err
	}

	var grant model.AccessControl
	err := r.db.QueryRowContext(ctx, insertGrantQuery,
		postgresPkg.NewUUID(),
		opts.OwnerID,
		opts.NomineeID,
		opts.ResourceType,
		opts.ResourceID,
		opts.AccessLevel,
		r.clock(),
	).Scan(
		&grant.ID,
		&grant.OwnerID,
		&grant.NomineeID,
		&grant.ResourceType,
		&grant.ResourceID,
		&grant.AccessLevel,
		&grant.CreatedAt,
	)
	if err != nil {
		// Re-granting is idempotent; hand back the existing row.
		if postgresPkg.IsUniqueViolation(err) {
			return r.GetGrant(ctx, sc, repository.GrantKey{
				NomineeID:    opts.NomineeID,
				ResourceType: opts.ResourceType,
				ResourceID:   opts.ResourceID,
			})
		}
		r.l.Errorf(ctx, "internal.access.repository.postgres.Insert: %v", err)
		return model.AccessControl{}, err
	}

	return grant, nil
}

const deleteGrantQuery = `
	DELETE FROM access_controls
	WHERE nominee_id = $1 AND resource_type = $2 AND resource_id = $3`

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, opts repository.GrantKey) error {
	if err := postgresPkg.ValidateUUIDs([]string{opts.NomineeID, opts.ResourceID}); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.Delete.ValidateUUIDs: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, deleteGrantQuery, opts.NomineeID, opts.ResourceType, opts.ResourceID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.Delete: %v", err)
		return err
	}

	return nil
}

const listByNomineeQuery = `
	SELECT id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at
	FROM access_controls
	WHERE nominee_id = $1
	ORDER BY created_at ASC`

func (r *implRepository) ListByNominee(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	if err := postgresPkg.IsUUID(nomineeID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.ListByNominee.IsUUID: %v", err)
		return nil, err
	}

	return r.queryGrants(ctx, listByNomineeQuery, nomineeID)
}

const listByResourceQuery = `
	SELECT id, owner_id, nominee_id, resource_type, resource_id, access_level, created_at
	FROM access_controls
	WHERE resource_type = $1 AND resource_id = $2
	ORDER BY created_at ASC`

func (r *implRepository) ListByResource(ctx context.Context, sc model.Scope, resourceType, resourceID string) ([]model.AccessControl, error) {
	if err := postgresPkg.IsUUID(resourceID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.ListByResource.IsUUID: %v", err)
		return nil, err
	}

	return r.queryGrants(ctx, listByResourceQuery, resourceType, resourceID)
}

func (r *implRepository) queryGrants(ctx context.Context, query string, args ...any) ([]model.AccessControl, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.queryGrants: %v", err)
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
			r.l.Errorf(ctx, "internal.access.repository.postgres.queryGrants.Scan: %v", err)
			return nil, err
		}
		grants = append(grants, grant)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.queryGrants.Rows: %v", err)
		return nil, err
	}

	return grants, nil
}

const listNomineesQuery = `
	SELECT id, user_id, email, full_name, status, created_at, updated_at
	FROM nominees
	WHERE user_id = $1 AND deleted_at IS NULL
	ORDER BY created_at ASC`

func (r *implRepository) ListNominees(ctx context.Context, sc model.Scope, ownerID string) ([]model.Nominee, error) {
	if err := postgresPkg.IsUUID(ownerID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.ListNominees.IsUUID: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listNomineesQuery, ownerID)
	if err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.ListNominees: %v", err)
		return nil, err
	}
	defer rows.Close()

	var nominees []model.Nominee
	for rows.Next() {
		var n model.Nominee
		if err := rows.Scan(&n.ID, &n.UserID, &n.Email, &n.FullName, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "internal.access.repository.postgres.ListNominees.Scan: %v", err)
			return nil, err
		}
		nominees = append(nominees, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.ListNominees.Rows: %v", err)
		return nil, err
	}

	return nominees, nil
}

const getNomineeQuery = `
	SELECT id, user_id, email, full_name, status, created_at, updated_at
	FROM nominees
	WHERE id = $1 AND deleted_at IS NULL`

func (r *implRepository) GetNominee(ctx context.Context, sc model.Scope, nomineeID string) (model.Nominee, error) {
	if err := postgresPkg.IsUUID(nomineeID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetNominee.IsUUID: %v", err)
		return model.Nominee{}, err
	}

	var n model.Nominee
	err := r.db.QueryRowContext(ctx, getNomineeQuery, nomineeID).Scan(
		&n.ID, &n.UserID, &n.Email, &n.FullName, &n.Status, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Nominee{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetNominee: %v", err)
		return model.Nominee{}, err
	}

	return n, nil
}

const getDocumentRefsQuery = `
	SELECT owner_id, category_id, subcategory_id
	FROM documents
	WHERE id = $1 AND deleted_at IS NULL`

func (r *implRepository) GetDocumentRefs(ctx context.Context, sc model.Scope, documentID string) (repository.DocumentRefs, error) {
	if err := postgresPkg.IsUUID(documentID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetDocumentRefs.IsUUID: %v", err)
		return repository.DocumentRefs{}, err
	}

	var (
		refs          repository.DocumentRefs
		subcategoryID null.String
	)
	err := r.db.QueryRowContext(ctx, getDocumentRefsQuery, documentID).Scan(
		&refs.OwnerID,
		&refs.CategoryID,
		&subcategoryID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return repository.DocumentRefs{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetDocumentRefs: %v", err)
		return repository.DocumentRefs{}, err
	}
	refs.SubcategoryID = subcategoryID.Ptr()

	return refs, nil
}

const getSubcategoryParentQuery = `
	SELECT category_id
	FROM subcategories
	WHERE id = $1 AND deleted_at IS NULL`

func (r *implRepository) GetSubcategoryParent(ctx context.Context, sc model.Scope, subcategoryID string) (string, error) {
	if err := postgresPkg.IsUUID(subcategoryID); err != nil {
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetSubcategoryParent.IsUUID: %v", err)
		return "", err
	}

	var categoryID string
	err := r.db.QueryRowContext(ctx, getSubcategoryParentQuery, subcategoryID).Scan(&categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.access.repository.postgres.GetSubcategoryParent: %v", err)
		return "", err
	}

	return categoryID, nil
}
