package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/access"
	"vault-srv/internal/access/repository"
	"vault-srv/internal/model"
	pkgLog "vault-srv/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelFatal,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeRepo struct {
	grants       map[repository.GrantKey]model.AccessControl
	nominees     map[string]model.Nominee
	docRefs      map[string]repository.DocumentRefs
	subcatParent map[string]string
	inserted     []repository.InsertOptions
	deleted      []repository.GrantKey
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		grants:       map[repository.GrantKey]model.AccessControl{},
		nominees:     map[string]model.Nominee{},
		docRefs:      map[string]repository.DocumentRefs{},
		subcatParent: map[string]string{},
	}
}

func (f *fakeRepo) addGrant(nomineeID, resourceType, resourceID, level string) {
	key := repository.GrantKey{NomineeID: nomineeID, ResourceType: resourceType, ResourceID: resourceID}
	f.grants[key] = model.AccessControl{
		ID:           "grant-" + resourceID,
		NomineeID:    nomineeID,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		AccessLevel:  level,
	}
}

func (f *fakeRepo) GetGrant(ctx context.Context, sc model.Scope, opts repository.GrantKey) (model.AccessControl, error) {
	grant, ok := f.grants[opts]
	if !ok {
		return model.AccessControl{}, repository.ErrNotFound
	}
	return grant, nil
}

func (f *fakeRepo) Insert(ctx context.Context, sc model.Scope, opts repository.InsertOptions) (model.AccessControl, error) {
	f.inserted = append(f.inserted, opts)
	key := repository.GrantKey{NomineeID: opts.NomineeID, ResourceType: opts.ResourceType, ResourceID: opts.ResourceID}
	if existing, ok := f.grants[key]; ok {
		return existing, nil
	}
	grant := model.AccessControl{
		ID:           "grant-new",
		OwnerID:      opts.OwnerID,
		NomineeID:    opts.NomineeID,
		ResourceType: opts.ResourceType,
		ResourceID:   opts.ResourceID,
		AccessLevel:  opts.AccessLevel,
	}
	f.grants[key] = grant
	return grant, nil
}

func (f *fakeRepo) Delete(ctx context.Context, sc model.Scope, opts repository.GrantKey) error {
	f.deleted = append(f.deleted, opts)
	delete(f.grants, opts)
	return nil
}

func (f *fakeRepo) ListByNominee(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	var out []model.AccessControl
	for _, g := range f.grants {
		if g.NomineeID == nomineeID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByResource(ctx context.Context, sc model.Scope, resourceType, resourceID string) ([]model.AccessControl, error) {
	var out []model.AccessControl
	for _, g := range f.grants {
		if g.ResourceType == resourceType && g.ResourceID == resourceID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListNominees(ctx context.Context, sc model.Scope, ownerID string) ([]model.Nominee, error) {
	var out []model.Nominee
	for _, n := range f.nominees {
		if n.UserID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetNominee(ctx context.Context, sc model.Scope, nomineeID string) (model.Nominee, error) {
	n, ok := f.nominees[nomineeID]
	if !ok {
		return model.Nominee{}, repository.ErrNotFound
	}
	return n, nil
}

func (f *fakeRepo) GetDocumentRefs(ctx context.Context, sc model.Scope, documentID string) (repository.DocumentRefs, error) {
	refs, ok := f.docRefs[documentID]
	if !ok {
		return repository.DocumentRefs{}, repository.ErrNotFound
	}
	return refs, nil
}

func (f *fakeRepo) GetSubcategoryParent(ctx context.Context, sc model.Scope, subcategoryID string) (string, error) {
	parent, ok := f.subcatParent[subcategoryID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return parent, nil
}

func TestHasAccess(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("direct document grant wins", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addGrant("n1", model.ResourceTypeDocument, "doc1", model.AccessLevelDownload)
		uc := New(testLogger(), repo)

		out, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeDocument, ResourceID: "doc1"})
		require.NoError(t, err)
		assert.True(t, out.Granted)
		assert.Equal(t, model.AccessLevelDownload, out.Grant.AccessLevel)
	})

	t.Run("document inherits from category", func(t *testing.T) {
		repo := newFakeRepo()
		repo.docRefs["doc1"] = repository.DocumentRefs{OwnerID: "u1", CategoryID: "cat1"}
		repo.addGrant("n1", model.ResourceTypeCategory, "cat1", model.AccessLevelView)
		uc := New(testLogger(), repo)

		out, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeDocument, ResourceID: "doc1"})
		require.NoError(t, err)
		assert.True(t, out.Granted)
		assert.Equal(t, model.ResourceTypeCategory, out.Grant.ResourceType)
	})

	t.Run("document inherits from subcategory", func(t *testing.T) {
		repo := newFakeRepo()
		subcat := "sub1"
		repo.docRefs["doc1"] = repository.DocumentRefs{OwnerID: "u1", CategoryID: "cat1", SubcategoryID: &subcat}
		repo.addGrant("n1", model.ResourceTypeSubcategory, "sub1", model.AccessLevelDownload)
		uc := New(testLogger(), repo)

		out, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeDocument, ResourceID: "doc1"})
		require.NoError(t, err)
		assert.True(t, out.Granted)
		assert.Equal(t, model.ResourceTypeSubcategory, out.Grant.ResourceType)
	})

	t.Run("subcategory inherits from parent category", func(t *testing.T) {
		repo := newFakeRepo()
		repo.subcatParent["sub1"] = "cat1"
		repo.addGrant("n1", model.ResourceTypeCategory, "cat1", model.AccessLevelView)
		uc := New(testLogger(), repo)

		out, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeSubcategory, ResourceID: "sub1"})
		require.NoError(t, err)
		assert.True(t, out.Granted)
	})

	t.Run("no grant anywhere", func(t *testing.T) {
		repo := newFakeRepo()
		repo.docRefs["doc1"] = repository.DocumentRefs{OwnerID: "u1", CategoryID: "cat1"}
		uc := New(testLogger(), repo)

		out, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeDocument, ResourceID: "doc1"})
		require.NoError(t, err)
		assert.False(t, out.Granted)
	})

	t.Run("unknown document", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(testLogger(), repo)

		_, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: model.ResourceTypeDocument, ResourceID: "doc1"})
		assert.ErrorIs(t, err, access.ErrResourceNotFound)
	})

	t.Run("invalid resource type", func(t *testing.T) {
		uc := New(testLogger(), newFakeRepo())

		_, err := uc.HasAccess(ctx, sc, access.HasAccessInput{NomineeID: "n1", ResourceType: "folder", ResourceID: "x"})
		assert.ErrorIs(t, err, access.ErrInvalidResourceType)
	})
}

func TestGrantAccess(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{UserID: "u1"}

	t.Run("defaults to view level", func(t *testing.T) {
		repo := newFakeRepo()
		repo.nominees["n1"] = model.Nominee{ID: "n1", UserID: "u1"}
		uc := New(testLogger(), repo)

		grant, err := uc.GrantAccess(ctx, owner, access.GrantInput{NomineeID: "n1", ResourceType: model.ResourceTypeCategory, ResourceID: "cat1"})
		require.NoError(t, err)
		assert.Equal(t, model.AccessLevelView, grant.AccessLevel)
	})

	t.Run("regrant returns existing row", func(t *testing.T) {
		repo := newFakeRepo()
		repo.nominees["n1"] = model.Nominee{ID: "n1", UserID: "u1"}
		repo.addGrant("n1", model.ResourceTypeCategory, "cat1", model.AccessLevelDownload)
		uc := New(testLogger(), repo)

		grant, err := uc.GrantAccess(ctx, owner, access.GrantInput{NomineeID: "n1", ResourceType: model.ResourceTypeCategory, ResourceID: "cat1", AccessLevel: model.AccessLevelDownload})
		require.NoError(t, err)
		assert.Equal(t, "grant-cat1", grant.ID)
	})

	t.Run("rejects another owner's nominee", func(t *testing.T) {
		repo := newFakeRepo()
		repo.nominees["n1"] = model.Nominee{ID: "n1", UserID: "someone-else"}
		uc := New(testLogger(), repo)

		_, err := uc.GrantAccess(ctx, owner, access.GrantInput{NomineeID: "n1", ResourceType: model.ResourceTypeCategory, ResourceID: "cat1"})
		assert.ErrorIs(t, err, access.ErrNomineeNotFound)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		repo := newFakeRepo()
		repo.nominees["n1"] = model.Nominee{ID: "n1", UserID: "u1"}
		uc := New(testLogger(), repo)

		_, err := uc.GrantAccess(ctx, owner, access.GrantInput{NomineeID: "n1", ResourceType: model.ResourceTypeCategory, ResourceID: "cat1", AccessLevel: "admin"})
		assert.ErrorIs(t, err, access.ErrInvalidAccessLevel)
	})
}

func TestRevokeAccess_AbsentGrantIsNoop(t *testing.T) {
	repo := newFakeRepo()
	uc := New(testLogger(), repo)

	err := uc.RevokeAccess(context.Background(), model.Scope{UserID: "u1"}, access.RevokeInput{
		NomineeID:    "n1",
		ResourceType: model.ResourceTypeDocument,
		ResourceID:   "doc1",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.deleted, 1)
}

func TestGetAccessSummary(t *testing.T) {
	repo := newFakeRepo()
	repo.nominees["n1"] = model.Nominee{ID: "n1", UserID: "u1", Email: "n1@example.com", FullName: "Nominee One"}
	repo.nominees["n2"] = model.Nominee{ID: "n2", UserID: "u1", Email: "n2@example.com", FullName: "Nominee Two"}
	repo.addGrant("n1", model.ResourceTypeDocument, "doc1", model.AccessLevelDownload)
	// Category-level grant for n2 must not count: the summary is direct only.
	repo.addGrant("n2", model.ResourceTypeCategory, "cat1", model.AccessLevelView)
	uc := New(testLogger(), repo)

	out, err := uc.GetAccessSummary(context.Background(), model.Scope{UserID: "u1"}, access.SummaryInput{
		ResourceType: model.ResourceTypeDocument,
		ResourceID:   "doc1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalNominees)
	assert.Equal(t, 1, out.NomineesWithAccess)

	byID := map[string]access.NomineeAccess{}
	for _, d := range out.Details {
		byID[d.NomineeID] = d
	}
	assert.True(t, byID["n1"].HasAccess)
	assert.Equal(t, model.AccessLevelDownload, byID["n1"].AccessLevel)
	assert.False(t, byID["n2"].HasAccess)
}
