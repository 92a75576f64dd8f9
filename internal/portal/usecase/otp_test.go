package usecase

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/access"
	"vault-srv/internal/model"
	"vault-srv/internal/portal"
	"vault-srv/internal/portal/repository"
	"vault-srv/pkg/encrypter"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
	"vault-srv/pkg/scope"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelFatal,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeRepo struct {
	nominee        model.Nominee
	nomineeMissing bool
	granted        bool
	triggerMissing bool

	inserted  []repository.InsertOTPOptions
	otps      []model.OTPVerification
	consumed  []string
	consumeOK bool

	grants map[string]model.AccessControl
	docs   map[string]model.Document
}

func newPortalRepo() *fakeRepo {
	return &fakeRepo{
		nominee: model.Nominee{
			ID:       "c1d2e3f4-a5b6-4c33-9e0f-2f4f6c1f9d01",
			UserID:   "d2e3f4a5-b6c7-4c33-9e0f-2f4f6c1f9d02",
			Email:    "nominee@example.com",
			FullName: "Nominee One",
			Status:   model.NomineeStatusVerified,
		},
		granted:   true,
		consumeOK: true,
		grants:    map[string]model.AccessControl{},
		docs:      map[string]model.Document{},
	}
}

func (f *fakeRepo) GetNomineeByEmail(ctx context.Context, sc model.Scope, email string) (model.Nominee, error) {
	if f.nomineeMissing || email != f.nominee.Email {
		return model.Nominee{}, repository.ErrNotFound
	}
	return f.nominee, nil
}

func (f *fakeRepo) EmergencyGranted(ctx context.Context, sc model.Scope, ownerID string) (bool, error) {
	if f.triggerMissing {
		return false, repository.ErrNotFound
	}
	return f.granted, nil
}

func (f *fakeRepo) InsertOTP(ctx context.Context, sc model.Scope, opts repository.InsertOTPOptions) (model.OTPVerification, error) {
	f.inserted = append(f.inserted, opts)
	otp := model.OTPVerification{
		ID:        fmt.Sprintf("e3f4a5b6-c7d8-4c33-9e0f-2f4f6c1f9d%02d", len(f.inserted)),
		NomineeID: opts.NomineeID,
		Email:     opts.Email,
		CodeHash:  opts.CodeHash,
		ExpiresAt: opts.ExpiresAt,
	}
	f.otps = append(f.otps, otp)
	return otp, nil
}

func (f *fakeRepo) ListActiveOTPs(ctx context.Context, sc model.Scope, email string) ([]model.OTPVerification, error) {
	// Newest first, like the real query.
	out := make([]model.OTPVerification, 0, len(f.otps))
	for i := len(f.otps) - 1; i >= 0; i-- {
		out = append(out, f.otps[i])
	}
	return out, nil
}

func (f *fakeRepo) ConsumeOTP(ctx context.Context, sc model.Scope, id string) (bool, error) {
	f.consumed = append(f.consumed, id)
	return f.consumeOK, nil
}

func (f *fakeRepo) ListDocumentGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	var out []model.AccessControl
	for _, g := range f.grants {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) ListDocumentsByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Document, error) {
	var out []model.Document
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetDocument(ctx context.Context, sc model.Scope, id string) (model.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return model.Document{}, repository.ErrNotFound
	}
	return doc, nil
}

type fakeMailer struct {
	sent    []mailer.SendInput
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, input mailer.SendInput) (*mailer.Receipt, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, input)
	return &mailer.Receipt{ID: "receipt-1"}, nil
}

type fakeRedis struct {
	counts map[string]int64
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error    { return nil }
func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}
func (f *fakeRedis) Incr(ctx context.Context, key string) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}
func (f *fakeRedis) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }
func (f *fakeRedis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, nil
}
func (f *fakeRedis) Close() error                   { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error { return nil }
func (f *fakeRedis) GetClient() *goredis.Client     { return nil }

type fakeAccess struct {
	grants map[string]model.AccessControl
}

func (f *fakeAccess) HasAccess(ctx context.Context, sc model.Scope, ip access.HasAccessInput) (access.HasAccessOutput, error) {
	grant, ok := f.grants[ip.ResourceID]
	if !ok {
		return access.HasAccessOutput{}, nil
	}
	return access.HasAccessOutput{Granted: true, Grant: grant}, nil
}

func (f *fakeAccess) GrantAccess(ctx context.Context, sc model.Scope, ip access.GrantInput) (model.AccessControl, error) {
	return model.AccessControl{}, nil
}

func (f *fakeAccess) RevokeAccess(ctx context.Context, sc model.Scope, ip access.RevokeInput) error {
	return nil
}

func (f *fakeAccess) GetAccessSummary(ctx context.Context, sc model.Scope, ip access.SummaryInput) (access.SummaryOutput, error) {
	return access.SummaryOutput{}, nil
}

func (f *fakeAccess) ListNomineeGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error) {
	return nil, nil
}

type fakeStorage struct{}

func (fakeStorage) Connect(ctx context.Context) error { return nil }
func (fakeStorage) SignedViewURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	return "https://store.example.com/view/" + objectPath, nil
}
func (fakeStorage) SignedDownloadURL(ctx context.Context, objectPath, fileName string, ttl time.Duration) (string, error) {
	return "https://store.example.com/download/" + objectPath, nil
}
func (fakeStorage) HealthCheck(ctx context.Context) error { return nil }
func (fakeStorage) Close() error                          { return nil }

func newPortalUsecase(repo *fakeRepo, m *fakeMailer, rd *fakeRedis, acc *fakeAccess) *usecase {
	uc := New(
		testLogger(),
		Config{
			OTPTTL:        10 * time.Minute,
			OTPRateLimit:  3,
			OTPRateWindow: time.Hour,
			SessionTTL:    30 * time.Minute,
			SignedURLTTL:  15 * time.Minute,
		},
		repo,
		acc,
		m,
		rd,
		scope.New(testSecretKey),
		fakeStorage{},
	).(*usecase)
	return uc
}

func TestRequestOTP(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("issues a code to an eligible nominee", func(t *testing.T) {
		repo := newPortalRepo()
		m := &fakeMailer{}
		uc := newPortalUsecase(repo, m, newFakeRedis(), &fakeAccess{})

		err := uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "nominee@example.com"})
		require.NoError(t, err)

		require.Len(t, m.sent, 1)
		assert.Equal(t, []string{"nominee@example.com"}, m.sent[0].To)
		assert.Equal(t, "Your Emergency Access OTP Code", m.sent[0].Subject)

		// The stored hash must match the code that was mailed.
		code := regexp.MustCompile(`\d{6}`).FindString(m.sent[0].HTML)
		require.NotEmpty(t, code)
		require.Len(t, repo.inserted, 1)
		assert.True(t, encrypter.CheckOTPCode(code, repo.inserted[0].CodeHash))
	})

	t.Run("unknown nominee", func(t *testing.T) {
		repo := newPortalRepo()
		repo.nomineeMissing = true
		m := &fakeMailer{}
		uc := newPortalUsecase(repo, m, newFakeRedis(), &fakeAccess{})

		err := uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "stranger@example.com"})
		assert.ErrorIs(t, err, portal.ErrNomineeNotEligible)
		assert.Empty(t, m.sent)
	})

	t.Run("emergency not granted", func(t *testing.T) {
		repo := newPortalRepo()
		repo.granted = false
		m := &fakeMailer{}
		uc := newPortalUsecase(repo, m, newFakeRedis(), &fakeAccess{})

		err := uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "nominee@example.com"})
		assert.ErrorIs(t, err, portal.ErrAccessNotGranted)
		assert.Empty(t, m.sent)
	})

	t.Run("owner without an active trigger", func(t *testing.T) {
		repo := newPortalRepo()
		repo.triggerMissing = true
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		err := uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "nominee@example.com"})
		assert.ErrorIs(t, err, portal.ErrAccessNotGranted)
	})

	t.Run("rate limited after repeated requests", func(t *testing.T) {
		repo := newPortalRepo()
		m := &fakeMailer{}
		uc := newPortalUsecase(repo, m, newFakeRedis(), &fakeAccess{})

		for i := 0; i < 3; i++ {
			require.NoError(t, uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "nominee@example.com"}))
		}
		err := uc.RequestOTP(ctx, sc, portal.RequestOTPInput{Email: "nominee@example.com"})
		assert.ErrorIs(t, err, portal.ErrTooManyRequests)
		assert.Len(t, m.sent, 3)
		assert.Len(t, repo.inserted, 3)
	})
}

func seedOTP(t *testing.T, repo *fakeRepo, code string) {
	t.Helper()
	hash, err := encrypter.HashOTPCode(code)
	require.NoError(t, err)
	_, err = repo.InsertOTP(context.Background(), model.Scope{}, repository.InsertOTPOptions{
		NomineeID: repo.nominee.ID,
		Email:     repo.nominee.Email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})
	require.NoError(t, err)
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("opens a session and lists documents", func(t *testing.T) {
		repo := newPortalRepo()
		seedOTP(t, repo, "123456")
		repo.grants["doc1"] = model.AccessControl{NomineeID: repo.nominee.ID, ResourceType: model.ResourceTypeDocument, ResourceID: "doc1", AccessLevel: model.AccessLevelDownload}
		repo.grants["doc2"] = model.AccessControl{NomineeID: repo.nominee.ID, ResourceType: model.ResourceTypeDocument, ResourceID: "doc2", AccessLevel: model.AccessLevelView}
		repo.docs["doc1"] = model.Document{ID: "doc1", FileName: "will.pdf"}
		repo.docs["doc2"] = model.Document{ID: "doc2", FileName: "deed.pdf"}
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		out, err := uc.VerifyOTP(ctx, sc, portal.VerifyOTPInput{Email: "nominee@example.com", Code: "123456"})
		require.NoError(t, err)
		require.Len(t, repo.consumed, 1)

		payload, err := scope.New(testSecretKey).Verify(out.Token)
		require.NoError(t, err)
		assert.Equal(t, repo.nominee.ID, payload.UserID)
		assert.Equal(t, scope.RoleNominee, payload.Role)

		require.Len(t, out.Documents, 2)
		canDownload := map[string]bool{}
		for _, d := range out.Documents {
			canDownload[d.Document.ID] = d.CanDownload
		}
		assert.True(t, canDownload["doc1"])
		assert.False(t, canDownload["doc2"])
	})

	t.Run("wrong code", func(t *testing.T) {
		repo := newPortalRepo()
		seedOTP(t, repo, "123456")
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		_, err := uc.VerifyOTP(ctx, sc, portal.VerifyOTPInput{Email: "nominee@example.com", Code: "654321"})
		assert.ErrorIs(t, err, portal.ErrInvalidOTP)
		assert.Empty(t, repo.consumed)
	})

	t.Run("code already consumed", func(t *testing.T) {
		repo := newPortalRepo()
		seedOTP(t, repo, "123456")
		repo.consumeOK = false
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		_, err := uc.VerifyOTP(ctx, sc, portal.VerifyOTPInput{Email: "nominee@example.com", Code: "123456"})
		assert.ErrorIs(t, err, portal.ErrInvalidOTP)
	})

	t.Run("older pending code still verifies", func(t *testing.T) {
		repo := newPortalRepo()
		seedOTP(t, repo, "111111")
		seedOTP(t, repo, "222222")
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		// Both codes are still valid; the older one still verifies.
		_, err := uc.VerifyOTP(ctx, sc, portal.VerifyOTPInput{Email: "nominee@example.com", Code: "111111"})
		require.NoError(t, err)
	})
}

func TestDocumentRetrieval(t *testing.T) {
	ctx := context.Background()
	session := model.Scope{UserID: "c1d2e3f4-a5b6-4c33-9e0f-2f4f6c1f9d01", Role: model.RoleNominee}

	t.Run("view with a view-level grant", func(t *testing.T) {
		repo := newPortalRepo()
		repo.docs["doc1"] = model.Document{ID: "doc1", FilePath: "u1/doc1.pdf", FileName: "will.pdf"}
		acc := &fakeAccess{grants: map[string]model.AccessControl{
			"doc1": {AccessLevel: model.AccessLevelView},
		}}
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), acc)

		out, err := uc.ViewDocument(ctx, session, "doc1")
		require.NoError(t, err)
		assert.Equal(t, "https://store.example.com/view/u1/doc1.pdf", out.URL)
	})

	t.Run("download rejected for view-level grant", func(t *testing.T) {
		repo := newPortalRepo()
		repo.docs["doc1"] = model.Document{ID: "doc1", FilePath: "u1/doc1.pdf", FileName: "will.pdf"}
		acc := &fakeAccess{grants: map[string]model.AccessControl{
			"doc1": {AccessLevel: model.AccessLevelView},
		}}
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), acc)

		_, err := uc.DownloadDocument(ctx, session, "doc1")
		assert.ErrorIs(t, err, portal.ErrDownloadNotAllowed)
	})

	t.Run("download with a download-level grant", func(t *testing.T) {
		repo := newPortalRepo()
		repo.docs["doc1"] = model.Document{ID: "doc1", FilePath: "u1/doc1.pdf", FileName: "will.pdf"}
		acc := &fakeAccess{grants: map[string]model.AccessControl{
			"doc1": {AccessLevel: model.AccessLevelDownload},
		}}
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), acc)

		out, err := uc.DownloadDocument(ctx, session, "doc1")
		require.NoError(t, err)
		assert.Equal(t, "https://store.example.com/download/u1/doc1.pdf", out.URL)
	})

	t.Run("no grant at all", func(t *testing.T) {
		repo := newPortalRepo()
		repo.docs["doc1"] = model.Document{ID: "doc1", FilePath: "u1/doc1.pdf"}
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		_, err := uc.ViewDocument(ctx, session, "doc1")
		assert.ErrorIs(t, err, portal.ErrAccessDenied)
	})

	t.Run("unknown document", func(t *testing.T) {
		repo := newPortalRepo()
		uc := newPortalUsecase(repo, &fakeMailer{}, newFakeRedis(), &fakeAccess{})

		_, err := uc.ViewDocument(ctx, session, "missing")
		assert.ErrorIs(t, err, portal.ErrDocumentNotFound)
	})
}
