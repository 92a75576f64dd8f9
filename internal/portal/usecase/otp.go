package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vault-srv/internal/model"
	"vault-srv/internal/portal"
	"vault-srv/internal/portal/repository"
	"vault-srv/pkg/encrypter"
	"vault-srv/pkg/mailer"
	"vault-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

func rateLimitKey(email string) string {
	return "portal:otp:" + strings.ToLower(email)
}

// RequestOTP gates on nominee verification and the emergency latch before a
// code ever leaves the system. Both rejections are user-facing.
func (uc *usecase) RequestOTP(ctx context.Context, sc model.Scope, ip portal.RequestOTPInput) error {
	email := strings.TrimSpace(ip.Email)

	nominee, err := uc.repo.GetNomineeByEmail(ctx, sc, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return portal.ErrNomineeNotEligible
		}
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.GetNomineeByEmail: %v", err)
		return err
	}

	granted, err := uc.repo.EmergencyGranted(ctx, sc, nominee.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return portal.ErrAccessNotGranted
		}
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.EmergencyGranted: %v", err)
		return err
	}
	if !granted {
		return portal.ErrAccessNotGranted
	}

	if err := uc.checkRateLimit(ctx, email); err != nil {
		return err
	}

	code, err := encrypter.GenerateOTPCode()
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.GenerateOTPCode: %v", err)
		return err
	}

	hash, err := encrypter.HashOTPCode(code)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.HashOTPCode: %v", err)
		return err
	}

	otp, err := uc.repo.InsertOTP(ctx, sc, repository.InsertOTPOptions{
		NomineeID: nominee.ID,
		Email:     nominee.Email,
		CodeHash:  hash,
		ExpiresAt: uc.clock().Add(uc.cfg.OTPTTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.InsertOTP: %v", err)
		return err
	}

	subject, html := buildOTPEmail(nominee, code, uc.cfg.OTPTTL)
	if _, err := uc.mailer.Send(ctx, mailer.SendInput{
		To:      []string{nominee.Email},
		Subject: subject,
		HTML:    html,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.RequestOTP.Send: %v", err)
		return err
	}

	uc.l.Infof(ctx, "portal: otp %s issued for nominee %s", otp.ID, nominee.ID)
	return nil
}

// checkRateLimit counts issuance per email inside a rolling window. A zero
// limit disables the check.
func (uc *usecase) checkRateLimit(ctx context.Context, email string) error {
	if uc.cfg.OTPRateLimit <= 0 || uc.redis == nil {
		return nil
	}

	key := rateLimitKey(email)
	count, err := uc.redis.Incr(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.checkRateLimit.Incr: %v", err)
		return err
	}
	if count == 1 {
		if err := uc.redis.Expire(ctx, key, uc.cfg.OTPRateWindow); err != nil {
			uc.l.Errorf(ctx, "internal.portal.usecase.checkRateLimit.Expire: %v", err)
			return err
		}
	}
	if count > int64(uc.cfg.OTPRateLimit) {
		return portal.ErrTooManyRequests
	}

	return nil
}

// VerifyOTP consumes a matching challenge and opens the session. Candidates
// are walked newest first so a re-requested code supersedes older ones while
// those stay valid until expiry.
func (uc *usecase) VerifyOTP(ctx context.Context, sc model.Scope, ip portal.VerifyOTPInput) (portal.AuthorizedOutput, error) {
	email := strings.TrimSpace(ip.Email)

	nominee, err := uc.repo.GetNomineeByEmail(ctx, sc, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return portal.AuthorizedOutput{}, portal.ErrNomineeNotEligible
		}
		uc.l.Errorf(ctx, "internal.portal.usecase.VerifyOTP.GetNomineeByEmail: %v", err)
		return portal.AuthorizedOutput{}, err
	}

	candidates, err := uc.repo.ListActiveOTPs(ctx, sc, nominee.Email)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.VerifyOTP.ListActiveOTPs: %v", err)
		return portal.AuthorizedOutput{}, err
	}

	var matched *model.OTPVerification
	for i := range candidates {
		if encrypter.CheckOTPCode(ip.Code, candidates[i].CodeHash) {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		return portal.AuthorizedOutput{}, portal.ErrInvalidOTP
	}

	consumed, err := uc.repo.ConsumeOTP(ctx, sc, matched.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.VerifyOTP.ConsumeOTP: %v", err)
		return portal.AuthorizedOutput{}, err
	}
	if !consumed {
		return portal.AuthorizedOutput{}, portal.ErrInvalidOTP
	}

	docs, err := uc.listAccessibleDocuments(ctx, sc, nominee.ID)
	if err != nil {
		return portal.AuthorizedOutput{}, err
	}

	expiresAt := uc.clock().Add(uc.cfg.SessionTTL)
	token, err := uc.jwt.CreateToken(scope.Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nominee.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: nominee.ID,
		Email:  nominee.Email,
		Role:   scope.RoleNominee,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.VerifyOTP.CreateToken: %v", err)
		return portal.AuthorizedOutput{}, err
	}

	return portal.AuthorizedOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Documents: docs,
	}, nil
}

func (uc *usecase) listAccessibleDocuments(ctx context.Context, sc model.Scope, nomineeID string) ([]portal.PortalDocument, error) {
	grants, err := uc.repo.ListDocumentGrants(ctx, sc, nomineeID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.listAccessibleDocuments.ListDocumentGrants: %v", err)
		return nil, err
	}
	if len(grants) == 0 {
		return nil, nil
	}

	levels := make(map[string]model.AccessControl, len(grants))
	ids := make([]string, 0, len(grants))
	for _, grant := range grants {
		levels[grant.ResourceID] = grant
		ids = append(ids, grant.ResourceID)
	}

	docs, err := uc.repo.ListDocumentsByIDs(ctx, sc, ids)
	if err != nil {
		uc.l.Errorf(ctx, "internal.portal.usecase.listAccessibleDocuments.ListDocumentsByIDs: %v", err)
		return nil, err
	}

	out := make([]portal.PortalDocument, 0, len(docs))
	for _, doc := range docs {
		grant := levels[doc.ID]
		out = append(out, portal.PortalDocument{
			Document:    doc,
			AccessLevel: grant.AccessLevel,
			CanDownload: grant.CanDownload(),
		})
	}

	return out, nil
}

func buildOTPEmail(nominee model.Nominee, code string, ttl time.Duration) (string, string) {
	name := nominee.FullName
	if name == "" {
		name = nominee.Email
	}

	subject := "Your Emergency Access OTP Code"
	html := fmt.Sprintf(`
		<h1>Emergency Access Verification</h1>
		<p>Dear %s,</p>
		<p>Your OTP code for emergency access is:</p>
		<h2 style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #6D28D9;">%s</h2>
		<p>This code will expire in %d minutes.</p>
		<p>If you did not request this code, please ignore this email.</p>
		<p>Best regards,<br>Family Vault Team</p>
	`, name, code, int(ttl.Minutes()))

	return subject, html
}
