package http

import (
	"time"

	"vault-srv/internal/portal"
)

type requestOTPReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (r requestOTPReq) toInput() portal.RequestOTPInput {
	return portal.RequestOTPInput{Email: r.Email}
}

type verifyOTPReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

func (r verifyOTPReq) toInput() portal.VerifyOTPInput {
	return portal.VerifyOTPInput{
		Email: r.Email,
		Code:  r.Code,
	}
}

type documentItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	AccessLevel string    `json:"access_level"`
	CanDownload bool      `json:"can_download"`
}

type authorizedResp struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Documents []documentItem `json:"documents"`
}

func newAuthorizedResp(out portal.AuthorizedOutput) authorizedResp {
	items := make([]documentItem, 0, len(out.Documents))
	for _, doc := range out.Documents {
		items = append(items, documentItem{
			ID:          doc.Document.ID,
			Title:       doc.Document.Title,
			FileName:    doc.Document.FileName,
			MimeType:    doc.Document.MimeType,
			SizeBytes:   doc.Document.SizeBytes,
			CreatedAt:   doc.Document.CreatedAt,
			AccessLevel: doc.AccessLevel,
			CanDownload: doc.CanDownload,
		})
	}
	return authorizedResp{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		Documents: items,
	}
}

type linkResp struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newLinkResp(out portal.DocumentLinkOutput) linkResp {
	return linkResp{
		URL:       out.URL,
		ExpiresAt: out.ExpiresAt,
	}
}
