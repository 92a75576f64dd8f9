package push

import (
	"net/http"
	"sync"
	"time"

	"vault-srv/pkg/log"
)

const (
	defaultTokenURI = "https://oauth2.googleapis.com/token"
	fcmScope        = "https://www.googleapis.com/auth/firebase.messaging"
	fcmSendURL      = "https://fcm.googleapis.com/v1/projects/%s/messages:send"

	defaultTimeout = 10 * time.Second

	// tokenSkew is subtracted from the access token lifetime so a token is
	// refreshed before it actually expires.
	tokenSkew = 2 * time.Minute
)

// Config holds the Firebase service account settings.
type Config struct {
	ProjectID          string
	ServiceAccountJSON []byte
}

// serviceAccount is the subset of the Firebase service account key file
// needed to mint access tokens.
type serviceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
	ProjectID   string `json:"project_id"`
}

// Result summarizes a multi-device send.
type Result struct {
	Sent          int
	Total         int
	InvalidTokens []string
}

// Push sends notifications through the FCM HTTP v1 API.
type Push struct {
	l       log.Logger
	config  Config
	account serviceAccount
	client  *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// fcmMessage is the FCM v1 send request body.
type fcmMessage struct {
	Message struct {
		Token        string            `json:"token"`
		Notification fcmNotification   `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
	} `json:"message"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
