package mailer

import (
	"net/http"
	"time"

	"vault-srv/pkg/log"
)

const (
	defaultEndpoint = "https://api.resend.com/emails"
	defaultTimeout  = 10 * time.Second
)

// Config holds the settings for the transactional email provider.
type Config struct {
	APIKey   string
	Endpoint string
	From     string
}

// SendInput describes a single outbound email.
type SendInput struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Receipt is the provider acknowledgement of an accepted email.
type Receipt struct {
	ID string `json:"id"`
}

// Mailer delivers transactional email through an HTTP API.
type Mailer struct {
	l      log.Logger
	config Config
	client *http.Client
}

// sendPayload is the wire format of the provider's send endpoint.
type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
