package notification

// SendPushInput describes one push fan-out.
type SendPushInput struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]string
}

// SendPushOutput reports the fan-out outcome.
type SendPushOutput struct {
	Sent    int
	Total   int
	Cleaned int
}

// RegisterDeviceInput describes one token registration.
type RegisterDeviceInput struct {
	Token    string
	Platform string
}
