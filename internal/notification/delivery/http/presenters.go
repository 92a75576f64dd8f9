package http

import (
	"vault-srv/internal/model"
	"vault-srv/internal/notification"
)

type sendPushReq struct {
	UserID string            `json:"user_id" binding:"required"`
	Title  string            `json:"title" binding:"required"`
	Body   string            `json:"body" binding:"required"`
	Data   map[string]string `json:"data"`
}

func (r sendPushReq) toInput() notification.SendPushInput {
	return notification.SendPushInput{
		UserID: r.UserID,
		Title:  r.Title,
		Body:   r.Body,
		Data:   r.Data,
	}
}

type sendPushResp struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
	Total   int  `json:"total"`
	Cleaned int  `json:"cleaned"`
}

func newSendPushResp(o notification.SendPushOutput) sendPushResp {
	return sendPushResp{
		Success: true,
		Sent:    o.Sent,
		Total:   o.Total,
		Cleaned: o.Cleaned,
	}
}

type registerDeviceReq struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

func (r registerDeviceReq) toInput() notification.RegisterDeviceInput {
	return notification.RegisterDeviceInput{
		Token:    r.Token,
		Platform: r.Platform,
	}
}

type unregisterDeviceReq struct {
	Token string `json:"token" binding:"required"`
}

type deviceResp struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

func newDeviceResp(t model.DeviceToken) deviceResp {
	return deviceResp{
		ID:       t.ID,
		Token:    t.Token,
		Platform: t.Platform,
	}
}
