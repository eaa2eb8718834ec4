package http

const (
	MsgUnavailable = "database unavailable"
	MsgOK          = "ok"
)
