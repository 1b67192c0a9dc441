package api

// Error 帶 HTTP 狀態碼的業務錯誤，由 handler 回傳並交給集中式錯誤處理器輸出 Envelope
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError 建立帶狀態碼的錯誤
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
