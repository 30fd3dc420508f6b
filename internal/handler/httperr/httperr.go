package httperr

import (
	"net/http"

	"salon-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every error reply: {"error":{"message":...},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// Message pairs a sentinel with the text shown to clients.
type Message struct {
	Target error
	Text   string
}

// Abort responds with the status of err's class. The first matching message wins;
// server errors never expose a usecase message.
func Abort(c *gin.Context, err error, messages []Message, detail any) {
	status := StatusOf(err)
	msg := defaultMessage(status)
	if status < http.StatusInternalServerError {
		for _, m := range messages {
			if errs.Is(err, m.Target) {
				msg = m.Text
				break
			}
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

// AbortWithError keeps err on the gin context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
