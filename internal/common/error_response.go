package common

import (
	"github.com/rwth-iat/basyx-go-framework/internal/common/model"
)

// NewErrorResponse builds the error envelope returned by all API services.
// The body follows the Part 2 Result/Message schema so that clients can
// correlate failures with the component and operation that produced them.
func NewErrorResponse(err error, status int, component string, operation string, code string) model.ImplResponse {
	msg := model.Message{
		Code:          code,
		CorrelationID: component + "-" + operation,
		MessageType:   "Exception",
		Text:          err.Error(),
		Timestamp:     GetCurrentTimestamp(),
	}
	if status < 500 {
		msg.MessageType = "Error"
	}
	return model.Response(status, model.Result{Messages: []model.Message{msg}})
}
