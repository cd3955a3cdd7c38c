package envelope

import "time"

const DefaultSuccessMessage = "Operation successful"

// TimestampLayout is the layout of Envelope.Timestamp.
const TimestampLayout = time.RFC3339Nano

var now = time.Now

// Envelope is the uniform body of every HTTP response.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

func newEnvelope[T any](success bool, message string, data T) Envelope[T] {
	return Envelope[T]{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: now().Format(TimestampLayout),
	}
}

func Success[T any](data T) Envelope[T] {
	return newEnvelope(true, DefaultSuccessMessage, data)
}

func SuccessWithMessage[T any](message string, data T) Envelope[T] {
	return newEnvelope(true, message, data)
}

// Error builds a failed envelope with a null payload.
func Error(message string) Envelope[any] {
	return newEnvelope[any](false, message, nil)
}

// ErrorWithData builds a failed envelope carrying extra detail, such as a
// field to violation mapping.
func ErrorWithData[T any](message string, data T) Envelope[T] {
	return newEnvelope(false, message, data)
}
