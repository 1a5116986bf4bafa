package response

type ResponseCode int

// Success is the code carried by every successful envelope
const (
	Success ResponseCode = 100
)

type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

// ErrorBody is the envelope for failed requests. Error and Message carry the
// same text so clients reading either field get it.
type ErrorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Code    ResponseCode      `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithCode(code ResponseCode) ResponseOptions {
	return func(r *Response) {
		r.Code = code
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{Code: Success, Message: "success"}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(err *BusinessError) ErrorBody {
	return ErrorBody{
		Message: err.Msg,
		Error:   err.Msg,
		Code:    err.Code,
		Details: err.Details,
	}
}
