package serverutils

type Response[T any] struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
	Data       T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		StatusCode: 200,
		Message:    message,
		Data:       data,
	}
}

func DataResponse[T any](data T) Response[T] {
	return Response[T]{
		StatusCode: 200,
		Data:       data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		StatusCode: code,
		Message:    message,
	}
}
