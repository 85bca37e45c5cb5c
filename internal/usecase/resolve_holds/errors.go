package resolve_holds

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_holds: internal error")
)
