package impl_transfer

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input data")
	ErrInvalidPagination = errors.New("page must be >= 0 and page_size between 1 and 100")
)

const MaxPageSize = 100
