package hospital

import "errors"

var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrEmptyCatalog     = errors.New("hospital catalog is empty")
)
