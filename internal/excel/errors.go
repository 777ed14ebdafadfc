package excel

import "errors"

var ErrWriteFailure = errors.New("excel write failed")
