package console

import "errors"

var errClosed = errors.New("console: closed")
