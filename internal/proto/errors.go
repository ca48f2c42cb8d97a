package proto

import "errors"

var errNilAccount = errors.New("empty account in response")
