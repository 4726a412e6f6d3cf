package skeleton

import "errors"

var errTruncated = errors.New("skeleton: truncated encoding")
