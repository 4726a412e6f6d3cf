package column

import "errors"

// errTruncated is wrapped into errs.ErrColumnCorrupt by the container
// package, which has the column_id context needed for a useful message.
var errTruncated = errors.New("column: truncated encoding")
