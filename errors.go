package utf8valid

import "errors"

// ErrReportNotLoaded is returned when Get is called on a Report that
// BatchValidate has not populated.
var ErrReportNotLoaded = errors.New("utf8valid: report not loaded")

// ErrReportIndexOutOfRange is returned when Get is called with an index
// outside [0, Len()).
var ErrReportIndexOutOfRange = errors.New("utf8valid: report index out of range")
