package api

import "github.com/bitmark-inc/covid-briefing/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrBriefingAlreadySent.Error(),
		1101: store.ErrBriefingNotFound.Error(),
		1102: "report data quality error",
	}

	errorInternalServer      = errorJSON(999)
	errorInvalidParameters   = errorJSON(1010)
	errorCannotParseRequest  = errorJSON(1011)
	errorBriefingAlreadySent = errorJSON(1100)
	errorBriefingNotFound    = errorJSON(1101)
	errorReportDataQuality   = errorJSON(1102)
)

// ErrorResponse is the JSON error payload of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func errorJSON(code int64) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: errorMessageMap[code],
		},
	}
}
