// internal/api/error_codes.go
package api

// API错误代码常量
const (
	// 通用错误
	ErrorBadRequest    = "BAD_REQUEST"
	ErrorNotFound      = "NOT_FOUND"
	ErrorInternalError = "INTERNAL_ERROR"
	ErrorConflict      = "CONFLICT"
	ErrorForbidden     = "FORBIDDEN"

	// 报告相关错误
	ErrorReportNotFound   = "REPORT_NOT_FOUND"
	ErrorReportInvalid    = "REPORT_INVALID"
	ErrorCatalogExhausted = "CATALOG_EXHAUSTED"

	// 页面流转相关错误
	ErrorFlowNotStarted = "FLOW_NOT_STARTED"
	ErrorPageInvalid    = "PAGE_INVALID"

	// 卡片相关错误
	ErrorCardInvalid = "CARD_INVALID"

	// 文件相关错误
	ErrorFileUploadFailed = "FILE_UPLOAD_FAILED"
	ErrorFileInvalid      = "FILE_INVALID"
	ErrorFileNotFound     = "FILE_NOT_FOUND"

	// 导出相关错误
	ErrorExportFailed     = "EXPORT_FAILED"
	ErrorExportInProgress = "EXPORT_IN_PROGRESS"
)
