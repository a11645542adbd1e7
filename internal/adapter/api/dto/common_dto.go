package dto

// Envelope wraps every successful single-object response
type Envelope struct {
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data"`
}

// ListEnvelope wraps list responses with their pagination counters
type ListEnvelope struct {
	StatusCode     int         `json:"status_code"`
	Data           interface{} `json:"data"`
	RecordsPerPage int         `json:"records_per_page"`
	TotalCount     int         `json:"total_count"`
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewEnvelope creates a success envelope
func NewEnvelope(statusCode int, data interface{}) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
	}
}

// NewListEnvelope creates a list envelope
func NewListEnvelope(statusCode int, data interface{}, recordsPerPage, totalCount int) ListEnvelope {
	return ListEnvelope{
		StatusCode:     statusCode,
		Data:           data,
		RecordsPerPage: recordsPerPage,
		TotalCount:     totalCount,
	}
}

// NewErrorResponse creates an error payload
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// PaginationParams carries normalized paging values
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the page
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// GetPagination normalizes raw paging query values
func GetPagination(page, pageSize int) PaginationParams {
	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}
