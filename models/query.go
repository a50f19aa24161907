package models

// Pagination bounds and defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// SearchFilters narrows a search. Empty fields do not filter; all set
// fields combine with AND.
type SearchFilters struct {
	TaskID     string         `json:"task_id,omitempty"`
	Priorities []TaskPriority `json:"prioridade,omitempty"`
	Statuses   []TaskStatus   `json:"status,omitempty"`
	Context    string         `json:"contexto,omitempty"`
	Project    string         `json:"projeto,omitempty"`
	Text       string         `json:"texto_busca,omitempty"`
	Sprint     string         `json:"sprint,omitempty"`
}

// IsEmpty reports whether no filter field is set.
func (f *SearchFilters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.TaskID == "" && len(f.Priorities) == 0 && len(f.Statuses) == 0 &&
		f.Context == "" && f.Project == "" && f.Text == "" && f.Sprint == ""
}

// Pagination requests one page of a search result.
type Pagination struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=500"`
}

// WithDefaults fills zero values with DefaultPage and DefaultPageSize.
func (p Pagination) WithDefaults() Pagination {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Page is the paginated envelope returned when pagination is requested.
type Page struct {
	Tasks       []Row `json:"tasks"`
	TotalCount  int   `json:"total_count"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// SearchResult is either the full list of matches or one page of them.
// Exactly one of Rows or Page is meaningful, depending on Paginated.
type SearchResult struct {
	Paginated bool
	Rows      []Row
	Page      *Page
}

// Payload returns the value to serialize: the row list or the page envelope.
func (r *SearchResult) Payload() interface{} {
	if r.Paginated {
		return r.Page
	}
	if r.Rows == nil {
		return []Row{}
	}
	return r.Rows
}

// TaskPatch is a sparse update addressed by composite key. Fields is keyed
// by internal column key ("Status", "Data-Solução", ...).
type TaskPatch struct {
	Project string
	TaskID  string
	Fields  map[string]string
}

// BatchDetail reports the outcome of one batch item.
type BatchDetail struct {
	TaskID  string `json:"task_id"`
	Project string `json:"project,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Batch item outcomes.
const (
	BatchSuccess = "success"
	BatchError   = "error"
)

// BatchResult summarizes a batch add or update.
type BatchResult struct {
	SuccessCount int           `json:"success_count"`
	ErrorCount   int           `json:"error_count"`
	Details      []BatchDetail `json:"details"`
}

// Succeed records a successful item.
func (b *BatchResult) Succeed(project, taskID, msg string) {
	b.SuccessCount++
	b.Details = append(b.Details, BatchDetail{TaskID: taskID, Project: project, Status: BatchSuccess, Message: msg})
}

// Fail records a failed item.
func (b *BatchResult) Fail(project, taskID, msg string) {
	b.ErrorCount++
	b.Details = append(b.Details, BatchDetail{TaskID: taskID, Project: project, Status: BatchError, Message: msg})
}

// FailAll converts every successful detail into a failure with msg.
func (b *BatchResult) FailAll(msg string) {
	for i := range b.Details {
		if b.Details[i].Status == BatchSuccess {
			b.Details[i].Status = BatchError
			b.Details[i].Message = msg
		}
	}
	b.ErrorCount += b.SuccessCount
	b.SuccessCount = 0
}

// SprintStat aggregates the tasks of one sprint.
type SprintStat struct {
	Sprint               string         `json:"sprint"`
	TotalTasks           int            `json:"total_tasks"`
	CompletedTasks       int            `json:"completed_tasks"`
	CompletionPercentage float64        `json:"completion_percentage"`
	TasksByStatus        map[string]int `json:"tasks_by_status"`
}
