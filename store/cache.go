package store

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/josephgoksu/kanban-sheets/internal/table"
	"github.com/josephgoksu/kanban-sheets/models"
	"golang.org/x/text/cases"
)

// cache is the query engine shared by the connectors. Callers hold mu for
// the whole operation, including any write-through.
type cache struct {
	mu  sync.Mutex
	tbl *table.Table
}

func (c *cache) GetOne(project, taskID string) (models.Row, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.tbl.Find(project, taskID)
	if i < 0 {
		return nil, NotFound(project, taskID)
	}
	return c.tbl.Row(i), nil
}

func (c *cache) Search(filters *models.SearchFilters, page *models.Pagination) (*models.SearchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	matches := make([]models.Row, 0, c.tbl.Len())
	m := newMatcher(filters)
	for i := 0; i < c.tbl.Len(); i++ {
		if m.match(c.tbl, i) {
			matches = append(matches, c.tbl.Row(i))
		}
	}

	if page == nil {
		return &models.SearchResult{Rows: matches}, nil
	}
	return &models.SearchResult{Paginated: true, Page: paginate(matches, *page)}, nil
}

func (c *cache) SprintStats(project string) ([]models.SprintStat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bySprint := make(map[string]*models.SprintStat)
	for i := 0; i < c.tbl.Len(); i++ {
		if project != "" && c.tbl.Get(i, models.ColProject) != project {
			continue
		}
		sprint := c.tbl.Get(i, models.ColSprint)
		if sprint == "" {
			continue
		}
		st, ok := bySprint[sprint]
		if !ok {
			st = &models.SprintStat{Sprint: sprint, TasksByStatus: make(map[string]int)}
			bySprint[sprint] = st
		}
		status := c.tbl.Get(i, models.ColStatus)
		st.TotalTasks++
		st.TasksByStatus[status]++
		if models.TaskStatus(status) == models.StatusDone {
			st.CompletedTasks++
		}
	}

	stats := make([]models.SprintStat, 0, len(bySprint))
	for _, st := range bySprint {
		if st.TotalTasks > 0 {
			pct := float64(st.CompletedTasks) / float64(st.TotalTasks) * 100
			st.CompletionPercentage = math.Round(pct*100) / 100
		}
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Sprint < stats[j].Sprint })
	return stats, nil
}

// applyPatches writes each patch into tbl and returns the per-item result
// plus the indexes of the rows that changed, in first-touch order.
func applyPatches(tbl *table.Table, patches []models.TaskPatch) (models.BatchResult, []int) {
	result := models.BatchResult{Details: make([]models.BatchDetail, 0, len(patches))}
	var touched []int
	seen := make(map[int]bool)

	for _, p := range patches {
		switch {
		case strings.TrimSpace(p.Project) == "":
			result.Fail(p.Project, p.TaskID, "project is required")
			continue
		case strings.TrimSpace(p.TaskID) == "":
			result.Fail(p.Project, p.TaskID, "task_id is required")
			continue
		}

		i := tbl.Find(p.Project, p.TaskID)
		if i < 0 {
			result.Fail(p.Project, p.TaskID, NotFound(p.Project, p.TaskID).Error())
			continue
		}
		for key, value := range p.Fields {
			tbl.Set(i, key, value)
		}
		if !seen[i] {
			seen[i] = true
			touched = append(touched, i)
		}
		result.Succeed(p.Project, p.TaskID, "task updated successfully")
	}
	return result, touched
}

func paginate(rows []models.Row, p models.Pagination) *models.Page {
	p = p.WithDefaults()
	if p.Page < 1 {
		p.Page = models.DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = models.DefaultPageSize
	}
	if p.PageSize > models.MaxPageSize {
		p.PageSize = models.MaxPageSize
	}

	total := len(rows)
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}
	current := 1
	if totalPages > 0 {
		current = min(p.Page, totalPages)
	}

	start := min((current-1)*p.PageSize, total)
	end := min(start+p.PageSize, total)

	return &models.Page{
		Tasks:       append([]models.Row{}, rows[start:end]...),
		TotalCount:  total,
		Page:        current,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		HasNext:     current < totalPages,
		HasPrevious: current > 1,
	}
}

type matcher struct {
	f          *models.SearchFilters
	priorities map[string]bool
	statuses   map[string]bool
	context    string
	project    string
	text       string
}

func newMatcher(f *models.SearchFilters) *matcher {
	m := &matcher{f: f}
	if f.IsEmpty() {
		return m
	}
	if len(f.Priorities) > 0 {
		m.priorities = make(map[string]bool, len(f.Priorities))
		for _, p := range f.Priorities {
			m.priorities[string(p)] = true
		}
	}
	if len(f.Statuses) > 0 {
		m.statuses = make(map[string]bool, len(f.Statuses))
		for _, s := range f.Statuses {
			m.statuses[string(s)] = true
		}
	}
	m.context = fold(f.Context)
	m.project = fold(f.Project)
	m.text = fold(f.Text)
	return m
}

func (m *matcher) match(tbl *table.Table, i int) bool {
	if m.f.IsEmpty() {
		return true
	}
	f := m.f
	if f.TaskID != "" && tbl.Get(i, models.ColTaskID) != f.TaskID {
		return false
	}
	if m.priorities != nil && !m.priorities[tbl.Get(i, models.ColPriority)] {
		return false
	}
	if m.statuses != nil && !m.statuses[tbl.Get(i, models.ColStatus)] {
		return false
	}
	if m.context != "" && !strings.Contains(fold(tbl.Get(i, models.ColContext)), m.context) {
		return false
	}
	if m.project != "" && !strings.Contains(fold(tbl.Get(i, models.ColProject)), m.project) {
		return false
	}
	if f.Sprint != "" && tbl.Get(i, models.ColSprint) != f.Sprint {
		return false
	}
	if m.text != "" {
		desc := fold(tbl.Get(i, models.ColDescription))
		detail := fold(tbl.Get(i, models.ColDetail))
		if !strings.Contains(desc, m.text) && !strings.Contains(detail, m.text) {
			return false
		}
	}
	return true
}

// fold applies Unicode case folding for case-insensitive comparison.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
