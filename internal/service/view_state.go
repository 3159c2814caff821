package service

import (
	"sync"

	"github.com/noah-isme/academia-console-api/internal/models"
)

// ReportView holds one console session's report state: the latest
// fetched record set plus the current search, sort, filter and page
// selections. Every derived structure is recomputed from those inputs
// on Render; nothing incremental is maintained.
//
// Fetches are guarded by a monotonically increasing sequence so a slow,
// superseded response can never overwrite a newer one.
type ReportView struct {
	mu sync.Mutex

	domain  models.ReportDomain
	period  models.Period
	records []models.RawRecord

	search    string
	sortBy    models.SortKey
	ascending bool
	page      int
	courseID  string

	seq     uint64
	fetched bool
}

// NewReportView starts a view with the domain defaults: name ascending,
// first page, no filters.
func NewReportView(domain models.ReportDomain) *ReportView {
	return &ReportView{
		domain:    domain,
		sortBy:    models.SortByName,
		ascending: true,
		page:      1,
	}
}

// Domain returns the report domain this view renders.
func (v *ReportView) Domain() models.ReportDomain {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.domain
}

// BeginFetch registers an outgoing fetch and returns its sequence
// number. A period change invalidates the course filter, since courses
// are period-scoped and a stale selection could point outside the new
// range.
func (v *ReportView) BeginFetch(period models.Period, courseID string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seq > 0 && v.period.Key != period.Key {
		courseID = ""
	}
	v.period = period
	v.courseID = courseID
	v.seq++
	return v.seq
}

// ApplyFetch installs a fetch result if it is still the newest request.
// Stale responses are dropped and the previous render stays intact.
func (v *ReportView) ApplyFetch(seq uint64, records []models.RawRecord) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		return false
	}
	v.records = records
	v.fetched = true
	v.page = 1
	return true
}

// Fetched reports whether the view holds a generated result.
func (v *ReportView) Fetched() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetched
}

// CourseID returns the active course filter.
func (v *ReportView) CourseID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.courseID
}

// SetSearch updates the query. Any change resets to the first page.
func (v *ReportView) SetSearch(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if query == v.search {
		return
	}
	v.search = query
	v.page = 1
}

// SetSort selects a sort key. Re-selecting the active key flips the
// direction; a new key starts at its default direction. Either way the
// page resets to 1.
func (v *ReportView) SetSort(key models.SortKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if key == v.sortBy {
		v.ascending = !v.ascending
	} else {
		v.sortBy = key
		v.ascending = key.DefaultAscending()
	}
	v.page = 1
}

// SetPage requests a page; Render clamps it to the available range.
func (v *ReportView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
}

// ViewResult is one full recomputation of the view pipeline.
type ViewResult struct {
	Domain     models.ReportDomain
	Period     models.Period
	Groups     PageView[models.ReportGroup]
	Statistics models.StatisticsSnapshot
	TotalCount int
	Search     string
	SortBy     models.SortKey
	Ascending  bool
}

// Render runs the full pipeline over the stored records: search filter,
// sort, grouping, the domain ordering policy, statistics over the
// filtered (pre-pagination) set, and pagination.
func (v *ReportView) Render(pageSize int) ViewResult {
	v.mu.Lock()
	defer v.mu.Unlock()

	filtered := FilterRecords(v.records, v.search)
	sorted := SortRecords(filtered, v.sortBy, v.ascending)
	groups := GroupRecords(sorted, v.domain)
	ordered := OrderGroups(groups, GroupOrdering(v.domain, v.sortBy, v.ascending))

	return ViewResult{
		Domain:     v.domain,
		Period:     v.period,
		Groups:     Paginate(ordered, pageSize, v.page),
		Statistics: ComputeStatistics(filtered, v.domain),
		TotalCount: len(ordered),
		Search:     v.search,
		SortBy:     v.sortBy,
		Ascending:  v.ascending,
	}
}
