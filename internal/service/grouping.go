package service

import (
	"sort"
	"time"

	"github.com/noah-isme/academia-console-api/internal/models"
)

// GroupRecords collapses a flat record list into one group per owning
// entity: student, payer or course depending on the domain. The pass is
// single-sweep and preserves first-seen group order; OrderGroups applies
// the domain's ordering policy afterwards.
//
// Student rows can arrive duplicated by an upstream join fan-out, so
// sub-records are deduplicated by course code. Payment rows are never
// deduplicated (two payments for one course are distinct) and are
// additionally partitioned into per-course buckets with settled and
// pending running totals.
func GroupRecords(records []models.RawRecord, domain models.ReportDomain) []models.ReportGroup {
	index := make(map[string]int, len(records))
	groups := make([]models.ReportGroup, 0, len(records))

	for _, record := range records {
		ownerID := record.OwnerID
		if domain == models.DomainCourses {
			ownerID = record.CourseID
		}

		at, ok := index[ownerID]
		if !ok {
			at = len(groups)
			index[ownerID] = at
			group := models.ReportGroup{
				OwnerID:   ownerID,
				FirstName: record.FirstName,
				LastName:  record.LastName,
			}
			if record.Kind == models.KindCourse {
				group.LastName = record.CourseName
			}
			groups = append(groups, group)
		}
		group := &groups[at]

		if dedupByCourseCode(domain) && hasCourseCode(group.Records, record.CourseCode) {
			continue
		}
		group.Records = append(group.Records, record)

		if domain == models.DomainFinance {
			appendToBucket(group, record)
			switch record.NormalizedStatus() {
			case models.StatusPagado, models.StatusVerificado:
				group.TotalPaid += record.AmountValue()
			case models.StatusPendiente:
				group.TotalPending += record.AmountValue()
			}
		}
	}

	return groups
}

func dedupByCourseCode(domain models.ReportDomain) bool {
	return domain == models.DomainStudents || domain == models.DomainCourses
}

func hasCourseCode(records []models.RawRecord, code string) bool {
	for _, record := range records {
		if record.CourseCode == code {
			return true
		}
	}
	return false
}

func appendToBucket(group *models.ReportGroup, record models.RawRecord) {
	for i := range group.Courses {
		if group.Courses[i].CourseID == record.CourseID {
			group.Courses[i].Records = append(group.Courses[i].Records, record)
			return
		}
	}
	group.Courses = append(group.Courses, models.CourseBucket{
		CourseID:   record.CourseID,
		CourseCode: record.CourseCode,
		CourseName: record.CourseName,
		Records:    []models.RawRecord{record},
	})
}

// GroupOrderingPolicy is the single, explicit ordering step applied to
// grouped entities. The finance view always lists payers alphabetically
// no matter which sort key drives the flat list; the other domains
// follow the active sort key's entity-level proxy.
type GroupOrderingPolicy struct {
	Key       models.SortKey
	Ascending bool
}

// GroupOrdering resolves the ordering policy for a domain.
func GroupOrdering(domain models.ReportDomain, key models.SortKey, ascending bool) GroupOrderingPolicy {
	if domain == models.DomainFinance {
		return GroupOrderingPolicy{Key: models.SortByName, Ascending: true}
	}
	return GroupOrderingPolicy{Key: key, Ascending: ascending}
}

// OrderGroups sorts a copy of the groups under the given policy. The
// entity-level proxy for date, amount and capacity is taken from the
// group's leading sub-record or its running totals.
func OrderGroups(groups []models.ReportGroup, policy GroupOrderingPolicy) []models.ReportGroup {
	ordered := make([]models.ReportGroup, len(groups))
	copy(ordered, groups)

	less := groupLess(policy.Key)
	sort.SliceStable(ordered, func(i, j int) bool {
		if policy.Ascending {
			return less(ordered[i], ordered[j])
		}
		return less(ordered[j], ordered[i])
	})
	return ordered
}

func groupLess(key models.SortKey) func(a, b models.ReportGroup) bool {
	switch key {
	case models.SortByDate:
		return func(a, b models.ReportGroup) bool {
			return leadTimestamp(a).Before(leadTimestamp(b))
		}
	case models.SortByAmount:
		return func(a, b models.ReportGroup) bool {
			return a.TotalPaid+a.TotalPending < b.TotalPaid+b.TotalPending
		}
	case models.SortByCapacity:
		return func(a, b models.ReportGroup) bool {
			return leadCapacity(a) < leadCapacity(b)
		}
	default:
		collator := newNameCollator()
		return func(a, b models.ReportGroup) bool {
			return collator.CompareString(a.SortName(), b.SortName()) < 0
		}
	}
}

func leadTimestamp(group models.ReportGroup) time.Time {
	if len(group.Records) == 0 {
		return time.Time{}
	}
	return group.Records[0].Timestamp()
}

func leadCapacity(group models.ReportGroup) int {
	if len(group.Records) == 0 {
		return 0
	}
	return group.Records[0].Capacity
}
