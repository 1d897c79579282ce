package timeline

// This file holds the stand-in rules used until jobs carry real worker
// assignments. Replace RoundRobin with an Assigner backed by assignment
// records to drop them.

// DefaultOnSiteLimit is how many active employees RoundRobin shows as on site.
const DefaultOnSiteLimit = 3

// Assigner decides whether an active employee is shown on site and against
// which visible job. activeIndex is the employee's position among active
// employees.
type Assigner interface {
	Assign(activeIndex int, visible []Entry) (onSite bool, job *Entry)
}

// RoundRobin puts the first Limit active employees on site whenever any job is
// visible, dealing jobs out by activeIndex modulo the visible count.
type RoundRobin struct {
	Limit int
}

func (r RoundRobin) Assign(activeIndex int, visible []Entry) (bool, *Entry) {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultOnSiteLimit
	}
	if activeIndex < 0 || activeIndex >= limit || len(visible) == 0 {
		return false, nil
	}
	job := visible[activeIndex%len(visible)]
	return true, &job
}
