package recruiting

import (
	"fmt"
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

var validJobStatuses = map[JobStatus]bool{
	JobStatusDraft:  true,
	JobStatusOpen:   true,
	JobStatusClosed: true,
}

func (s JobStatus) IsValid() bool {
	return validJobStatuses[s]
}

// CountsAsActive reports whether the job occupies an active_jobs slot.
func (s JobStatus) CountsAsActive() bool {
	return s == JobStatusOpen
}

// JobDescription is a posting. Candidates reference it by Code only, so deleting a
// job leaves its candidates in place.
type JobDescription struct {
	ID         uint
	TenantID   uint
	Code       string
	Slug       string
	Title      string
	Body       string
	HTML       string
	Status     JobStatus
	Department string
	Team       string
	StartDate  *time.Time
	CreatedAt  time.Time
}

func (j *JobDescription) Validate() error {
	if strings.TrimSpace(j.Code) == "" {
		return fmt.Errorf("job code is required")
	}
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("job title is required")
	}
	if !j.Status.IsValid() {
		return fmt.Errorf("invalid job status: %s", j.Status)
	}
	return nil
}

// PostedDate is the ISO date the job was posted, or nil when unknown.
func (j *JobDescription) PostedDate() *string {
	if j.StartDate == nil {
		return nil
	}
	s := j.StartDate.Format("2006-01-02")
	return &s
}

// JobSlug builds the public apply slug from the tenant slug and job code.
func JobSlug(tenantSlug, code string) string {
	return strings.ToLower(tenantSlug + "-" + strings.ReplaceAll(strings.TrimSpace(code), " ", "-"))
}
