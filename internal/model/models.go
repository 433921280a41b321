// Package model defines the shared data structures for the board service.
package model

import "time"

// Role values mirror the user_role enum in PostgreSQL.
type Role string

const (
	RoleJobSeeker Role = "Job Seeker"
	RoleEmployer  Role = "Employer"
)

// Job mirrors the jobs table row. JobNiche is the single classification tag
// matched against seeker niches by the dispatch cycle; NewslettersSent is the
// per-job idempotency flag that transitions false→true exactly once.
type Job struct {
	ID                       string    `json:"id"`
	Title                    string    `json:"title"`
	JobType                  string    `json:"jobType"`
	Location                 string    `json:"location"`
	CompanyName              string    `json:"companyName"`
	Introduction             string    `json:"introduction"`
	Responsibilities         string    `json:"responsibilities"`
	Qualifications           string    `json:"qualifications"`
	Offers                   string    `json:"offers,omitempty"`
	Salary                   string    `json:"salary"`
	HiringMultipleCandidates string    `json:"hiringMultipleCandidates"`
	PersonalWebsiteTitle     string    `json:"personalWebsiteTitle,omitempty"`
	PersonalWebsiteURL       string    `json:"personalWebsiteUrl,omitempty"`
	JobNiche                 string    `json:"jobNiche"`
	NewslettersSent          bool      `json:"-"`
	PostedBy                 string    `json:"postedBy"`
	JobPostedOn              time.Time `json:"jobPostedOn"`
}

// Seeker is the slice of the users table the matching pipeline reads: contact
// address plus the up-to-three declared niches.
type Seeker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	FirstNiche  string `json:"firstNiche,omitempty"`
	SecondNiche string `json:"secondNiche,omitempty"`
	ThirdNiche  string `json:"thirdNiche,omitempty"`
}

// MatchesNiche reports whether niche equals any of the seeker's niche slots.
// Comparison is exact and case-sensitive; slot order is display-only. An empty
// niche never matches (unfilled slots are empty strings).
func (s Seeker) MatchesNiche(niche string) bool {
	if niche == "" {
		return false
	}
	return s.FirstNiche == niche || s.SecondNiche == niche || s.ThirdNiche == niche
}

// Resume is the opaque storage reference supplied by the upload layer.
type Resume struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// Application mirrors the applications table row. The seeker fields are
// snapshots copied at submission time and never re-read from the profile.
// The two delete flags are each owned by one party; the row is hard-deleted
// the moment both are true.
type Application struct {
	ID                 string    `json:"id"`
	JobSeekerID        string    `json:"jobSeekerId"`
	JobSeekerName      string    `json:"jobSeekerName"`
	JobSeekerEmail     string    `json:"jobSeekerEmail"`
	JobSeekerPhone     string    `json:"jobSeekerPhone"`
	JobSeekerAddress   string    `json:"jobSeekerAddress"`
	CoverLetter        string    `json:"coverLetter"`
	ResumePublicID     string    `json:"resumePublicId,omitempty"`
	ResumeURL          string    `json:"resumeUrl,omitempty"`
	EmployerID         string    `json:"employerId"`
	JobID              string    `json:"jobId"`
	JobTitle           string    `json:"jobTitle"`
	DeletedByJobSeeker bool      `json:"-"`
	DeletedByEmployer  bool      `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
}
