package mailer

import (
	"fmt"

	"nichenest/board-service/internal/model"
)

// BuildAlert renders the job-alert subject and body for one seeker. The
// output is deterministic: same seeker + job always yields the same message.
func BuildAlert(seeker model.Seeker, job model.Job) (subject, body string) {
	subject = fmt.Sprintf("Hot Job Alert: %s in %s Available Now", job.Title, job.JobNiche)

	body = fmt.Sprintf(`Hi %s,

Great news! A new job that fits your niche has just been posted. The position is for a %s with %s, and they are looking to hire immediately.

Job Details:
- Position: %s
- Company: %s
- Location: %s
- Salary: %s

Don't wait too long! Job openings like these are filled quickly.

We're here to support you in your job search. Best of luck!

Best Regards,
NicheNest Team`,
		seeker.Name, job.Title, job.CompanyName,
		job.Title, job.CompanyName, job.Location, job.Salary)

	return subject, body
}
