// Package eligibility decides whether a student profile may apply to a job
// posting. Evaluation is pure: callers supply the evaluation instant.
package eligibility

import (
	"fmt"
	"time"

	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"
)

// Gate names one predicate of the rule chain.
type Gate string

const (
	GateNone     Gate = ""
	GateCGPA     Gate = "cgpa"
	GateBranch   Gate = "branch"
	GateBacklog  Gate = "backlog"
	GateDeadline Gate = "deadline"
)

type Verdict struct {
	Eligible bool
	Gate     Gate
	Detail   string
}

type gateFunc func(p profile.Profile, j job.Job, now time.Time) (bool, string)

// gates run in order and the first failure decides the verdict.
var gates = []struct {
	name  Gate
	check gateFunc
}{
	{GateCGPA, checkCGPA},
	{GateBranch, checkBranch},
	{GateBacklog, checkBacklog},
	{GateDeadline, checkDeadline},
}

// Evaluate runs the gate chain for p against j at instant now. The job's
// status is never inspected; inactive jobs are filtered out before this.
func Evaluate(p profile.Profile, j job.Job, now time.Time) Verdict {
	for _, g := range gates {
		if ok, detail := g.check(p, j, now); !ok {
			return Verdict{Eligible: false, Gate: g.name, Detail: detail}
		}
	}
	return Verdict{Eligible: true}
}

func IsEligible(p profile.Profile, j job.Job, now time.Time) bool {
	return Evaluate(p, j, now).Eligible
}

func checkCGPA(p profile.Profile, j job.Job, _ time.Time) (bool, string) {
	if p.CGPA < j.MinCGPA {
		return false, fmt.Sprintf("cgpa %.2f below minimum %.2f", p.CGPA, j.MinCGPA)
	}
	return true, ""
}

func checkBranch(p profile.Profile, j job.Job, _ time.Time) (bool, string) {
	if len(j.EligibleBranches) == 0 {
		return true, ""
	}
	for _, b := range j.EligibleBranches {
		if b == p.Branch {
			return true, ""
		}
	}
	return false, fmt.Sprintf("branch %q not in %v", p.Branch, j.EligibleBranches)
}

func checkBacklog(p profile.Profile, j job.Job, _ time.Time) (bool, string) {
	if p.ActiveBacklogCount > j.MaxActiveBacklogs {
		return false, fmt.Sprintf("%d active backlogs exceed limit %d", p.ActiveBacklogCount, j.MaxActiveBacklogs)
	}
	return true, ""
}

func checkDeadline(_ profile.Profile, j job.Job, now time.Time) (bool, string) {
	if j.Deadline == nil {
		return true, ""
	}
	if j.Deadline.Before(now) {
		return false, "application deadline " + j.Deadline.Format(time.RFC3339) + " has passed"
	}
	return true, ""
}
