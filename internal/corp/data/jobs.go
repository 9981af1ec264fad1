package data

// Job is an employee position inside an office.
type Job string

const (
	JobOperations Job = "Operations"
	JobEngineer   Job = "Engineer"
	JobBusiness   Job = "Business"
	JobManagement Job = "Management"
	JobRandD      Job = "Research & Development"
	JobTraining   Job = "Training"
	JobUnassigned Job = "Unassigned"
)

// AllJobs lists every assignable position.
var AllJobs = []Job{
	JobOperations,
	JobEngineer,
	JobBusiness,
	JobManagement,
	JobRandD,
	JobTraining,
	JobUnassigned,
}

// ValidJob reports whether s names an assignable position.
func ValidJob(s string) bool {
	for _, j := range AllJobs {
		if string(j) == s {
			return true
		}
	}
	return false
}
