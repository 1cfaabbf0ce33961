package models

// Employee grades recognized by the allowance rules. The set is extensible:
// a grade is just a key into the configured allowance table.
const (
	GradeSME = "SME"
	GradeSE  = "SE"
	GradeMGR = "MGR"
	GradeDGM = "DGM"
	GradeGM  = "GM"
)

// Employee is one record from the static personnel directory.
// Immutable once loaded; looked up by personnel number.
type Employee struct {
	PersNo     string `json:"pers_no"`
	Name       string `json:"name"`
	Grade      string `json:"grade"`
	Position   string `json:"position"`
	Department string `json:"department"`
}
