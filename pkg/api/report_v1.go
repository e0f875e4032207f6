// pkg/api/report_v1.go
package api

// ReportRowV1 is the stable JSON schema for one designed spacer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportRowV1 struct {
	ID        string `json:"id"`
	Record    string `json:"record"`
	Strand    string `json:"strand"` // "forward" | "reverse"
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Seq       string `json:"seq"`
	Spacer    string `json:"spacer"`
	PAM       string `json:"pam"`
	Window    []int  `json:"window_positions"`
	GC        string `json:"gc_content"`
	Mismatch  []int  `json:"mismatch_counts"` // index = mismatch level
	OffTarget int    `json:"off_target_total"`
}

// ReportV1 wraps the rows with the settings that shaped them.
type ReportV1 struct {
	PAM     string        `json:"pam"`
	PAMEnd  int           `json:"pam_end"`
	MaxMM   int           `json:"max_mismatch"`
	Spacers []ReportRowV1 `json:"spacers"`
}
