// internal/output/common.go
package output

import (
	"bedesign-core/offtarget"
	"bedesign-core/pam"
)

// Report is everything a writer needs to render one run.
type Report struct {
	PAM   string
	End   pam.End
	MaxMM int
	Rows  []offtarget.Row
}
