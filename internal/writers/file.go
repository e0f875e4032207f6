// internal/writers/file.go
package writers

import (
	"bufio"
	"io"
	"os"

	"bedesign/internal/output"
)

// WriteReportFile renders r into path, replacing any existing file. A path
// of "-" writes to stdout. existed tells whether a file was overwritten.
func WriteReportFile(path, format string, stdout io.Writer, r output.Report) (existed bool, err error) {
	if path == "-" {
		bw := bufio.NewWriter(stdout)
		if err := WriteReport(format, bw, r); err != nil {
			return false, err
		}
		return false, bw.Flush()
	}
	if _, statErr := os.Stat(path); statErr == nil {
		existed = true
	}
	fh, err := os.Create(path)
	if err != nil {
		return existed, err
	}
	bw := bufio.NewWriter(fh)
	if err := WriteReport(format, bw, r); err != nil {
		_ = fh.Close()
		return existed, err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return existed, err
	}
	return existed, fh.Close()
}
