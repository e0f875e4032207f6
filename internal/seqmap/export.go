// Package seqmap is the handshake with the external off-target matcher:
// export candidates to files it can read, run it, and import its hit table.
package seqmap

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"bedesign-core/guide"
)

const (
	candidatesFile = "candidates.tsv"
	spacersFile    = "spacers.fa"
	resultFile     = "seqmap_out.txt"
)

// Job is one exported off-target search.
type Job struct {
	Dir        string // scratch directory holding the exported files and the result
	Candidates string // name, start, end, protospacer, window
	Spacers    string // FASTA of spacer sequences (no PAM)
	Result     string // where the matcher must write its table
	Genome     string
	MaxMM      int
}

// Export writes the candidate table and the spacer FASTA into dir.
func Export(dir string, cands []guide.Candidate, genome string, maxMM int) (Job, error) {
	job := Job{
		Dir:        dir,
		Candidates: filepath.Join(dir, candidatesFile),
		Spacers:    filepath.Join(dir, spacersFile),
		Result:     filepath.Join(dir, resultFile),
		Genome:     genome,
		MaxMM:      maxMM,
	}
	if err := writeFile(job.Candidates, func(w *bufio.Writer) error {
		for _, c := range cands {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", c.Name, c.Start, c.End, c.Text, c.Window); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return job, err
	}
	if err := writeFile(job.Spacers, func(w *bufio.Writer) error {
		for _, c := range cands {
			if _, err := fmt.Fprintf(w, ">%s\n%s\n", c.Name, c.Spacer); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return job, err
	}
	return job, nil
}

func writeFile(path string, body func(*bufio.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	w := bufio.NewWriter(fh)
	if err := body(w); err != nil {
		_ = fh.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return fh.Close()
}
