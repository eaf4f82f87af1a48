package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/sortviz/internal/experiment"
)

type ExportData struct {
	RunMetadata
	Trace []TraceRow `json:"trace"`
}

type TraceRow struct {
	Step        int    `json:"step"`
	Kind        string `json:"kind"`
	Compare     int    `json:"compare"`
	Target      int    `json:"target"`
	Min         int    `json:"min"`
	Comparisons int    `json:"comparisons"`
	Writes      int    `json:"writes"`
}

func rows(steps []experiment.Step) []TraceRow {
	out := make([]TraceRow, len(steps))
	for i, st := range steps {
		out[i] = TraceRow{
			Step:        st.Index,
			Kind:        st.Kind.String(),
			Compare:     st.Compare,
			Target:      st.Target,
			Min:         st.Min,
			Comparisons: st.Comparisons,
			Writes:      st.Writes,
		}
	}
	return out
}

// ExportJSON writes the metadata and trace of a run as one document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Trace: rows(steps)})
}

// ExportCSV copies the stored trace of a run.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if os.IsNotExist(err) {
			_, lerr := s.Load(runID)
			if lerr != nil {
				return lerr
			}
		}
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
