package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrRunNotFound = errors.New("run not found")

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

var traceHeader = []string{"step", "kind", "compare", "target", "min", "comparisons", "writes"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Algorithm    string             `json:"algorithm"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	Size         int                `json:"size"`
	Min          int                `json:"min"`
	Max          int                `json:"max"`
	Outcome      string             `json:"outcome"`
	Sorted       bool               `json:"sorted"`
	Steps        int                `json:"steps"`
	Presentation time.Duration      `json:"presentation_ns"`
	Metrics      map[string]float64 `json:"metrics"`
	Input        []int              `json:"input"`
	Output       []int              `json:"output"`
}

// Save writes one run directory holding metadata.json and trace.csv and
// returns the run id.
func (s *Store) Save(cfg experiment.Config, result *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", result.Algorithm, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)
	for n := 1; exists(runDir); n++ {
		runID = fmt.Sprintf("%s_%d_%d", result.Algorithm, now.UnixMilli(), n)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Algorithm:    result.Algorithm,
		Timestamp:    now,
		Seed:         cfg.Seed,
		Size:         len(result.Input),
		Min:          cfg.Min,
		Max:          cfg.Max,
		Outcome:      result.Outcome.String(),
		Sorted:       result.Sorted,
		Steps:        len(result.Steps),
		Presentation: result.Presentation,
		Metrics:      result.Metrics,
		Input:        result.Input,
		Output:       result.Output,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeTrace(csvFile, result.Steps); err != nil {
		return "", err
	}
	return runID, nil
}

func writeTrace(w io.Writer, steps []experiment.Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, st := range steps {
		row := []string{
			strconv.Itoa(st.Index),
			st.Kind.String(),
			strconv.Itoa(st.Compare),
			strconv.Itoa(st.Target),
			strconv.Itoa(st.Min),
			strconv.Itoa(st.Comparisons),
			strconv.Itoa(st.Writes),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]experiment.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s trace: %w", runID, err)
	}
	if len(records) < 2 {
		return []experiment.Step{}, nil
	}

	steps := make([]experiment.Step, 0, len(records)-1)
	for _, rec := range records[1:] {
		st, err := parseStep(rec)
		if err != nil {
			return nil, fmt.Errorf("read %s trace: %w", runID, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseStep(rec []string) (experiment.Step, error) {
	ints := make([]int, 0, 6)
	for i, field := range rec {
		if i == 1 {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return experiment.Step{}, err
		}
		ints = append(ints, v)
	}
	kind, err := parseKind(rec[1])
	if err != nil {
		return experiment.Step{}, err
	}
	return experiment.Step{
		Index:       ints[0],
		Kind:        kind,
		Compare:     ints[1],
		Target:      ints[2],
		Min:         ints[3],
		Comparisons: ints[4],
		Writes:      ints[5],
	}, nil
}

func parseKind(name string) (sorting.Kind, error) {
	for k := sorting.KindPlain; k <= sorting.KindFlash; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown frame kind %q", name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
