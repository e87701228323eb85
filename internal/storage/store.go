package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/eduvision/internal/automation"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var ErrBadRunID = errors.New("storage: invalid run id")

var frameHeader = []string{"step", "action", "at_ms", "loading", "category", "model", "rotating", "zoom", "dimensions", "tab", "note"}

// Store keeps recorded tour runs, one directory per run.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Tour      string    `json:"tour"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Realtime  bool      `json:"realtime"`
	Frames    int       `json:"frames"`
	// DurationMS is the tour time of the last frame.
	DurationMS int64  `json:"duration_ms"`
	FinalModel string `json:"final_model"`
}

// Save writes the frames of one tour run and returns its id.
func (s *Store) Save(tour *automation.Tour, seed int64, realtime bool, frames []automation.Frame) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%s_%s", slug(tour.Name), ts.Format("20060102T150405"), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Tour:      tour.Name,
		Category:  tour.Category,
		Timestamp: ts,
		Seed:      seed,
		Realtime:  realtime,
		Frames:    len(frames),
	}
	if n := len(frames); n > 0 {
		meta.DurationMS = frames[n-1].At.Milliseconds()
		meta.FinalModel = frames[n-1].State.ModelID
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), frames); err != nil {
		return "", err
	}
	return runID, nil
}

// slug reduces a tour name to lower-case letters, digits and single dashes.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "tour"
	}
	return out
}

// runDir resolves runID to its directory, rejecting anything that is not a
// single path element.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadRunID, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFrames(path string, frames []automation.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(frameHeader); err != nil {
		return err
	}
	for _, fr := range frames {
		st := fr.State
		row := []string{
			strconv.Itoa(fr.Step),
			fr.Action,
			strconv.FormatInt(fr.At.Milliseconds(), 10),
			strconv.FormatBool(st.Loading),
			st.Category.String(),
			st.ModelID,
			strconv.FormatBool(st.Rotating),
			strconv.FormatFloat(st.Zoom, 'f', 1, 64),
			strconv.FormatBool(st.ShowDimensions),
			st.Tab.String(),
			fr.Note,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Zooms returns the zoom level after every frame of a run, for plotting.
func (s *Store) Zooms(runID string) ([]float64, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, framesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	col := -1
	for i, h := range records[0] {
		if h == "zoom" {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s: no zoom column", framesFile)
	}

	zooms := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if col >= len(rec) {
			continue
		}
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			continue
		}
		zooms = append(zooms, v)
	}
	return zooms, nil
}
