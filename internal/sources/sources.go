/*
Package sources reads tool records from the comparison site's data files.

Each data file declares one array of records in JavaScript:

	const specialized_assistants = [
	  { "Tool": "Moddy", "Homepage": "https://www.moderne.io/" }
	];

Loading is a two-stage pipeline: StripDeclaration removes the JavaScript framing,
then Decode parses what remains as JSON.
*/
package sources

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/aitoolcomparator/tool-pages/internal/record"
)

// Source is one data file and the category its records default to.
type Source struct {
	// Path is the filesystem path of the data file.
	Path string

	// Category tags records that carry none. Empty means no tagging.
	Category string
}

// Name returns the source identifier shown in console output.
func (s Source) Name() string {
	return filepath.Base(s.Path)
}

// Report describes the outcome of loading one source.
type Report struct {
	Source Source
	Loaded int
	Tagged int
	Err    error
}

// Result contains the records of every source that loaded, in configured order.
type Result struct {
	Records []record.Record
	Reports []Report
}

// Failed returns the reports of sources that were skipped.
func (r *Result) Failed() []Report {
	var failed []Report
	for _, rep := range r.Reports {
		if rep.Err != nil {
			failed = append(failed, rep)
		}
	}
	return failed
}

// Load reads and decodes a single source. It does not apply the category.
func Load(src Source) ([]record.Record, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: src.Path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}

	body, err := StripDeclaration(string(data))
	if err != nil {
		return nil, &DecodeError{Path: src.Path, Err: err}
	}

	records, err := Decode([]byte(body))
	if err != nil {
		return nil, &DecodeError{Path: src.Path, Err: err}
	}

	return records, nil
}

// Loader loads a list of sources, skipping the ones that fail.
type Loader struct {
	logger *zap.Logger
	out    io.Writer
}

// NewLoader creates a Loader that prints per-source counts to out.
func NewLoader(logger *zap.Logger, out io.Writer) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Loader{logger: logger.Named("sources"), out: out}
}

// LoadAll loads every source independently. A missing or undecodable source is
// logged and skipped; it never prevents the remaining sources from loading.
func (l *Loader) LoadAll(srcs []Source) *Result {
	result := &Result{}

	for _, src := range srcs {
		report := Report{Source: src}

		records, err := Load(src)
		if err != nil {
			report.Err = err
			result.Reports = append(result.Reports, report)
			l.logFailure(src, err)
			continue
		}

		report.Loaded = len(records)
		report.Tagged = Enrich(records, src.Category)
		result.Records = append(result.Records, records...)
		result.Reports = append(result.Reports, report)

		fmt.Fprintf(l.out, "  ✓ %s: %d records\n", src.Name(), report.Loaded)
		l.logger.Debug("loaded source",
			zap.String("path", src.Path),
			zap.Int("records", report.Loaded),
			zap.Int("tagged", report.Tagged),
			zap.String("category", src.Category))
	}

	return result
}

func (l *Loader) logFailure(src Source, err error) {
	switch err.(type) {
	case *SourceNotFoundError:
		l.logger.Warn("data file not found, skipping", zap.String("path", src.Path))
	case *DecodeError:
		l.logger.Error("failed to parse data file, skipping", zap.String("path", src.Path), zap.Error(err))
	default:
		l.logger.Error("failed to load data file, skipping", zap.String("path", src.Path), zap.Error(err))
	}
}
