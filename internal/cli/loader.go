package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/gauge/internal/scenario"
)

// LoadResult contains the scenarios loaded from a directory.
type LoadResult struct {
	Scenarios []*scenario.Scenario
	FileCount int // Number of CUE files found
}

// LoadError represents an error that occurred during scenario loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeCompile     = "E007" // Scenario compile error
	ErrCodeEval        = "E008" // Scenario evaluation error
	ErrCodeStore       = "E009" // Reading store error
	ErrCodeBadReadings = "E010" // Malformed readings file
)

// LoadScenarios loads and compiles every CUE scenario file in a
// directory. Each file is an independent scenario; files are processed
// in sorted path order for deterministic output.
func LoadScenarios(dir string) (*LoadResult, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scenario directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing scenario directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	result := &LoadResult{FileCount: len(cueFiles)}

	for _, file := range cueFiles {
		rel, relErr := filepath.Rel(dir, file)
		if relErr != nil {
			rel = file
		}
		instances := load.Instances([]string{rel}, &load.Config{Dir: dir})
		if len(instances) == 0 {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("no CUE instance loaded for %s", file)}
		}
		inst := instances[0]
		if inst.Err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading %s: %v", file, inst.Err)}
		}

		value := ctx.BuildInstance(inst)
		if err := value.Err(); err != nil {
			return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building %s: %v", file, err)}
		}

		s, err := scenario.Compile(value)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("compiling %s: %v", file, err)}
		}
		if s.Name == "" {
			// Default the scenario name to the file stem.
			s.Name = trimCUEExt(filepath.Base(file))
		}
		result.Scenarios = append(result.Scenarios, s)
	}

	return result, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths in
// sorted order (filepath.Walk visits lexically).
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func trimCUEExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
