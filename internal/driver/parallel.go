package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"appian/internal/diag"
	"appian/internal/parser"
	"appian/internal/source"
	"appian/internal/trace"
)

// Ext is the source file extension picked up by ParseDir.
const Ext = ".appian"

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet; при ошибке загрузки это пустой виртуальный файл
	Result parser.Result
	Bag    *diag.Bag
}

// ListSourceFiles возвращает отсортированный список всех *.appian файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir парсит все *.appian файлы в директории параллельно.
// FileSet заполняется до старта воркеров и дальше только читается;
// у каждого воркера свой лексер, парсер и bag.
func ParseDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		opts.emit(path, StageLoad, StatusQueued)
	}
	loadIdx := opts.Timer.Begin("load")
	for _, path := range files {
		fileID, err := fileSet.LoadWithOptions(path, opts.loadOptions())
		if err != nil {
			// пустой виртуальный файл, чтобы диагностике было на что сослаться
			fileID = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = fileID
	}
	opts.Timer.End(loadIdx, fmt.Sprintf("%d files", len(files)))

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tr := trace.FromContext(ctx)
	dirSpan := trace.Begin(tr, trace.LevelPhase, "parse-dir", trace.ParentSpan(ctx))
	defer dirSpan.End("")

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			fileID := fileIDs[path]
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileID}, "failed to load file: "+loadErr.Error()))
				trace.Fault(tr, "load-error", path, dirSpan.ID())
				results[i] = ParseDirResult{Path: path, FileID: fileID, Bag: bag}
				opts.emit(path, StageLoad, StatusError)
				return nil
			}

			fileSpan := trace.Begin(tr, trace.LevelDetail, "file:"+path, dirSpan.ID())
			fctx := trace.WithSpan(gctx, fileSpan)

			// фазы отдельных файлов не складываются в общий total
			fopts := opts
			fopts.Timer = nil

			res, _, err := parseFile(fctx, fileSet.Get(fileID), fopts, bag)
			fileSpan.End("")
			if err != nil {
				opts.emit(path, StageParse, StatusError)
				return err
			}
			bag.Sort()
			if bag.HasErrors() {
				opts.emit(path, StageParse, StatusError)
			} else {
				opts.emit(path, StageParse, StatusDone)
			}
			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				Result: res,
				Bag:    bag,
			}
			return nil
		})
	}

	parseIdx := opts.Timer.Begin("parse")
	err = g.Wait()
	opts.Timer.End(parseIdx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
