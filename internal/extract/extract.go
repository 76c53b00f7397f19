// Package extract cuts detected scenes into individual video files.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/ffmpeg"
	"github.com/ogolknev/clip-factory/internal/logging"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
	"github.com/ogolknev/clip-factory/internal/util"
	"github.com/ogolknev/clip-factory/internal/worker"
)

// Options controls an extraction run.
type Options struct {
	// Workers is the number of concurrent ffmpeg cut processes.
	// Zero means util.DefaultExtractionWorkers().
	Workers int
	// OutputDir overrides the default "<stem>_scenes" directory next to
	// the input file.
	OutputDir string
}

// Result summarizes an extraction run. Files holds the output path per
// scene index; failed scenes leave an empty string.
type Result struct {
	Extracted int
	Failed    int
	OutputDir string
	Files     []string
}

// SceneFileName returns the output filename for the scene at the given
// zero-based index. Numbering starts at 001.
func SceneFileName(index int) string {
	return fmt.Sprintf("scene_%03d.mp4", index+1)
}

// Scenes extracts each scene from the source video into its own file
// using codec copy. Scenes are cut in parallel; a scene that fails to
// cut is reported and skipped, the rest of the batch continues.
func Scenes(ctx context.Context, videoPath string, scenes scene.List, opts Options, rep reporter.Reporter, logger *logging.Logger) (*Result, error) {
	if len(scenes) == 0 {
		return nil, errors.NewInvalidParameterError("no scenes to extract")
	}
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = util.SceneOutputDir(videoPath)
	}
	if err := util.EnsureDirectory(outputDir); err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("creating output directory %s", outputDir), err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = util.DefaultExtractionWorkers()
	}
	logger.Stage("extraction")
	logger.Info("Extracting %d scenes to %s with %d workers", len(scenes), outputDir, workers)

	rep.ExtractionStarted(len(scenes))

	sem := worker.NewSemaphore(workers)
	results := make(chan worker.Result, len(scenes))
	var wg sync.WaitGroup

	for i, s := range scenes {
		select {
		case <-ctx.Done():
			// Stop launching; in-flight cuts drain below.
		case <-sem.Chan():
			wg.Add(1)
			go func(idx int, sc scene.Scene) {
				defer wg.Done()
				defer sem.Release()
				results <- cutScene(ctx, videoPath, outputDir, idx, sc)
			}(i, s)
			continue
		}
		break
	}

	wg.Wait()
	close(results)

	result := &Result{
		OutputDir: outputDir,
		Files:     make([]string, len(scenes)),
	}
	outcomes := make(map[int]worker.Result, len(scenes))
	for r := range results {
		outcomes[r.SceneIdx] = r
	}

	for i := range scenes {
		r, ok := outcomes[i]
		if !ok {
			// Never launched: context was cancelled first.
			continue
		}
		if r.Error != nil {
			result.Failed++
			logger.Error("Scene %d failed: %v", i+1, r.Error)
			rep.SceneExtracted(reporter.SceneOutcome{
				Index:   i + 1,
				Total:   len(scenes),
				Failed:  true,
				Message: r.Error.Error(),
			})
			continue
		}
		result.Extracted++
		result.Files[i] = r.OutputFile
		logger.Scene(i+1, len(scenes), "%s (%s)", r.OutputFile, util.FormatBytes(r.Size))
		rep.SceneExtracted(reporter.SceneOutcome{
			Index:      i + 1,
			Total:      len(scenes),
			OutputFile: r.OutputFile,
			Size:       r.Size,
		})
	}

	if ctx.Err() != nil {
		return result, errors.NewCancelledError()
	}

	rep.ExtractionComplete(reporter.ExtractionSummary{
		Extracted: result.Extracted,
		Failed:    result.Failed,
		OutputDir: outputDir,
	})
	logger.Info("Extraction complete: %d ok, %d failed", result.Extracted, result.Failed)

	return result, nil
}

func cutScene(ctx context.Context, videoPath, outputDir string, idx int, sc scene.Scene) worker.Result {
	outputFile := filepath.Join(outputDir, SceneFileName(idx))
	args := ffmpeg.BuildCutArgs(videoPath, sc.Start, sc.Duration(), outputFile)

	if err := ffmpeg.Run(ctx, args); err != nil {
		return worker.Result{SceneIdx: idx, Error: err}
	}

	size, err := util.GetFileSize(outputFile)
	if err != nil {
		return worker.Result{SceneIdx: idx, Error: errors.NewIOError("reading extracted scene size", err)}
	}
	return worker.Result{SceneIdx: idx, OutputFile: outputFile, Size: size}
}
