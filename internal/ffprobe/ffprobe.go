// Package ffprobe provides functions for extracting media information using ffprobe.
package ffprobe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/util"
)

// MediaInfo contains the media properties the detection pipeline needs.
type MediaInfo struct {
	Duration    float64
	Width       int64
	Height      int64
	FrameRate   float64
	TotalFrames uint64
}

// ffprobeOutput represents the JSON output from ffprobe.
type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType    string `json:"codec_type"`
	Width        int64  `json:"width"`
	Height       int64  `json:"height"`
	NbFrames     string `json:"nb_frames"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	Duration     string `json:"duration"`
}

// runFFprobe executes ffprobe and returns the parsed output.
func runFFprobe(inputPath string) (*ffprobeOutput, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, errors.NewUnreadableMediaError(
			fmt.Sprintf("cannot open %s", inputPath), err)
	}

	var result ffprobeOutput
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, errors.NewJSONParseError("failed to parse ffprobe output", err)
	}

	return &result, nil
}

// GetMediaInfo returns the media properties for a video file.
// Files without a video stream or with a non-positive duration are
// reported as unreadable media.
func GetMediaInfo(inputPath string) (*MediaInfo, error) {
	probe, err := runFFprobe(inputPath)
	if err != nil {
		return nil, err
	}

	info := &MediaInfo{}

	if probe.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
			info.Duration = d
		}
	}

	var video *ffprobeStream
	for i := range probe.Streams {
		if probe.Streams[i].CodecType == "video" {
			video = &probe.Streams[i]
			break
		}
	}
	if video == nil {
		return nil, errors.NewUnreadableMediaError(
			fmt.Sprintf("no video stream found in %s", inputPath), nil)
	}

	info.Width = video.Width
	info.Height = video.Height

	if fps, ok := util.ParseRational(video.AvgFrameRate); ok && fps > 0 {
		info.FrameRate = fps
	} else if fps, ok := util.ParseRational(video.RFrameRate); ok && fps > 0 {
		info.FrameRate = fps
	}

	if video.NbFrames != "" {
		if frames, err := strconv.ParseUint(video.NbFrames, 10, 64); err == nil {
			info.TotalFrames = frames
		}
	}

	// Some containers only carry a per-stream duration.
	if info.Duration <= 0 && video.Duration != "" {
		if d, err := strconv.ParseFloat(video.Duration, 64); err == nil {
			info.Duration = d
		}
	}
	if info.Duration <= 0 && info.FrameRate > 0 && info.TotalFrames > 0 {
		info.Duration = float64(info.TotalFrames) / info.FrameRate
	}

	if info.Duration <= 0 {
		return nil, errors.NewUnreadableMediaError(
			fmt.Sprintf("cannot determine duration of %s", inputPath), nil)
	}

	return info, nil
}
