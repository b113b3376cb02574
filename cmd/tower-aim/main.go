package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/LdDl/tower-aim/aim"
	"github.com/LdDl/tower-aim/tracking"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("config", "", "Path to YAML calibration file. Built-in 2016 calibration is used when empty")
	framesPath = flag.String("frames", "", "Path to frames file: one frame per line, ';'-separated: width;height;BFR coordinates...")
	maxNoMatch = flag.Int("max-no-match", 15, "Number of frames without target before lock is dropped")
	fps        = flag.Float64("fps", 30, "Camera frame rate")
	lockAngle  = flag.Float64("lock-angle", 5, "Max bearing (degrees) to report target lock")
	quiet      = flag.Bool("quiet", false, "Mute pipeline diagnostics")
)

func main() {
	flag.Parse()
	if *framesPath == "" {
		log.Fatalln("-frames is required")
	}
	if *quiet {
		aim.SetLogger(nil)
	}

	cfg := aim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = aim.LoadConfig(*configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}
	pipeline, err := aim.NewPipeline(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	file, err := os.Open(*framesPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer file.Close()

	tracker := tracking.NewTracker(*maxNoMatch, 0.3, 1.0/(*fps))
	store := aim.NewMemoryStore()
	err = replay(file, pipeline, tracker, store)
	if err != nil {
		log.Fatalln(err)
	}
}

// replay feeds every frame through the pipeline the same way the vision host does: via the variable store
func replay(r io.Reader, pipeline *aim.Pipeline, tracker *tracking.Tracker, store *aim.MemoryStore) error {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for frameIdx := 0; ; frameIdx++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "Can't read frame %d", frameIdx)
		}
		width, height, coordinates, err := parseFrame(record)
		if err != nil {
			return errors.Wrapf(err, "Bad frame %d", frameIdx)
		}
		store.SetNumber(aim.VarImageWidth, width)
		store.SetNumber(aim.VarImageHeight, height)
		store.SetArray(aim.VarCoordinates, coordinates)

		report, runErr := pipeline.Process(store)
		err = tracker.Observe(report.Estimate)
		if err != nil {
			return errors.Wrapf(err, "Can't track frame %d", frameIdx)
		}
		log.Println(describe(frameIdx, report, runErr, tracker, *lockAngle))
	}
}

func parseFrame(record []string) (float64, float64, []float64, error) {
	if len(record) < 2 {
		return 0, 0, nil, fmt.Errorf("expected at least width and height, got %d fields", len(record))
	}
	values := make([]float64, len(record))
	for i, field := range record {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, 0, nil, errors.Wrapf(err, "field %d", i)
		}
		values[i] = value
	}
	return values[0], values[1], values[2:], nil
}

func describe(frameIdx int, report aim.Report, runErr error, tracker *tracking.Tracker, lockAngle float64) string {
	estimate := report.Estimate
	if !estimate.Valid {
		return fmt.Sprintf("frame=%d valid=false reason=%q", frameIdx, runErr)
	}
	lockID := "-"
	if lock, ok := tracker.Current(); ok {
		lockID = lock.GetID().String()
	}
	return fmt.Sprintf("frame=%d valid=true distance=%.2fft angle=%.2fdeg center=(%.2f,%.2f) targets=%d index=%d in_range=%t turn=%s locked=%t lock_id=%s",
		frameIdx,
		estimate.Distance.Corrected,
		estimate.Bearing.Average,
		estimate.NormalizedCenter.X, estimate.NormalizedCenter.Y,
		estimate.NumTargets,
		report.SelectedIndex,
		estimate.InRange,
		estimate.Direction(),
		estimate.Locked(lockAngle),
		lockID,
	)
}
