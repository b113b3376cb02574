package tracking

import (
	"github.com/LdDl/tower-aim/aim"
	"github.com/pkg/errors"
)

// Tracker keeps a lock on the engaged target while pipeline keeps reporting it.
// It consumes published estimates: the pipeline itself stays stateless.
type Tracker struct {
	lock *TargetLock
	// Max number of frames in a row without target before lock is dropped. Default is 15
	maxNoMatch int
	// Min match score for estimate to continue current lock. Default is 0.3
	minScore float64
	// Time between frames, seconds
	dt float64
}

// NewTrackerDefault creates default instance of Tracker (30 fps camera)
func NewTrackerDefault() *Tracker {
	return NewTracker(15, 0.3, 1.0/30.0)
}

// NewTracker creates new instance of Tracker
func NewTracker(maxNoMatch int, minScore, dt float64) *Tracker {
	return &Tracker{
		maxNoMatch: maxNoMatch,
		minScore:   minScore,
		dt:         dt,
	}
}

// Current returns current lock if any
func (tracker *Tracker) Current() (*TargetLock, bool) {
	return tracker.lock, tracker.lock != nil
}

// Observe feeds estimate of a single run. Invalid estimate counts as a miss.
// Estimate far from predicted position starts a new lock.
func (tracker *Tracker) Observe(estimate aim.TargetEstimate) error {
	if !estimate.Valid {
		if tracker.lock == nil {
			return nil
		}
		tracker.lock.PredictNextPosition()
		tracker.lock.IncNoMatch()
		if tracker.lock.GetNoMatchTimes() > tracker.maxNoMatch {
			tracker.lock = nil
		}
		return nil
	}
	if tracker.lock == nil {
		tracker.lock = NewTargetLockWithTime(estimate, tracker.dt)
		return nil
	}
	tracker.lock.PredictNextPosition()
	score := matchScore(tracker.lock.GetPredictedBBox(), estimate.BoundingBox)
	if score <= tracker.minScore {
		tracker.lock = NewTargetLockWithTime(estimate, tracker.dt)
		return nil
	}
	err := tracker.lock.Update(estimate)
	if err != nil {
		return errors.Wrapf(err, "Can't update lock with id %s", tracker.lock.GetID().String())
	}
	return nil
}

// matchScore is hybrid IoU + distance similarity in [0, 1].
// Favors IoU when boxes overlap, falls back to (lower weighted) center distance otherwise.
func matchScore(predicted, measured aim.Rectangle) float64 {
	iouValue := aim.IoU(predicted, measured)
	distance := aim.EuclideanDistance(predicted.Center(), measured.Center())
	distanceScore := 1.0 / (1.0 + distance*0.01)
	if iouValue > 0.05 {
		return iouValue*0.8 + distanceScore*0.2
	}
	return distanceScore * 0.5
}
