package tracking

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/LdDl/tower-aim/aim"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TargetLock is engaged target followed across frames.
// Pixel center is smoothed with 2D Kalman filter.
type TargetLock struct {
	id                    uuid.UUID
	currentBBox           aim.Rectangle
	currentCenter         aim.Point
	predictedNextPosition aim.Point
	distance              float64
	angle                 float64
	track                 []aim.Point
	maxTrackLen           int
	noMatchTimes          int
	tracker               *kalman_filter.Kalman2D
}

// NewTargetLockWithTime creates lock on valid estimate. dt is time between frames
func NewTargetLockWithTime(estimate aim.TargetEstimate, dt float64) *TargetLock {
	center := estimate.Center

	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(center.X, center.Y))
	lock := TargetLock{
		id:                    uuid.New(),
		currentBBox:           estimate.BoundingBox,
		currentCenter:         center,
		predictedNextPosition: center,
		distance:              estimate.Distance.Corrected,
		angle:                 estimate.Bearing.Average,
		track:                 make([]aim.Point, 0, 50),
		maxTrackLen:           50,
		noMatchTimes:          0,
		tracker:               kf,
	}
	lock.track = append(lock.track, lock.currentCenter)
	return &lock
}

// GetID returns lock's identifier
func (lock *TargetLock) GetID() uuid.UUID {
	return lock.id
}

// GetCenter returns smoothed target center, pixels
func (lock *TargetLock) GetCenter() aim.Point {
	return lock.currentCenter
}

// GetBBox returns target's bounding box shifted to smoothed center
func (lock *TargetLock) GetBBox() aim.Rectangle {
	return lock.currentBBox
}

// GetPredictedBBox returns bounding box centered on the predicted next position
func (lock *TargetLock) GetPredictedBBox() aim.Rectangle {
	return aim.Rectangle{
		X:      lock.predictedNextPosition.X - lock.currentBBox.Width/2.0,
		Y:      lock.predictedNextPosition.Y - lock.currentBBox.Height/2.0,
		Width:  lock.currentBBox.Width,
		Height: lock.currentBBox.Height,
	}
}

// GetDistance returns last corrected distance, feet
func (lock *TargetLock) GetDistance() float64 {
	return lock.distance
}

// GetAngle returns last averaged bearing, degrees
func (lock *TargetLock) GetAngle() float64 {
	return lock.angle
}

// GetTrack returns lock's track. Be careful: this is not copy of track, but reference to it
func (lock *TargetLock) GetTrack() []aim.Point {
	return lock.track
}

// SetMaxTrackLen sets lock's max track length
func (lock *TargetLock) SetMaxTrackLen(newMaxTrackLen int) {
	lock.maxTrackLen = newMaxTrackLen
}

// GetNoMatchTimes returns number of frames in a row without target
func (lock *TargetLock) GetNoMatchTimes() int {
	return lock.noMatchTimes
}

// IncNoMatch increases lock's no match times
func (lock *TargetLock) IncNoMatch() {
	lock.noMatchTimes++
}

// PredictNextPosition execute Kalman filter's first step but without re-evaluating state vector based on Kalman gain
func (lock *TargetLock) PredictNextPosition() {
	lock.tracker.Predict()
	stateX, stateY := lock.tracker.GetState()
	lock.predictedNextPosition.X = stateX
	lock.predictedNextPosition.Y = stateY
}

// Update corrects lock with new estimate (Kalman filter's second step)
func (lock *TargetLock) Update(estimate aim.TargetEstimate) error {
	err := lock.tracker.Update(estimate.Center.X, estimate.Center.Y)
	if err != nil {
		return errors.Wrap(err, "Can't update target tracker")
	}
	stateX, stateY := lock.tracker.GetState()
	lock.currentCenter = aim.Point{X: stateX, Y: stateY}
	lock.currentBBox = estimate.BoundingBox
	lock.currentBBox.X += stateX - estimate.Center.X
	lock.currentBBox.Y += stateY - estimate.Center.Y
	lock.distance = estimate.Distance.Corrected
	lock.angle = estimate.Bearing.Average
	lock.noMatchTimes = 0
	lock.track = append(lock.track, lock.currentCenter)
	if len(lock.track) > lock.maxTrackLen {
		lock.track = lock.track[1:]
	}
	return nil
}
