package aim

import "sync"

// Names of host variables
const (
	VarCoordinates = "BFR_COORDINATES"
	VarImageWidth  = "IMAGE_WIDTH"
	VarImageHeight = "IMAGE_HEIGHT"

	VarFilteredCoordinates = "BFR_postBADBLOB"
	VarFilteredLen         = "lenBFRpost"
	VarSelectedCoordinates = "rectCoor"
	VarSelectedLen         = "lenRectCoor"
	VarIndex               = "index"

	VarPixelHeight        = "targetPixelHeight"
	VarPixelWidth         = "targetPixelWidth"
	VarDistanceH          = "Distance_H"
	VarDistanceW          = "Distance_W"
	VarDistanceAvg        = "Distance_avg"
	VarDistanceHorizontal = "Horizontal distance"
	VarDistance           = "Distance"
	VarXLocation          = "X_Location"
	VarYLocation          = "Y_Location"
	VarXLocationD         = "X_LocationD"
	VarYLocationD         = "Y_LocationD"
	VarAngleH             = "Angle_H"
	VarAngleW             = "Angle_W"
	VarAngle              = "Angle"
	VarOffsetPx           = "Offset Px"
	VarNumTargets         = "Num_Targets"
	VarInRange            = "inRange"
	VarAligned            = "aligned"
	VarValidUpdate        = "validUpdate"
)

// VariableStore is the host environment's variable table
type VariableStore interface {
	GetArray(name string) ([]float64, bool)
	GetNumber(name string) (float64, bool)
	SetArray(name string, values []float64)
	SetNumber(name string, value float64)
	SetBool(name string, value bool)
}

// MemoryStore is in-process VariableStore
type MemoryStore struct {
	mu      sync.RWMutex
	arrays  map[string][]float64
	numbers map[string]float64
	bools   map[string]bool
}

// NewMemoryStore creates empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		arrays:  make(map[string][]float64),
		numbers: make(map[string]float64),
		bools:   make(map[string]bool),
	}
}

// GetArray returns copy of array variable
func (store *MemoryStore) GetArray(name string) ([]float64, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	values, ok := store.arrays[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), values...), true
}

// GetNumber returns numeric variable
func (store *MemoryStore) GetNumber(name string) (float64, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.numbers[name]
	return value, ok
}

// GetBool returns boolean variable
func (store *MemoryStore) GetBool(name string) (bool, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.bools[name]
	return value, ok
}

// SetArray stores copy of values
func (store *MemoryStore) SetArray(name string, values []float64) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.arrays[name] = append([]float64(nil), values...)
}

// SetNumber stores numeric variable
func (store *MemoryStore) SetNumber(name string, value float64) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.numbers[name] = value
}

// SetBool stores boolean variable
func (store *MemoryStore) SetBool(name string, value bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.bools[name] = value
}
