package systems

// Pass IDs, in execution order. The perf collector and the status views key
// on these.
const (
	PassSeason    = "season"
	PassGrass     = "grass"
	PassMovement  = "movement"
	PassLifecycle = "lifecycle"
	PassTelemetry = "telemetry"
)

// SystemInfo describes one pass of the tick pipeline for display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this pass does
	Category    string // "core" or "internal"
}

// SystemRegistry holds metadata about all passes.
// This centralizes naming so logs and the perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with every pass registered in order.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the tick pipeline. Keep in execution order.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PassSeason, Name: "Season", Description: "Derives the season from the tick", Category: "core"})
	r.Register(SystemInfo{ID: PassGrass, Name: "Grass", Description: "Grows and ages grass in place", Category: "core"})
	r.Register(SystemInfo{ID: PassMovement, Name: "Movement", Description: "Moves, feeds and ages animals into the next buffer", Category: "core"})
	r.Register(SystemInfo{ID: PassLifecycle, Name: "Lifecycle", Description: "Culls, counts and breeds animals", Category: "core"})
	r.Register(SystemInfo{ID: PassTelemetry, Name: "Telemetry", Description: "Records samples and window stats", Category: "internal"})
}

// Register adds a pass to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns pass info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a pass ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered passes.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all pass IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
