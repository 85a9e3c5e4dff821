// Package server exposes the simulation over HTTP for interactive
// front ends. Each request carries the full scene and source
// configuration; the server holds no simulation state between calls.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/optsim/go-optics-sim/pkg/heatmap"
	"github.com/optsim/go-optics-sim/pkg/simulator"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// Server handles web requests for the optics simulator
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SimulateRequest is one full simulation configuration from the client.
// Omitted fields fall back to the defaults.
type SimulateRequest struct {
	Mode           string           `json:"mode"`           // "fan" or "cone"
	MaxBounces     int              `json:"maxBounces"`     // bounce limit per ray
	InterfaceLevel *float64         `json:"interfaceLevel"` // water surface height
	MediumIndex    float64          `json:"mediumIndex"`    // refractive index below
	Source         *SourceParams    `json:"source"`         // light source geometry
	Obstacles      []ObstacleParams `json:"obstacles"`      // spherical obstacles
}

// SourceParams describes the light source.
type SourceParams struct {
	Position        [3]float64 `json:"position"`
	SpreadAngle     float64    `json:"spreadAngle"` // radians
	CenterAngle     float64    `json:"centerAngle"` // radians
	NumRays         int        `json:"numRays"`
	NumRaysRadial   int        `json:"numRaysRadial"`
	NumRaysCircular int        `json:"numRaysCircular"`
}

// ObstacleParams describes one obstacle.
type ObstacleParams struct {
	Position [3]float64 `json:"position"`
	Radius   float64    `json:"radius"`
}

// RayResult is one completed ray path.
type RayResult struct {
	Path      []vmath.Vec3 `json:"path"`
	Intensity float64      `json:"intensity"`
}

// SimulateResponse carries the completed batch back to the client.
type SimulateResponse struct {
	Rays     []RayResult     `json:"rays"`
	Heatmaps []heatmap.Map   `json:"heatmaps"`
	Stats    simulator.Stats `json:"stats"`
}

// Start begins serving HTTP requests
func (s *Server) Start() error {
	http.HandleFunc("/api/simulate", s.handleSimulate)
	http.HandleFunc("/api/defaults", s.handleDefaults)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting optics simulator server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleSimulate runs one synchronous simulation update and returns
// the traced ray paths, heatmaps and stats as JSON.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	cfg, err := req.toConfig()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := simulator.New(cfg).Update()
	log.Printf("Simulated %d rays (%s mode, %d obstacles)",
		result.Stats.RayCount, cfg.Mode, len(cfg.Obstacles))

	resp := SimulateResponse{
		Rays:     make([]RayResult, len(result.Rays)),
		Heatmaps: result.Heatmaps,
		Stats:    result.Stats,
	}
	for i, ray := range result.Rays {
		resp.Rays[i] = RayResult{Path: ray.Path, Intensity: ray.Intensity}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleDefaults returns the default configuration so clients can
// populate their controls.
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(simulator.DefaultConfig()); err != nil {
		log.Printf("Error encoding defaults: %v", err)
	}
}

// toConfig merges the request onto the default configuration.
func (req SimulateRequest) toConfig() (simulator.Config, error) {
	cfg := simulator.DefaultConfig()

	if req.Mode != "" {
		cfg.Mode = req.Mode
	}
	if req.MaxBounces > 0 {
		cfg.MaxBounces = req.MaxBounces
	}
	if req.InterfaceLevel != nil {
		cfg.InterfaceLevel = *req.InterfaceLevel
	}
	if req.MediumIndex > 0 {
		cfg.MediumIndex = req.MediumIndex
	}
	if req.Source != nil {
		cfg.Source = simulator.SourceConfig{
			Position:        req.Source.Position,
			SpreadAngle:     req.Source.SpreadAngle,
			CenterAngle:     req.Source.CenterAngle,
			NumRays:         req.Source.NumRays,
			NumRaysRadial:   req.Source.NumRaysRadial,
			NumRaysCircular: req.Source.NumRaysCircular,
		}
	}
	if req.Obstacles != nil {
		cfg.Obstacles = make([]simulator.ObstacleConfig, len(req.Obstacles))
		for i, o := range req.Obstacles {
			cfg.Obstacles[i] = simulator.ObstacleConfig{Position: o.Position, Radius: o.Radius}
		}
	}

	if err := cfg.Validate(); err != nil {
		return simulator.Config{}, err
	}
	return cfg, nil
}
