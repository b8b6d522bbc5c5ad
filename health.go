package biketraffic

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
	Trips    int    `json:"trips"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:   "ok",
		Stations: len(a.engine.Stations()),
		Trips:    a.engine.TripCount(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
