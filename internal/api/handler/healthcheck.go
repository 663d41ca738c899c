package handler

import (
	"net/http"
	"time"
)

type healthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC(),
		})
	})
}
