package main

import (
	"encoding/json"
	"net/http"

	"github.com/qbits/fairq"
	"github.com/sirupsen/logrus"
)

type statusHTTP struct {
	queue *fairq.Queue
}

type statusResponse struct {
	Key     string `json:"key"`
	Size    int    `json:"size"`
	Waiting int    `json:"waiting"`
	Visited uint64 `json:"visited"`
}

func (h *statusHTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Key:     h.queue.Key(),
		Size:    h.queue.Size(),
		Waiting: h.queue.Waiting(),
		Visited: h.queue.Visited(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logrus.Error("err ", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
