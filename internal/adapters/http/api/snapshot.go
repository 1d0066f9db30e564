// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/laddr/internal/adapters/repository"
	"github.com/okian/laddr/internal/domain/model"
)

// maxSnapshotBytes bounds the accepted document size.
const maxSnapshotBytes = 64 << 20

// SnapshotDependencies defines the interface for snapshot replacement.
type SnapshotDependencies interface {
	ReplaceSnapshot(ctx context.Context, doc *repository.Document) (*model.Snapshot, error)
}

// SnapshotHandler handles snapshot load requests.
type SnapshotHandler struct {
	deps SnapshotDependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps SnapshotDependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

type snapshotResponse struct {
	Status      string `json:"status"`
	Employees   int    `json:"employees"`
	Positions   int    `json:"positions"`
	CareerPaths int    `json:"career_paths"`
}

// HandlePutSnapshot handles PUT /snapshot requests. The body is a full
// organizational document in YAML (default) or JSON, replacing whatever
// snapshot was loaded before.
func (h *SnapshotHandler) HandlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	var doc repository.Document
	if strings.Contains(r.Header.Get("Content-Type"), "json") {
		err = json.Unmarshal(body, &doc)
	} else {
		err = yaml.Unmarshal(body, &doc)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	snap, err := h.deps.ReplaceSnapshot(r.Context(), &doc)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSnapshot) || errors.Is(err, repository.ErrInvalidDocument) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_snapshot", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse{
		Status:      "loaded",
		Employees:   snap.EmployeeCount(),
		Positions:   snap.PositionCount(),
		CareerPaths: snap.PathCount(),
	})
}
