package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Overland-East-Bay/name-sorter/internal/app/namelists"
	"github.com/Overland-East-Bay/name-sorter/internal/app/names"
	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/metrics"
)

const defaultMaxBodyBytes = 1 << 20

// Server is the HTTP adapter over the name sorting use-cases.
type Server struct {
	NameLists *namelists.Service
	Metrics   *metrics.Metrics
	Log       *zap.Logger

	// MaxBodyBytes caps request bodies; zero means 1 MiB.
	MaxBodyBytes int64
}

func NewServer(nameListsSvc *namelists.Service, m *metrics.Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		NameLists:    nameListsSvc,
		Metrics:      m,
		Log:          log,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// SortNames sorts a text/plain body of one name per line and returns the sorted lines.
func (s *Server) SortNames(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	sorted := names.SortNames(names.ParseLines(lines))
	s.Metrics.ObserveSort("sort", len(sorted))

	var b strings.Builder
	for _, line := range names.FormatNames(sorted) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, b.String())
}

func (s *Server) CreateNameList(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req CreateNameListRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", map[string]any{"body": err.Error()})
		return
	}

	in := namelists.CreateNameListInput{Names: req.Names}
	if req.Label.IsSpecified() && !req.Label.IsNull() {
		if v, err := req.Label.Get(); err == nil {
			in.Label = &v
		}
	}

	nl, err := s.NameLists.CreateNameList(r.Context(), in)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	s.Metrics.ObserveSort("name-lists", len(nl.Names))
	s.Metrics.IncrementNameListsCreated()

	out, err := nameListFromDomain(nl)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, NameListResponse{NameList: out})
}

func (s *Server) ListNameLists(w http.ResponseWriter, r *http.Request) {
	nls, err := s.NameLists.ListNameLists(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	out := make([]NameList, 0, len(nls))
	for _, nl := range nls {
		dto, err := nameListFromDomain(nl)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		out = append(out, dto)
	}
	writeJSON(w, http.StatusOK, NameListsResponse{NameLists: out})
}

func (s *Server) GetNameList(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "nameListId")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid nameListId", map[string]any{"nameListId": "must be a UUID"})
		return
	}

	nl, err := s.NameLists.GetNameList(r.Context(), domain.NameListID(id.String()))
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	out, err := nameListFromDomain(nl)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NameListResponse{NameList: out})
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := s.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large", map[string]any{"limitBytes": mbe.Limit})
			return nil, false
		}
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "failed to read request body", nil)
		return nil, false
	}
	return body, true
}
