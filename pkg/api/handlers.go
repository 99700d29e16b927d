package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foliokit/folio/pkg/snapshot"
	"github.com/foliokit/folio/pkg/types"
)

// maxBodySize bounds request bodies. Snapshot documents for a personal
// site are small; anything bigger is a mistake or abuse.
const maxBodySize = 10 << 20

var errBadBody = errors.New("invalid request body")

// entityResource adapts one store entity to the generic content routes.
type entityResource struct {
	get func() any
	put func(body []byte) error
}

// collectionResource builds an entityResource over a typed collection.
// Records arriving without an ID get a runtime-assigned one.
func collectionResource[T any](get func() []T, set func([]T) error, ensureID func(*T)) entityResource {
	return entityResource{
		get: func() any { return get() },
		put: func(body []byte) error {
			var items []T
			if err := json.Unmarshal(body, &items); err != nil {
				return fmt.Errorf("%w: %v", errBadBody, err)
			}
			if items == nil {
				items = []T{}
			}
			for i := range items {
				ensureID(&items[i])
			}
			return set(items)
		},
	}
}

// entities maps URL entity names to their store accessors.
func (s *Server) entities() map[string]entityResource {
	st := s.store
	return map[string]entityResource{
		"profile": {
			get: func() any { return st.Profile() },
			put: func(body []byte) error {
				var p types.Profile
				if err := json.Unmarshal(body, &p); err != nil {
					return fmt.Errorf("%w: %v", errBadBody, err)
				}
				return st.SetProfile(p)
			},
		},
		"timeline": collectionResource(st.Timeline, st.SetTimeline, func(v *types.TimelineItem) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"projects": collectionResource(st.Projects, st.SetProjects, func(v *types.Project) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"publications": collectionResource(st.Publications, st.SetPublications, func(v *types.Publication) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"skills": collectionResource(st.Skills, st.SetSkills, func(v *types.Skill) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"blogs": collectionResource(st.Blogs, st.SetBlogs, func(v *types.BlogPost) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"news": collectionResource(st.News, st.SetNews, func(v *types.NewsItem) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"awards": collectionResource(st.Awards, st.SetAwards, func(v *types.Award) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"resources": collectionResource(st.Resources, st.SetResources, func(v *types.Resource) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"gallery": collectionResource(st.Gallery, st.SetGallery, func(*string) {}),
		"personal-dev": collectionResource(st.PersonalDev, st.SetPersonalDev, func(v *types.PersonalDevItem) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"testimonials": collectionResource(st.Testimonials, st.SetTestimonials, func(v *types.Testimonial) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
		"affiliations": collectionResource(st.Affiliations, st.SetAffiliations, func(v *types.Affiliation) {
			if v.ID == "" {
				v.ID = types.NewID()
			}
		}),
	}
}

// handleGetEntity handles GET /api/v1/content/{entity}.
func (s *Server) handleGetEntity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "entity")
	res, ok := s.entities()[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown entity: "+name)
		return
	}
	writeJSON(w, http.StatusOK, res.get())
}

// handlePutEntity handles PUT /api/v1/content/{entity}: full replacement
// of the entity value.
func (s *Server) handlePutEntity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "entity")
	res, ok := s.entities()[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown entity: "+name)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := res.put(body); err != nil {
		if errors.Is(err, errBadBody) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("entity", name).Msg("write failed")
		s.bus.Error("Could not save changes")
		writeError(w, http.StatusInternalServerError, "failed to persist "+name)
		return
	}

	s.bus.Success("Changes saved")
	writeJSON(w, http.StatusOK, res.get())
}

// handleLogin handles POST /api/v1/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !s.gate.Login(req.Email, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.sessions.issue()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue session token")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":         token,
		"authenticated": true,
		"editing":       s.gate.Editing(),
	})
}

// handleLogout handles POST /api/v1/auth/logout.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.gate.Logout()
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

// handleChangePassword handles POST /api/v1/auth/password.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.gate.ChangePassword(req.Password); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save new password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"changed": true})
}

// handleToggleEditing handles POST /api/v1/auth/editing.
func (s *Server) handleToggleEditing(w http.ResponseWriter, r *http.Request) {
	s.gate.ToggleEditing()
	writeJSON(w, http.StatusOK, map[string]any{"editing": s.gate.Editing()})
}

// handleSession handles GET /api/v1/auth/session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if s.authenticate(r) != nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false, "editing": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"editing":       s.gate.Editing(),
	})
}

// handleNotification handles GET /api/v1/notification: consume the
// pending notification, 204 when there is none.
func (s *Server) handleNotification(w http.ResponseWriter, r *http.Request) {
	n, ok := s.bus.Consume()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// handleExport handles GET /api/v1/snapshot: download the full backup.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc := s.snapshots.Export()

	filename := "folio-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, doc)
}

// handleImport handles POST /api/v1/snapshot: restore a backup.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := s.snapshots.Import(body); err != nil {
		if errors.Is(err, snapshot.ErrMalformed) {
			writeError(w, http.StatusBadRequest, "invalid backup document")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to restore backup")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"restored": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
