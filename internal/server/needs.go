package server

import (
	"errors"
	"net/http"

	"entraide/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleGetProposeNeed(w http.ResponseWriter, r *http.Request) {
	data := &types.ProposeNeedPageData{
		BasePageData: types.BasePageData{Title: "Proposer un besoin"},
		Cities:       types.Cities(),
		Categories:   types.Categories(),
	}

	if err := s.renderTemplate(w, r, "page.propose", data); err != nil {
		s.logger.WithError(err).Error("failed to render propose need page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostProposeNeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/proposer-un-besoin", "invalid form payload")
		return
	}

	var input types.CreateNeedInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode propose need form")
		s.redirectWithError(w, r, "/proposer-un-besoin", "invalid form payload")
		return
	}

	need, err := s.needsService.CreateNeed(ctx, session, input)
	if err != nil {

		var invalid *types.InvalidInputError
		if errors.As(err, &invalid) {
			data := &types.ProposeNeedPageData{
				BasePageData: types.BasePageData{Title: "Proposer un besoin"},
				Input:        input,
				Cities:       types.Cities(),
				Categories:   types.Categories(),
				Error:        "Please fix the highlighted fields.",
				FieldErrors:  invalid.Fields,
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			if err := s.renderTemplate(w, r, "page.propose", data); err != nil {
				s.logger.WithError(err).Error("failed to render propose need page with validation errors")
				s.internalServerError(w)
			}
			return
		}

		if errors.Is(err, types.ErrUnauthenticated) {
			s.redirectToLogin(w, r)
			return
		}

		s.logger.WithError(err).Error("failed to create need")
		s.internalServerError(w)
		return
	}

	s.logger.WithField("need_id", need.ID).Info("need created via form")
	s.redirectWithNotice(w, r, "/", "Votre besoin a été publié.")
}

func (s *Service) handlePostParticipate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	needID := flow.Param(ctx, "id")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	_, err = s.needsService.Participate(ctx, session, needID)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrAlreadyParticipating):
			s.redirectWithError(w, r, "/", "Vous participez déjà à ce besoin.")
		case errors.Is(err, types.ErrNeedNotFound):
			s.redirectWithError(w, r, "/", "Ce besoin n'existe plus.")
		case errors.Is(err, types.ErrUnauthenticated):
			s.redirectToLogin(w, r)
		default:
			var invalid *types.InvalidInputError
			if errors.As(err, &invalid) {
				s.redirectWithError(w, r, "/", "Identifiant de besoin invalide.")
				return
			}

			s.logger.WithError(err).WithField("need_id", needID).Error("failed to participate in need")
			s.internalServerError(w)
		}
		return
	}

	s.redirectWithNotice(w, r, "/", "Votre participation a été enregistrée.")
}

func (s *Service) handlePostResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	needID := flow.Param(ctx, "id")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	if err := s.needsService.ResolveNeed(ctx, session, needID); err != nil {
		if errors.Is(err, types.ErrUnauthenticated) {
			s.redirectToLogin(w, r)
			return
		}

		var invalid *types.InvalidInputError
		if errors.As(err, &invalid) {
			s.redirectWithError(w, r, "/mon-espace", "Identifiant de besoin invalide.")
			return
		}

		s.logger.WithError(err).WithField("need_id", needID).Error("failed to resolve need")
		s.internalServerError(w)
		return
	}

	s.redirectWithNotice(w, r, "/mon-espace", "Besoin marqué comme résolu.")
}
