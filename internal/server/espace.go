package server

import (
	"net/http"

	"entraide/pkg/types"
)

// handleGetEspace renders the signed-in user's dashboard: needs they
// created (with resolve actions for open ones) and needs they joined.
func (s *Service) handleGetEspace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		s.redirectToLogin(w, r)
		return
	}

	created, err := s.needsRepo.NeedsByCreator(ctx, session.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", session.UserID).Error("failed to fetch created needs")
		s.internalServerError(w)
		return
	}

	participated, err := s.needsRepo.NeedsParticipatedIn(ctx, session.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", session.UserID).Error("failed to fetch participated needs")
		s.internalServerError(w)
		return
	}

	data := &types.EspacePageData{
		BasePageData:      types.BasePageData{Title: "Mon espace"},
		Notice:            r.URL.Query().Get("notice"),
		Error:             r.URL.Query().Get("error"),
		CreatedNeeds:      created,
		ParticipatedNeeds: participated,
		HasCreated:        len(created) > 0,
		HasParticipated:   len(participated) > 0,
	}

	if err := s.renderTemplate(w, r, "page.espace", data); err != nil {
		s.logger.WithError(err).Error("failed to render espace page")
		s.internalServerError(w)
		return
	}
}
