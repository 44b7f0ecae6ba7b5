package server

import (
	"net/http"

	"entraide/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters := types.NeedFilters{
		City:     r.URL.Query().Get("city"),
		Category: r.URL.Query().Get("category"),
	}

	listing, err := s.needsRepo.NeedsWithCounts(ctx, filters)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch needs listing")
		s.internalServerError(w)
		return
	}

	// Per-need "already participating" state only matters for a
	// signed-in viewer.
	viewerParticipations := make(map[string]struct{})
	session, err := s.sessionFromContext(ctx)
	if err == nil {
		viewerParticipations, err = s.participationRepo.ParticipationNeedIDs(ctx, session.UserID)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", session.UserID).Error("failed to fetch viewer participations")
			s.internalServerError(w)
			return
		}
	}

	cards := make([]types.HomeNeedCard, 0, len(listing))
	for _, row := range listing {
		need := row.Need
		_, participates := viewerParticipations[need.ID]

		cards = append(cards, types.HomeNeedCard{
			Need:               &need,
			ParticipationCount: row.ParticipationCount,
			ViewerParticipates: participates,
			ViewerOwns:         session.Authenticated() && need.CreatedByUserID == session.UserID,
		})
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "Besoins locaux"},
		Notice:       r.URL.Query().Get("notice"),
		Error:        r.URL.Query().Get("error"),
		Needs:        cards,
		Cities:       types.Cities(),
		Categories:   types.Categories(),
		Filters:      filters,
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
