package server

import (
	"net/http"

	"entraide/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	session, _ := r.Context().Value(contextKeySession).(*types.Session)

	if setter, ok := data.(types.NavbarDataSetter); ok {
		navbar := types.NavbarData{}
		if session.Authenticated() {
			navbar = types.NavbarData{
				IsAuthenticated: true,
				UserID:          session.UserID,
				UserEmail:       session.Email,
				UserName:        session.Name,
			}
		}
		setter.SetNavbarData(navbar)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}
