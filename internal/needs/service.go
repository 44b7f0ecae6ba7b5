// Package needs holds the write side of the board: creating a need,
// committing to one, and marking one resolved. Every operation takes the
// caller's session explicitly; there is no ambient auth state.
package needs

import (
	"context"
	"errors"
	"fmt"

	"entraide/internal/utils"
	"entraide/pkg/types"

	"github.com/sirupsen/logrus"
)

type NeedStore interface {
	CreateNeed(ctx context.Context, need *types.Need) error
	ResolveNeed(ctx context.Context, needID, ownerUserID string) (int64, error)
}

type ParticipationStore interface {
	CreateParticipation(ctx context.Context, participation *types.Participation) error
	ParticipationExists(ctx context.Context, userID, needID string) (bool, error)
}

type Service struct {
	logger         *logrus.Logger
	needs          NeedStore
	participations ParticipationStore
}

func NewService(logger *logrus.Logger, needs NeedStore, participations ParticipationStore) *Service {
	return &Service{
		logger:         logger,
		needs:          needs,
		participations: participations,
	}
}

// CreateNeed validates the payload and persists a new open need owned by
// the session user. Validation failures come back as a single
// InvalidInputError carrying every violated rule; nothing is written.
func (s *Service) CreateNeed(ctx context.Context, session *types.Session, input types.CreateNeedInput) (*types.Need, error) {
	if !session.Authenticated() {
		return nil, types.ErrUnauthenticated
	}

	if err := validateCreateNeedInput(input); err != nil {
		return nil, err
	}

	need := &types.Need{
		Title:           input.Title,
		Description:     input.Description,
		City:            types.NeedCity(input.City),
		Category:        types.NeedCategory(input.Category),
		WhatsappNumber:  input.WhatsappNumber,
		Status:          types.NeedStatusOpen,
		CreatedByUserID: session.UserID,
	}

	if err := s.needs.CreateNeed(ctx, need); err != nil {
		return nil, fmt.Errorf("create need: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"need_id": need.ID,
		"user_id": session.UserID,
		"city":    need.City,
	}).Info("need created")

	return need, nil
}

// Participate records that the session user committed to the need. The
// existence pre-check gives the common duplicate a fast answer; the
// unique constraint on (user_id, need_id) catches the concurrent case
// and surfaces as the same ErrAlreadyParticipating.
func (s *Service) Participate(ctx context.Context, session *types.Session, needID string) (*types.Participation, error) {
	if !session.Authenticated() {
		return nil, types.ErrUnauthenticated
	}

	if !utils.ValidNanoID(needID) {
		invalid := types.NewInvalidInputError()
		invalid.Add("need_id", "malformed identifier")
		return nil, invalid
	}

	exists, err := s.participations.ParticipationExists(ctx, session.UserID, needID)
	if err != nil {
		return nil, fmt.Errorf("check participation: %w", err)
	}
	if exists {
		return nil, types.ErrAlreadyParticipating
	}

	participation := &types.Participation{
		UserID: session.UserID,
		NeedID: needID,
	}

	if err := s.participations.CreateParticipation(ctx, participation); err != nil {
		if errors.Is(err, types.ErrAlreadyParticipating) || errors.Is(err, types.ErrNeedNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create participation: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"need_id": needID,
		"user_id": session.UserID,
	}).Info("participation recorded")

	return participation, nil
}

// ResolveNeed sets status to resolved on the row matching both the need
// ID and the session user as creator. A non-owner (or a missing need)
// matches zero rows and still reports success; the status transition is
// one-way and resolving an already-resolved need is a harmless rewrite.
func (s *Service) ResolveNeed(ctx context.Context, session *types.Session, needID string) error {
	if !session.Authenticated() {
		return types.ErrUnauthenticated
	}

	if !utils.ValidNanoID(needID) {
		invalid := types.NewInvalidInputError()
		invalid.Add("need_id", "malformed identifier")
		return invalid
	}

	affected, err := s.needs.ResolveNeed(ctx, needID, session.UserID)
	if err != nil {
		return fmt.Errorf("resolve need: %w", err)
	}

	if affected == 0 {
		s.logger.WithFields(logrus.Fields{
			"need_id": needID,
			"user_id": session.UserID,
		}).Warn("resolve matched no owned need")
		return nil
	}

	s.logger.WithFields(logrus.Fields{
		"need_id": needID,
		"user_id": session.UserID,
	}).Info("need resolved")

	return nil
}
