package needs

import (
	"context"
	"io"
	"testing"

	"entraide/internal/utils"
	"entraide/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNeedStore struct {
	needs map[string]*types.Need
}

func newFakeNeedStore() *fakeNeedStore {
	return &fakeNeedStore{needs: make(map[string]*types.Need)}
}

func (f *fakeNeedStore) CreateNeed(_ context.Context, need *types.Need) error {
	need.ID = utils.NanoID()
	copied := *need
	f.needs[need.ID] = &copied
	return nil
}

func (f *fakeNeedStore) ResolveNeed(_ context.Context, needID, ownerUserID string) (int64, error) {
	need, ok := f.needs[needID]
	if !ok || need.CreatedByUserID != ownerUserID {
		return 0, nil
	}

	need.Status = types.NeedStatusResolved
	return 1, nil
}

type fakeParticipationStore struct {
	pairs map[string]*types.Participation

	// blindPrecheck simulates the check-then-act race: the existence
	// pre-check reports false even when a row exists, so the insert has
	// to surface the constraint violation on its own.
	blindPrecheck bool
}

func newFakeParticipationStore() *fakeParticipationStore {
	return &fakeParticipationStore{pairs: make(map[string]*types.Participation)}
}

func pairKey(userID, needID string) string {
	return userID + "|" + needID
}

func (f *fakeParticipationStore) CreateParticipation(_ context.Context, participation *types.Participation) error {
	key := pairKey(participation.UserID, participation.NeedID)
	if _, exists := f.pairs[key]; exists {
		return types.ErrAlreadyParticipating
	}

	participation.ID = utils.NanoID()
	copied := *participation
	f.pairs[key] = &copied
	return nil
}

func (f *fakeParticipationStore) ParticipationExists(_ context.Context, userID, needID string) (bool, error) {
	if f.blindPrecheck {
		return false, nil
	}

	_, exists := f.pairs[pairKey(userID, needID)]
	return exists, nil
}

func newTestService(needStore *fakeNeedStore, participationStore *fakeParticipationStore) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(logger, needStore, participationStore)
}

func validInput() types.CreateNeedInput {
	return types.CreateNeedInput{
		Title:          "Aide pour déménagement",
		Description:    "Besoin de deux personnes samedi matin.",
		City:           "Casablanca",
		Category:       "Other",
		WhatsappNumber: "+212 6 61 00 00 00",
	}
}

func TestCreateNeedRequiresSession(t *testing.T) {
	svc := newTestService(newFakeNeedStore(), newFakeParticipationStore())

	_, err := svc.CreateNeed(context.Background(), nil, validInput())
	assert.ErrorIs(t, err, types.ErrUnauthenticated)

	_, err = svc.CreateNeed(context.Background(), &types.Session{}, validInput())
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}

func TestCreateNeed(t *testing.T) {
	needStore := newFakeNeedStore()
	svc := newTestService(needStore, newFakeParticipationStore())
	session := &types.Session{UserID: "user-1"}

	need, err := svc.CreateNeed(context.Background(), session, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, need.ID)
	assert.Equal(t, types.NeedStatusOpen, need.Status)
	assert.Equal(t, "user-1", need.CreatedByUserID)
	assert.Equal(t, types.NeedCityCasablanca, need.City)

	stored, ok := needStore.needs[need.ID]
	require.True(t, ok)
	assert.Equal(t, types.NeedStatusOpen, stored.Status)
}

func TestCreateNeedInvalidInput(t *testing.T) {
	needStore := newFakeNeedStore()
	svc := newTestService(needStore, newFakeParticipationStore())
	session := &types.Session{UserID: "user-1"}

	input := types.CreateNeedInput{
		Title:          "",
		Description:    "d",
		City:           "Atlantis",
		Category:       "Surfing",
		WhatsappNumber: " ",
	}

	_, err := svc.CreateNeed(context.Background(), session, input)
	require.Error(t, err)

	var invalid *types.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "title")
	assert.Contains(t, invalid.Fields, "city")
	assert.Contains(t, invalid.Fields, "category")
	assert.Contains(t, invalid.Fields, "whatsapp_number")
	assert.NotContains(t, invalid.Fields, "description")

	assert.Empty(t, needStore.needs, "validation failure must not write")
}

func TestParticipate(t *testing.T) {
	needStore := newFakeNeedStore()
	participationStore := newFakeParticipationStore()
	svc := newTestService(needStore, participationStore)

	owner := &types.Session{UserID: "owner"}
	helper := &types.Session{UserID: "helper"}

	need, err := svc.CreateNeed(context.Background(), owner, validInput())
	require.NoError(t, err)

	participation, err := svc.Participate(context.Background(), helper, need.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, participation.ID)
	assert.Equal(t, "helper", participation.UserID)
	assert.Equal(t, need.ID, participation.NeedID)
	assert.Len(t, participationStore.pairs, 1)
}

func TestParticipateTwiceConflicts(t *testing.T) {
	participationStore := newFakeParticipationStore()
	svc := newTestService(newFakeNeedStore(), participationStore)
	helper := &types.Session{UserID: "helper"}
	needID := utils.NanoID()

	_, err := svc.Participate(context.Background(), helper, needID)
	require.NoError(t, err)

	_, err = svc.Participate(context.Background(), helper, needID)
	assert.ErrorIs(t, err, types.ErrAlreadyParticipating)
	assert.Len(t, participationStore.pairs, 1, "exactly one row regardless of repeat calls")
}

func TestParticipateRaceSurfacesConflict(t *testing.T) {
	participationStore := newFakeParticipationStore()
	participationStore.blindPrecheck = true
	svc := newTestService(newFakeNeedStore(), participationStore)
	helper := &types.Session{UserID: "helper"}
	needID := utils.NanoID()

	_, err := svc.Participate(context.Background(), helper, needID)
	require.NoError(t, err)

	// The pre-check misses the existing row; the store-level constraint
	// must still turn the duplicate into a conflict.
	_, err = svc.Participate(context.Background(), helper, needID)
	assert.ErrorIs(t, err, types.ErrAlreadyParticipating)
	assert.Len(t, participationStore.pairs, 1)
}

func TestParticipateMalformedID(t *testing.T) {
	svc := newTestService(newFakeNeedStore(), newFakeParticipationStore())
	helper := &types.Session{UserID: "helper"}

	for _, needID := range []string{"", "short", "has spaces in the identifier!!!!!", "abc$def"} {
		_, err := svc.Participate(context.Background(), helper, needID)

		var invalid *types.InvalidInputError
		require.ErrorAs(t, err, &invalid, "needID %q", needID)
		assert.Contains(t, invalid.Fields, "need_id")
	}
}

func TestParticipateRequiresSession(t *testing.T) {
	svc := newTestService(newFakeNeedStore(), newFakeParticipationStore())

	_, err := svc.Participate(context.Background(), nil, utils.NanoID())
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}

func TestResolveNeedByOwner(t *testing.T) {
	needStore := newFakeNeedStore()
	svc := newTestService(needStore, newFakeParticipationStore())
	owner := &types.Session{UserID: "owner"}

	need, err := svc.CreateNeed(context.Background(), owner, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.ResolveNeed(context.Background(), owner, need.ID))
	assert.Equal(t, types.NeedStatusResolved, needStore.needs[need.ID].Status)

	// resolved is terminal; a repeat resolve is a harmless no-op
	require.NoError(t, svc.ResolveNeed(context.Background(), owner, need.ID))
	assert.Equal(t, types.NeedStatusResolved, needStore.needs[need.ID].Status)
}

func TestResolveNeedByNonOwnerIsSilentNoop(t *testing.T) {
	needStore := newFakeNeedStore()
	svc := newTestService(needStore, newFakeParticipationStore())
	owner := &types.Session{UserID: "owner"}
	intruder := &types.Session{UserID: "intruder"}

	need, err := svc.CreateNeed(context.Background(), owner, validInput())
	require.NoError(t, err)

	err = svc.ResolveNeed(context.Background(), intruder, need.ID)
	assert.NoError(t, err, "non-owner resolve reports success")
	assert.Equal(t, types.NeedStatusOpen, needStore.needs[need.ID].Status, "but changes nothing")
}

func TestResolveNeedMalformedID(t *testing.T) {
	svc := newTestService(newFakeNeedStore(), newFakeParticipationStore())
	owner := &types.Session{UserID: "owner"}

	err := svc.ResolveNeed(context.Background(), owner, "not-a-valid-id")

	var invalid *types.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "need_id")
}

func TestResolveNeedRequiresSession(t *testing.T) {
	svc := newTestService(newFakeNeedStore(), newFakeParticipationStore())

	err := svc.ResolveNeed(context.Background(), nil, utils.NanoID())
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}
