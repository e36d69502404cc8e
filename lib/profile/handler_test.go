package profile

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	profileapimodels "leave-letter-backend/models/api/profile"
	dbmodels "leave-letter-backend/models/db"
)

type fakeStore struct {
	institutional map[string]dbmodels.InstitutionalProfile
	general       map[string]dbmodels.GeneralProfile
	err           error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		institutional: map[string]dbmodels.InstitutionalProfile{},
		general:       map[string]dbmodels.GeneralProfile{},
	}
}

func (s *fakeStore) GetInstitutional(_ context.Context, userID string) (*dbmodels.InstitutionalProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.institutional[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) GetGeneral(_ context.Context, userID string) (*dbmodels.GeneralProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.general[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) UpsertInstitutional(_ context.Context, rec dbmodels.InstitutionalProfile) error {
	if s.err != nil {
		return s.err
	}
	s.institutional[rec.UserID] = rec
	return nil
}

func (s *fakeStore) UpsertGeneral(_ context.Context, rec dbmodels.GeneralProfile) error {
	if s.err != nil {
		return s.err
	}
	s.general[rec.UserID] = rec
	return nil
}

func TestProfileHandler(t *testing.T) {
	ctx := context.TODO()

	t.Run(`no profiles yet`, func(t *testing.T) {
		handler := NewInstance(newFakeStore())
		view, err := handler.Fetch(ctx, "user-1", "user@mail.io")
		require.NoError(t, err)
		require.Nil(t, view.Institutional)
		require.Nil(t, view.General)
	})

	t.Run(`save then fetch both variants`, func(t *testing.T) {
		handler := NewInstance(newFakeStore())
		inst := profileapimodels.InstitutionalProfile{
			StudentName:    "Ada",
			Batch:          "B12",
			ManagerName:    "Mr. Lee",
			RecipientEmail: "lee@haca.edu",
		}
		gen := profileapimodels.GeneralProfile{
			UserName:    "Jane Doe",
			CompanyName: "Acme",
			Designation: "Engineer",
			Phone:       "+1 555",
		}
		require.NoError(t, handler.SaveInstitutional(ctx, "user-1", inst))
		require.NoError(t, handler.SaveGeneral(ctx, "user-1", gen))

		view, err := handler.Fetch(ctx, "user-1", "jane@acme.io")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(&inst, view.Institutional))

		gen.Email = "jane@acme.io"
		require.Empty(t, cmp.Diff(&gen, view.General))
	})

	t.Run(`save is an upsert by user`, func(t *testing.T) {
		store := newFakeStore()
		handler := NewInstance(store)
		require.NoError(t, handler.SaveInstitutional(ctx, "user-1", profileapimodels.InstitutionalProfile{Batch: "B1"}))
		require.NoError(t, handler.SaveInstitutional(ctx, "user-1", profileapimodels.InstitutionalProfile{Batch: "B2"}))
		require.Len(t, store.institutional, 1)
		require.Equal(t, "B2", store.institutional["user-1"].Batch)
	})

	t.Run(`anonymous user`, func(t *testing.T) {
		handler := NewInstance(newFakeStore())
		view, err := handler.Fetch(ctx, "", "")
		require.NoError(t, err)
		require.Nil(t, view.General)
		require.Error(t, handler.SaveGeneral(ctx, "", profileapimodels.GeneralProfile{}))
	})

	t.Run(`store failure`, func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("connection refused")
		handler := NewInstance(store)
		_, err := handler.Fetch(ctx, "user-1", "")
		require.Error(t, err)
		require.Error(t, handler.SaveGeneral(ctx, "user-1", profileapimodels.GeneralProfile{}))
	})
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, profileapimodels.GeneralProfile{}.Validate())
	require.NoError(t, profileapimodels.GeneralProfile{Email: "jane@acme.io"}.Validate())
	require.Error(t, profileapimodels.GeneralProfile{Email: "not-an-email"}.Validate())
	require.Error(t, profileapimodels.InstitutionalProfile{RecipientEmail: "lee@"}.Validate())
}
