package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository for exercising the service without
// the sqlite store.
type memRepo struct {
	contents map[int]*OrderContent
	saves    int
}

func newMemRepo() *memRepo {
	return &memRepo{contents: make(map[int]*OrderContent)}
}

func (r *memRepo) GetOrderContent(orderID int) (*OrderContent, error) {
	oc, ok := r.contents[orderID]
	if !ok {
		return nil, nil
	}
	cp := *oc
	cp.Items = append([]MediaItem(nil), oc.Items...)
	return &cp, nil
}

func (r *memRepo) SaveOrderContent(oc *OrderContent) error {
	r.contents[oc.OrderID] = oc
	r.saves++
	return nil
}

func TestServiceUnknownOrder(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Get(99)
	require.ErrorIs(t, err, ErrContentNotFound)
	require.ErrorIs(t, svc.AddMediaItem(99, NewNote("n", "b")), ErrContentNotFound)
	require.ErrorIs(t, svc.RemoveMediaItem(99, uuid.New()), ErrContentNotFound)
	require.ErrorIs(t, svc.SelectTheme(99, "meadow"), ErrContentNotFound)
	require.ErrorIs(t, svc.SetCoverPhoto(99, uuid.New()), ErrContentNotFound)
	require.ErrorIs(t, svc.UpdateCustomization(99, DefaultCustomization()), ErrContentNotFound)
	require.ErrorIs(t, svc.Publish(99), ErrContentNotFound)
	_, err = svc.RenderPage(99)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestServiceEditAndPublishFlow(t *testing.T) {
	repo := newMemRepo()
	repo.contents[7] = NewOrderContent(7)
	svc := NewService(repo)

	photo := NewPhoto("lake", "/static/uploads/lake.jpg", "")
	require.NoError(t, svc.AddMediaItem(7, photo))
	require.NoError(t, svc.AddMediaItem(7, NewNote("note", "hello")))
	require.NoError(t, svc.SelectTheme(7, "golden-hour"))

	err := svc.Publish(7)
	var nre *NotReadyError
	require.ErrorAs(t, err, &nre)
	require.Equal(t, []string{MissingCover}, nre.Missing)

	require.NoError(t, svc.SetCoverPhoto(7, photo.ID))
	require.NoError(t, svc.Publish(7))

	oc, err := svc.Get(7)
	require.NoError(t, err)
	require.True(t, oc.Published)
}

func TestServiceFailedMutationIsNotSaved(t *testing.T) {
	repo := newMemRepo()
	repo.contents[1] = NewOrderContent(1)
	svc := NewService(repo)

	saves := repo.saves
	require.ErrorIs(t, svc.SelectTheme(1, "vaporwave"), ErrUnknownTheme)
	require.Equal(t, saves, repo.saves)

	oc, err := svc.Get(1)
	require.NoError(t, err)
	require.Empty(t, oc.ThemeID)
}

func TestServiceRenderPage(t *testing.T) {
	repo := newMemRepo()
	repo.contents[3] = NewOrderContent(3)
	svc := NewService(repo)

	// No theme yet: the caller gets a distinct not-ready signal.
	require.NoError(t, svc.AddMediaItem(3, NewNote("n", "b")))
	_, err := svc.RenderPage(3)
	require.ErrorIs(t, err, ErrNoTheme)

	require.NoError(t, svc.SelectTheme(3, "midnight"))
	page, err := svc.RenderPage(3)
	require.NoError(t, err)
	require.Equal(t, "midnight", page.Theme.ID)
	require.Equal(t, []string{"texts(1)"}, kinds(page.Sections))
}
