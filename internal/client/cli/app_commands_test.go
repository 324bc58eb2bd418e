package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/notas-cli/internal/client/dialogs"
	"github.com/dcastano/notas-cli/internal/client/forms"
	"github.com/dcastano/notas-cli/internal/client/models"
	"github.com/dcastano/notas-cli/internal/client/notes"
)

// ------------ helpers ------------

// stubInput replaces the interactive input seams with a queue of canned
// answers consumed in call order, and silences REPL output.
func stubInput(t *testing.T, answers ...string) {
	t.Helper()

	origText, origPw, origMl, origPrint := getSimpleText, getPassword, getMultiline, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, printlnFn = origText, origPw, origMl, origPrint
	})

	i := 0
	next := func() string {
		if i >= len(answers) {
			t.Fatalf("input requested beyond %d canned answers", len(answers))
		}
		a := answers[i]
		i++
		return a
	}

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getPassword = func(string, io.Writer) (string, error) { return next(), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	printlnFn = func(...any) (int, error) { return 0, nil }
}

type fakeSession struct {
	registerCalled bool
	loginCalled    bool
	logoutCalled   bool
	deleteCalled   bool
	validateCalled bool
	validateFails  bool
	updatedName    string

	user     *models.User
	tokenExp time.Time
	err      error
}

func (f *fakeSession) Register(ctx context.Context, name, email, password, confirm string) (*models.User, error) {
	f.registerCalled = true
	return f.user, f.err
}
func (f *fakeSession) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.loginCalled = true
	return f.user, f.err
}
func (f *fakeSession) Logout(ctx context.Context) error { f.logoutCalled = true; return f.err }
func (f *fakeSession) Profile(ctx context.Context) (*models.User, error) {
	return f.user, f.err
}
func (f *fakeSession) UpdateProfile(ctx context.Context, name string) (*models.User, error) {
	f.updatedName = name
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	u.Name = name
	return &u, nil
}
func (f *fakeSession) DeleteAccount(ctx context.Context) error { f.deleteCalled = true; return f.err }
func (f *fakeSession) ValidateToken(ctx context.Context) bool {
	f.validateCalled = true
	return !f.validateFails && f.user != nil
}
func (f *fakeSession) TokenExpiresAt(ctx context.Context) (time.Time, error) {
	return f.tokenExp, nil
}
func (f *fakeSession) IsAuthenticated(ctx context.Context) bool { return f.user != nil }
func (f *fakeSession) CurrentUser(ctx context.Context) *models.User {
	return f.user
}

type fakeNotes struct {
	getID   string
	getOut  *models.Note
	getErr  error
	found   []models.Note
	recent  []models.Note
	stats   notes.Stats
	listErr error
}

func (f *fakeNotes) Get(ctx context.Context, id string) (*models.Note, error) {
	f.getID = id
	return f.getOut, f.getErr
}
func (f *fakeNotes) Search(ctx context.Context, query string) ([]models.Note, error) {
	return f.found, f.listErr
}
func (f *fakeNotes) Recent(ctx context.Context, limit int) ([]models.Note, error) {
	return f.recent, f.listErr
}
func (f *fakeNotes) GetStats(ctx context.Context) (notes.Stats, error) {
	return f.stats, f.listErr
}

type fakeStore struct {
	reloaded bool
	items    []models.Note

	createdTitle   string
	createdContent string
	updatedID      string
	updatedUpd     notes.Update
	deletedID      string
	err            error
}

func (f *fakeStore) Reload(ctx context.Context) error { f.reloaded = true; return f.err }
func (f *fakeStore) Notes() []models.Note             { return f.items }
func (f *fakeStore) Create(ctx context.Context, title, content string) (*models.Note, error) {
	f.createdTitle = title
	f.createdContent = content
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: "n1", Title: title, Content: content}, nil
}
func (f *fakeStore) Update(ctx context.Context, id string, upd notes.Update) (*models.Note, error) {
	f.updatedID = id
	f.updatedUpd = upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: id, Title: *upd.Title, Content: *upd.Content}, nil
}
func (f *fakeStore) Delete(ctx context.Context, id string) error { f.deletedID = id; return f.err }

func newTestApp(s *fakeSession, n *fakeNotes, st *fakeStore) *App {
	return &App{
		session:    s,
		notes:      n,
		store:      st,
		editDialog: dialogs.New[models.Note](),
	}
}

// ------------ auth ------------

func TestLogin_Success(t *testing.T) {
	stubInput(t, "ana@example.com", "secreto")

	fs := &fakeSession{user: &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, fs.loginCalled)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "Ana", app.user.Name)
}

func TestLogin_InvalidEmailNeverHitsServer(t *testing.T) {
	stubInput(t, "not-an-email", "secreto")

	fs := &fakeSession{}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})

	err := app.Login(context.Background())
	require.ErrorIs(t, err, forms.ErrInvalid)
	assert.False(t, fs.loginCalled)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_ServerRejection(t *testing.T) {
	stubInput(t, "ana@example.com", "secreto")

	fs := &fakeSession{err: errors.New("wrong credentials")}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, forms.ErrInvalid)
	assert.False(t, app.isLoggedIn())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	stubInput(t, "Ana", "ana@example.com", "secreto", "secretX")

	fs := &fakeSession{}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})

	err := app.Register(context.Background())
	require.ErrorIs(t, err, forms.ErrInvalid)
	assert.False(t, fs.registerCalled)
}

func TestRegister_Success(t *testing.T) {
	stubInput(t, "Ana", "ana@example.com", "secreto", "secreto")

	fs := &fakeSession{user: &models.User{ID: "u1", Name: "Ana"}}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})

	require.NoError(t, app.Register(context.Background()))
	assert.True(t, fs.registerCalled)
	assert.True(t, app.isLoggedIn())
}

func TestLogout_ClearsUser(t *testing.T) {
	stubInput(t)

	fs := &fakeSession{}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})
	app.user = &models.User{ID: "u1"}

	require.NoError(t, app.Logout(context.Background()))
	assert.True(t, fs.logoutCalled)
	assert.False(t, app.isLoggedIn())
}

func TestRename_UpdatesUser(t *testing.T) {
	stubInput(t, "Ana Maria")

	fs := &fakeSession{user: &models.User{ID: "u1", Name: "Ana"}}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})
	app.user = fs.user

	require.NoError(t, app.Rename(context.Background()))
	assert.Equal(t, "Ana Maria", fs.updatedName)
	assert.Equal(t, "Ana Maria", app.user.Name)
}

func TestDeleteAccount_Declined(t *testing.T) {
	stubInput(t, "no")

	fs := &fakeSession{}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})
	app.user = &models.User{ID: "u1"}

	err := app.DeleteAccount(context.Background())
	require.ErrorIs(t, err, errAborted)
	assert.False(t, fs.deleteCalled)
	assert.True(t, app.isLoggedIn())
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	stubInput(t, "yes")

	fs := &fakeSession{}
	app := newTestApp(fs, &fakeNotes{}, &fakeStore{})
	app.user = &models.User{ID: "u1"}

	require.NoError(t, app.DeleteAccount(context.Background()))
	assert.True(t, fs.deleteCalled)
	assert.False(t, app.isLoggedIn())
}

// ------------ notes ------------

func TestList_ReloadsStore(t *testing.T) {
	stubInput(t)

	st := &fakeStore{items: []models.Note{{ID: "n1", Title: "Compra"}}}
	app := newTestApp(&fakeSession{}, &fakeNotes{}, st)

	require.NoError(t, app.List(context.Background()))
	assert.True(t, st.reloaded)
}

func TestAdd_Success(t *testing.T) {
	stubInput(t, "Compra", "leche\nhuevos")

	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, &fakeNotes{}, st)

	require.NoError(t, app.Add(context.Background()))
	assert.Equal(t, "Compra", st.createdTitle)
	assert.Equal(t, "leche\nhuevos", st.createdContent)
}

func TestAdd_EmptyTitleRejectedLocally(t *testing.T) {
	stubInput(t, "   ", "algo")

	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, &fakeNotes{}, st)

	err := app.Add(context.Background())
	require.ErrorIs(t, err, forms.ErrInvalid)
	assert.Empty(t, st.createdTitle)
}

func TestEdit_EmptyInputKeepsStoredValues(t *testing.T) {
	stubInput(t, "", "nuevo contenido")

	fn := &fakeNotes{getOut: &models.Note{ID: "n1", Title: "Compra", Content: "leche"}}
	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, fn, st)

	require.NoError(t, app.Edit(context.Background(), "n1"))
	assert.Equal(t, "n1", st.updatedID)
	require.NotNil(t, st.updatedUpd.Title)
	require.NotNil(t, st.updatedUpd.Content)
	assert.Equal(t, "Compra", *st.updatedUpd.Title)
	assert.Equal(t, "nuevo contenido", *st.updatedUpd.Content)
	assert.False(t, app.editDialog.IsOpen(), "dialog must close after a successful save")
}

func TestEdit_ServerErrorSurfaced(t *testing.T) {
	stubInput(t, "Otro", "texto")

	fn := &fakeNotes{getOut: &models.Note{ID: "n1", Title: "Compra", Content: "leche"}}
	st := &fakeStore{err: errors.New("boom")}
	app := newTestApp(&fakeSession{}, fn, st)

	err := app.Edit(context.Background(), "n1")
	require.Error(t, err)
	assert.False(t, app.editDialog.IsOpen(), "dialog payload must not leak after the command ends")
}

func TestEdit_NoteNotFound(t *testing.T) {
	stubInput(t)

	fn := &fakeNotes{getErr: errors.New("not found")}
	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, fn, st)

	err := app.Edit(context.Background(), "missing")
	require.Error(t, err)
	assert.Empty(t, st.updatedID)
}

func TestDelete_Confirmed(t *testing.T) {
	stubInput(t, "yes")

	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, &fakeNotes{}, st)

	require.NoError(t, app.Delete(context.Background(), "n1"))
	assert.Equal(t, "n1", st.deletedID)
}

func TestDelete_Declined(t *testing.T) {
	stubInput(t, "nope")

	st := &fakeStore{}
	app := newTestApp(&fakeSession{}, &fakeNotes{}, st)

	err := app.Delete(context.Background(), "n1")
	require.ErrorIs(t, err, errAborted)
	assert.Empty(t, st.deletedID)
}

func TestShow_PrintsNote(t *testing.T) {
	stubInput(t)

	fn := &fakeNotes{getOut: &models.Note{ID: "n1", Title: "Compra", Content: "leche"}}
	app := newTestApp(&fakeSession{}, fn, &fakeStore{})

	require.NoError(t, app.Show(context.Background(), "n1"))
	assert.Equal(t, "n1", fn.getID)
}

func TestStats_SurfacesServiceError(t *testing.T) {
	stubInput(t)

	fn := &fakeNotes{listErr: errors.New("offline")}
	app := newTestApp(&fakeSession{}, fn, &fakeStore{})

	require.Error(t, app.Stats(context.Background()))
}
