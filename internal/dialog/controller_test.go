package dialog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rabotyaga1336/doc-helper/core/telegram/router"
	"github.com/rabotyaga1336/doc-helper/core/telegram/state"
	"github.com/rabotyaga1336/doc-helper/internal/images"
	"github.com/rabotyaga1336/doc-helper/internal/models"
)

const adminID int64 = 100

type fakeCreator struct {
	created []models.NewNews
	err     error
}

func (f *fakeCreator) Create(_ context.Context, n models.NewNews) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, n)
	return int64(len(f.created)), nil
}

type failingImages struct{}

func (failingImages) Save([]byte, string) (string, error) { return "", errors.New("disk full") }
func (failingImages) Remove(string) error                 { return nil }

func newTestController(t *testing.T, creator *fakeCreator) (*Controller, *images.Store) {
	t.Helper()
	imgs, err := images.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("image store: %v", err)
	}
	return New(adminID, state.NewMemoryManager(), creator, imgs, nil), imgs
}

func TestStatesDriveMessageRouting(t *testing.T) {
	ctrl, _ := newTestController(t, &fakeCreator{})
	ctx := context.Background()

	// The session manager is what the message router dispatches through.
	var fsm router.FSM = ctrl.States()
	if fsm.InProgress(adminID) {
		t.Fatal("fresh controller must report no dialog in progress")
	}
	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !fsm.InProgress(adminID) {
		t.Fatal("router must see the started dialog through States()")
	}
	ctrl.Cancel(ctx, adminID)
	if fsm.InProgress(adminID) {
		t.Fatal("router must see the dialog end through States()")
	}
}

func TestStartRejectsNonAdmin(t *testing.T) {
	creator := &fakeCreator{}
	ctrl, _ := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID+1); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if ctrl.InProgress(adminID + 1) {
		t.Fatal("rejected user must stay idle")
	}
	if len(creator.created) != 0 {
		t.Fatalf("no post expected, got %d", len(creator.created))
	}
}

func TestSkipFlowCreatesPostWithoutImage(t *testing.T) {
	creator := &fakeCreator{}
	ctrl, _ := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := ctrl.Stage(adminID); got != StageAwaitImage {
		t.Fatalf("stage = %s, want %s", got, StageAwaitImage)
	}
	if err := ctrl.SkipImage(ctx, adminID); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if err := ctrl.SetTitle(ctx, adminID, "  Launch notes  "); err != nil {
		t.Fatalf("title: %v", err)
	}
	id, err := ctrl.Finish(ctx, adminID, "Body text")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}

	if len(creator.created) != 1 {
		t.Fatalf("created %d posts, want 1", len(creator.created))
	}
	post := creator.created[0]
	if post.Title != "Launch notes" {
		t.Fatalf("title = %q", post.Title)
	}
	if post.Content != "Body text" {
		t.Fatalf("content = %q", post.Content)
	}
	if post.ImagePath != nil {
		t.Fatalf("image path = %v, want nil", *post.ImagePath)
	}
	if ctrl.InProgress(adminID) {
		t.Fatal("dialog must be idle after finish")
	}
}

func TestImageFlowKeepsFile(t *testing.T) {
	creator := &fakeCreator{}
	ctrl, imgs := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.AttachImage(ctx, adminID, []byte("png-bytes"), ".png"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := ctrl.SetTitle(ctx, adminID, "With picture"); err != nil {
		t.Fatalf("title: %v", err)
	}
	if _, err := ctrl.Finish(ctx, adminID, "body"); err != nil {
		t.Fatalf("finish: %v", err)
	}

	post := creator.created[0]
	if post.ImagePath == nil {
		t.Fatal("expected image path on post")
	}
	if filepath.Ext(*post.ImagePath) != ".png" {
		t.Fatalf("image name = %q, want .png extension", *post.ImagePath)
	}
	if !imgs.Exists(*post.ImagePath) {
		t.Fatalf("image file %s missing after finish", *post.ImagePath)
	}
	data, err := os.ReadFile(imgs.Path(*post.ImagePath))
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("image content = %q", data)
	}
}

func TestCancelDiscardsPendingImage(t *testing.T) {
	creator := &fakeCreator{}
	ctrl, imgs := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.AttachImage(ctx, adminID, []byte("x"), ".jpg"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	name := pendingImageName(t, ctrl)

	if !ctrl.Cancel(ctx, adminID) {
		t.Fatal("cancel of an active dialog must report true")
	}
	if ctrl.InProgress(adminID) {
		t.Fatal("dialog must be idle after cancel")
	}
	if imgs.Exists(name) {
		t.Fatalf("pending image %s must be removed on cancel", name)
	}
	if len(creator.created) != 0 {
		t.Fatal("cancel must not persist anything")
	}
}

func TestCancelIdleReportsFalse(t *testing.T) {
	ctrl, _ := newTestController(t, &fakeCreator{})
	if ctrl.Cancel(context.Background(), adminID) {
		t.Fatal("cancel with no active dialog must report false")
	}
}

func TestEmptyTitleRejected(t *testing.T) {
	ctrl, _ := newTestController(t, &fakeCreator{})
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.SkipImage(ctx, adminID); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if err := ctrl.SetTitle(ctx, adminID, "   "); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if got := ctrl.Stage(adminID); got != StageAwaitTitle {
		t.Fatalf("stage = %s, blank title must not advance", got)
	}
}

func TestOutOfOrderInputRejected(t *testing.T) {
	ctrl, _ := newTestController(t, &fakeCreator{})
	ctx := context.Background()

	if err := ctrl.AttachImage(ctx, adminID, []byte("x"), ".jpg"); !errors.Is(err, ErrUnexpectedInput) {
		t.Fatalf("attach while idle: got %v", err)
	}
	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := ctrl.Finish(ctx, adminID, "body"); !errors.Is(err, ErrUnexpectedInput) {
		t.Fatalf("finish while awaiting image: got %v", err)
	}
	if got := ctrl.Stage(adminID); got != StageAwaitImage {
		t.Fatalf("stage = %s, rejected input must not advance", got)
	}
}

func TestImageSaveFailureClearsDialog(t *testing.T) {
	creator := &fakeCreator{}
	ctrl := New(adminID, state.NewMemoryManager(), creator, failingImages{}, nil)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.AttachImage(ctx, adminID, []byte("x"), ".jpg"); err == nil {
		t.Fatal("expected save error")
	}
	if ctrl.InProgress(adminID) {
		t.Fatal("dialog must be cleared after save failure")
	}
}

func TestFinishFailureClearsDialogAndImage(t *testing.T) {
	creator := &fakeCreator{err: errors.New("db down")}
	ctrl, imgs := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.AttachImage(ctx, adminID, []byte("x"), ".jpg"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	name := pendingImageName(t, ctrl)
	if err := ctrl.SetTitle(ctx, adminID, "t"); err != nil {
		t.Fatalf("title: %v", err)
	}

	if _, err := ctrl.Finish(ctx, adminID, "body"); err == nil {
		t.Fatal("expected commit error")
	}
	if ctrl.InProgress(adminID) {
		t.Fatal("dialog must be cleared after commit failure")
	}
	if imgs.Exists(name) {
		t.Fatalf("pending image %s must be removed after commit failure", name)
	}
}

func TestRestartDiscardsPreviousAttempt(t *testing.T) {
	creator := &fakeCreator{}
	ctrl, imgs := newTestController(t, creator)
	ctx := context.Background()

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.AttachImage(ctx, adminID, []byte("x"), ".jpg"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	name := pendingImageName(t, ctrl)

	if err := ctrl.Start(ctx, adminID); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := ctrl.Stage(adminID); got != StageAwaitImage {
		t.Fatalf("stage after restart = %s, want %s", got, StageAwaitImage)
	}
	if imgs.Exists(name) {
		t.Fatalf("image %s from the abandoned attempt must be removed", name)
	}
}

func pendingImageName(t *testing.T, ctrl *Controller) string {
	t.Helper()
	name, ok := ctrl.tempString(adminID, tempImageKey)
	if !ok {
		t.Fatal("expected pending image in session")
	}
	return name
}
