// Package dialog implements the news authoring conversation: a per-admin
// finite state machine that collects an optional image, a title and a body
// across separate messages and commits exactly one row when complete.
//
// Invariants: a partially collected post is never persisted; the dialog is
// cleared on completion, cancellation and storage failure, so it can never
// get stuck; starting over always wipes any previous attempt, including a
// pending image file.
package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rabotyaga1336/doc-helper/core/telegram/state"
	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// Authoring stages. Idle is state.StateIdle.
const (
	StageAwaitImage   state.State = "news_await_image"
	StageAwaitTitle   state.State = "news_await_title"
	StageAwaitContent state.State = "news_await_content"
)

const (
	tempImageKey = "news_image"
	tempTitleKey = "news_title"
)

// NewsCreator persists a completed post.
type NewsCreator interface {
	Create(ctx context.Context, n models.NewNews) (int64, error)
}

// ImageStore saves uploaded images and removes discarded ones.
type ImageStore interface {
	Save(data []byte, ext string) (string, error)
	Remove(name string) error
}

// Controller owns the authoring session of the single administrator.
// The identity check happens at entry only; every later step is reachable
// solely by the user already holding a non-idle state.
type Controller struct {
	adminID int64
	states  state.Manager
	news    NewsCreator
	images  ImageStore
	log     *slog.Logger
}

// New builds the controller; log may be nil.
func New(adminID int64, states state.Manager, news NewsCreator, images ImageStore, log *slog.Logger) *Controller {
	if states == nil {
		states = state.NewMemoryManager()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{adminID: adminID, states: states, news: news, images: images, log: log}
}

// States exposes the underlying session manager for router wiring.
func (c *Controller) States() state.Manager {
	return c.states
}

// Stage reports the user's current authoring stage.
func (c *Controller) Stage(userID int64) state.State {
	return c.states.GetState(userID)
}

// InProgress reports whether the user holds a non-idle authoring state.
func (c *Controller) InProgress(userID int64) bool {
	return c.states.InProgress(userID)
}

// Start opens a new authoring session for the administrator. Any previous
// partial attempt, including its pending image file, is discarded first.
func (c *Controller) Start(ctx context.Context, userID int64) error {
	if userID != c.adminID {
		c.log.Warn("authoring entry refused",
			slog.String("event", "dialog.start"),
			slog.Int64("user_id", userID),
		)
		return ErrPermissionDenied
	}
	c.discardPendingImage(userID)
	c.states.Clear(userID)
	c.states.SetState(userID, StageAwaitImage)
	c.log.Info("authoring started",
		slog.String("event", "dialog.start"),
		slog.Int64("user_id", userID),
	)
	return nil
}

// AttachImage stores an uploaded image and advances to the title stage.
// A save failure clears the whole dialog rather than leaving it stuck.
func (c *Controller) AttachImage(ctx context.Context, userID int64, data []byte, ext string) error {
	if c.states.GetState(userID) != StageAwaitImage {
		return ErrUnexpectedInput
	}
	name, err := c.images.Save(data, ext)
	if err != nil {
		c.reset(userID)
		c.log.Error("image save failed",
			slog.String("event", "dialog.image"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("store image: %w", err)
	}
	c.states.SetTemp(userID, tempImageKey, name)
	c.states.SetState(userID, StageAwaitTitle)
	return nil
}

// SkipImage advances to the title stage without storing an image.
func (c *Controller) SkipImage(ctx context.Context, userID int64) error {
	if c.states.GetState(userID) != StageAwaitImage {
		return ErrUnexpectedInput
	}
	c.states.SetState(userID, StageAwaitTitle)
	return nil
}

// SetTitle records a non-empty title and advances to the body stage.
func (c *Controller) SetTitle(ctx context.Context, userID int64, title string) error {
	if c.states.GetState(userID) != StageAwaitTitle {
		return ErrUnexpectedInput
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	c.states.SetTemp(userID, tempTitleKey, title)
	c.states.SetState(userID, StageAwaitContent)
	return nil
}

// Finish takes the body text, performs the single insert and closes the
// dialog. On a storage failure the pending image is removed best-effort and
// the dialog is still cleared.
func (c *Controller) Finish(ctx context.Context, userID int64, content string) (int64, error) {
	if c.states.GetState(userID) != StageAwaitContent {
		return 0, ErrUnexpectedInput
	}

	post := models.NewNews{Content: content}
	if title, ok := c.tempString(userID, tempTitleKey); ok {
		post.Title = title
	}
	if image, ok := c.tempString(userID, tempImageKey); ok {
		post.ImagePath = &image
	}

	id, err := c.news.Create(ctx, post)
	if err != nil {
		c.reset(userID)
		c.log.Error("news commit failed",
			slog.String("event", "dialog.finish"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("commit news: %w", err)
	}

	c.states.Clear(userID)
	c.log.Info("authoring finished",
		slog.String("event", "dialog.finish"),
		slog.Int64("user_id", userID),
		slog.Int64("news_id", id),
	)
	return id, nil
}

// Cancel aborts the dialog from any stage, discarding pending fields and the
// pending image file. Cancelling an idle session reports false.
func (c *Controller) Cancel(ctx context.Context, userID int64) bool {
	if !c.states.InProgress(userID) {
		return false
	}
	c.reset(userID)
	c.log.Info("authoring cancelled",
		slog.String("event", "dialog.cancel"),
		slog.Int64("user_id", userID),
	)
	return true
}

// reset discards the pending image file and wipes the session.
func (c *Controller) reset(userID int64) {
	c.discardPendingImage(userID)
	c.states.Clear(userID)
}

func (c *Controller) discardPendingImage(userID int64) {
	if name, ok := c.tempString(userID, tempImageKey); ok && c.images != nil {
		if err := c.images.Remove(name); err != nil {
			c.log.Warn("pending image cleanup failed",
				slog.String("event", "dialog.cancel"),
				slog.Int64("user_id", userID),
				slog.String("image", name),
				slog.String("err", err.Error()),
			)
		}
	}
}

func (c *Controller) tempString(userID int64, key string) (string, bool) {
	v, ok := c.states.GetTemp(userID, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
