package submission

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/convoy/internal/api"
	"github.com/csheth/convoy/internal/forms"
)

// Sender delivers one form's fields to the service.
type Sender func(ctx context.Context, fields forms.Fields) (api.Result, error)

// Config wires a Controller to its form.
type Config struct {
	Form  forms.FormID
	Store *forms.Store
	Send  Sender
	// Refresh is fired after every successful submission. Its outcome never
	// feeds back into the controller.
	Refresh func()
	Logger  *zap.Logger
	// Timeout bounds Run when positive. Zero leaves requests unbounded.
	Timeout        time.Duration
	SuccessMessage string
	FailureMessage string
}

// Request is the single outstanding submission of a controller.
type Request struct {
	ID     string
	Form   forms.FormID
	Fields forms.Fields
}

// Outcome is what came back for a Request.
type Outcome struct {
	RequestID string
	Result    api.Result
	Err       error
}

// Controller owns the submit → await → resolve lifecycle of one form. At most
// one request is outstanding at a time.
type Controller struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	state    State
	inflight string
}

// New returns an Idle controller.
func New(cfg Config) *Controller {
	if cfg.SuccessMessage == "" {
		cfg.SuccessMessage = defaultSuccess(cfg.Form)
	}
	if cfg.FailureMessage == "" {
		cfg.FailureMessage = DefaultFailure
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:    cfg,
		logger: logger.With(zap.String("form", string(cfg.Form))),
	}
}

func defaultSuccess(form forms.FormID) string {
	if form == forms.Application {
		return DefaultApplicationSuccess
	}
	return DefaultNewsletterSuccess
}

// Form reports which form the controller drives.
func (c *Controller) Form() forms.FormID {
	return c.cfg.Form
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether a request is outstanding.
func (c *Controller) Pending() bool {
	return c.State().Status == Pending
}

// Begin moves the controller to Pending and hands back the request to run.
// While a request is outstanding it returns false and changes nothing.
func (c *Controller) Begin(fields forms.Fields) (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == Pending {
		c.logger.Debug("submit ignored while pending", zap.String("request_id", c.inflight))
		return Request{}, false
	}
	req := Request{
		ID:     uuid.NewString(),
		Form:   c.cfg.Form,
		Fields: normalize(fields),
	}
	c.state = State{Status: Pending}
	c.inflight = req.ID
	c.logger.Debug("submission pending", zap.String("request_id", req.ID))
	return req, true
}

// Run performs the request. It touches no controller state and is safe to
// call from a background goroutine.
func (c *Controller) Run(ctx context.Context, req Request) Outcome {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}
	if c.cfg.Send == nil {
		return Outcome{RequestID: req.ID, Err: errors.New("submission sender not configured")}
	}
	result, err := c.cfg.Send(ctx, req.Fields)
	return Outcome{RequestID: req.ID, Result: result, Err: err}
}

// Resolve applies an outcome. Outcomes for anything but the outstanding
// request are dropped.
func (c *Controller) Resolve(out Outcome) State {
	c.mu.Lock()
	if c.state.Status != Pending || out.RequestID != c.inflight {
		state := c.state
		c.mu.Unlock()
		c.logger.Debug("stale outcome dropped", zap.String("request_id", out.RequestID))
		return state
	}
	c.inflight = ""
	if out.Err != nil {
		message := api.Message(out.Err)
		if message == "" {
			message = c.cfg.FailureMessage
		}
		c.state = State{Status: Failed, Message: message}
		state := c.state
		c.mu.Unlock()
		c.logger.Info("submission failed", zap.String("request_id", out.RequestID), zap.Error(out.Err))
		return state
	}
	message := strings.TrimSpace(out.Result.Message)
	if message == "" {
		message = c.cfg.SuccessMessage
	}
	c.state = State{Status: Succeeded, Message: message}
	state := c.state
	c.mu.Unlock()

	if c.cfg.Store != nil {
		c.cfg.Store.Reset(c.cfg.Form)
	}
	c.logger.Info("submission succeeded", zap.String("request_id", out.RequestID))
	c.fireRefresh()
	return state
}

// Submit runs a whole submission synchronously. The boolean is false when the
// call was rejected because another request is still pending.
func (c *Controller) Submit(ctx context.Context, fields forms.Fields) (State, bool) {
	req, ok := c.Begin(fields)
	if !ok {
		return c.State(), false
	}
	return c.Resolve(c.Run(ctx, req)), true
}

func (c *Controller) fireRefresh() {
	if c.cfg.Refresh == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("stats refresh hook panicked", zap.Any("panic", r))
		}
	}()
	c.cfg.Refresh()
}

func normalize(fields forms.Fields) forms.Fields {
	out := make(forms.Fields, len(fields))
	for key, value := range fields {
		value = strings.TrimSpace(value)
		if key == forms.FieldEmail {
			value = strings.ToLower(value)
		}
		out[key] = value
	}
	return out
}
