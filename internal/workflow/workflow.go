package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"rulesconsole/internal/api"
	"rulesconsole/internal/collections"
	"rulesconsole/internal/draft"
	"rulesconsole/internal/session"
	"rulesconsole/internal/upload"
)

// State of the submission workflow
type State string

const (
	StateIdle       State = "Idle"
	StateValidating State = "Validating"
	StateConfirming State = "Confirming"
	StateSubmitting State = "Submitting"
	StateSuccess    State = "Success"
	StateFailed     State = "Failed"
)

// Notifier shows a transient notice to the user. Severity is one of
// "info", "success" or "error".
type Notifier interface {
	Notify(message, severity string)
}

// Confirmer asks the user a blocking yes/no question
type Confirmer interface {
	Confirm(message string) bool
}

var (
	// ErrRestrictedRole means the session's role may not create or
	// delete rules.
	ErrRestrictedRole = errors.New("restricted role cannot modify rules")

	// ErrFormNotOpen means submit was called without an open form
	ErrFormNotOpen = errors.New("rule form is not open")
)

// ValidationError names the first required field found missing
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

const (
	msgSelectUser      = "Select User Name before click save button"
	msgSelectDevice    = "Select Device before click save button"
	msgSelectEmail     = "Select EmailStatus before click save button"
	msgConfirmCreate   = "Are you sure you want to Create New Rule?"
	msgCreated         = "New Rule Created Successfully!"
	msgConfirmDelete   = "Are you sure you want to Delete this Rule?"
	msgDeleted         = "Rule Deleted Successfully!"
	msgFetchFailed     = "Failed to fetch data. Please try again later."
	msgUnexpectedError = "An unexpected error occurred. Please try again later."
)

// Workflow drives the rules view: load the collections, hold the draft
// while the form is open, and run the validate/confirm/upload/create
// sequence on submit. All methods are meant to be called from a single
// goroutine, mirroring an event-driven UI.
type Workflow struct {
	client    *api.Client
	cache     *collections.Cache
	session   *session.Session
	uploader  *upload.Coordinator
	notifier  Notifier
	confirmer Confirmer

	// now stamps dateCreated/timeCreated at submit time, overridable
	// in tests
	now func() time.Time

	state       State
	draft       *draft.Rule
	subscribers []func(State)
}

// New wires a workflow from its collaborators
func New(client *api.Client, cache *collections.Cache, sess *session.Session, uploader *upload.Coordinator, notifier Notifier, confirmer Confirmer) *Workflow {
	return &Workflow{
		client:    client,
		cache:     cache,
		session:   sess,
		uploader:  uploader,
		notifier:  notifier,
		confirmer: confirmer,
		now:       time.Now,
		state:     StateIdle,
	}
}

// Initialize performs the first load. It replaces a UI framework's mount
// hook and can be called from plain code or tests alike.
func (w *Workflow) Initialize(ctx context.Context) error {
	return w.LoadAll(ctx)
}

// Dispose drops the draft and detaches all subscribers
func (w *Workflow) Dispose() {
	w.draft = nil
	w.subscribers = nil
	w.state = StateIdle
}

// State returns the current workflow state
func (w *Workflow) State() State {
	return w.state
}

// Subscribe registers a callback invoked on every state change
func (w *Workflow) Subscribe(fn func(State)) {
	w.subscribers = append(w.subscribers, fn)
}

func (w *Workflow) setState(s State) {
	w.state = s
	for _, fn := range w.subscribers {
		fn(s)
	}
}

// LoadAll refreshes the three collections. All three fetches either land
// together or not at all; any failure surfaces as exactly one notice.
func (w *Workflow) LoadAll(ctx context.Context) error {
	err := w.cache.Load(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrNoCredential) {
		// No request was attempted, the caller redirects to login
		return err
	}
	log.Errorf("WORKFLOW: load failed: %v", err)
	if errors.Is(err, api.ErrRequestRejected) {
		w.notifier.Notify(msgFetchFailed, "error")
	} else {
		w.notifier.Notify(msgUnexpectedError, "error")
	}
	return err
}

// Collections returns the current consistent snapshot
func (w *Workflow) Collections() collections.Snapshot {
	return w.cache.Snapshot()
}

// CanCreate reports whether this session may open the create form
func (w *Workflow) CanCreate() bool {
	return !w.session.Restricted()
}

// OpenForm starts a fresh draft. Restricted roles never see the form.
func (w *Workflow) OpenForm() (*draft.Rule, error) {
	if !w.CanCreate() {
		return nil, ErrRestrictedRole
	}
	w.draft = draft.New()
	return w.draft, nil
}

// CloseForm discards the draft
func (w *Workflow) CloseForm() {
	w.draft = nil
}

// Draft returns the open draft, or nil when the form is closed
func (w *Workflow) Draft() *draft.Rule {
	return w.draft
}

// Submit validates the draft, asks for confirmation, uploads the image if
// any, and creates the rule. On success the collections reload and the
// form closes; on server rejection the draft stays intact for a retry.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.draft == nil {
		return ErrFormNotOpen
	}
	d := w.draft

	w.setState(StateValidating)
	if d.UserName() == "" {
		w.notifier.Notify(msgSelectUser, "info")
		w.setState(StateIdle)
		return &ValidationError{Field: "user"}
	}
	if d.DeviceName() == "" {
		w.notifier.Notify(msgSelectDevice, "info")
		w.setState(StateIdle)
		return &ValidationError{Field: "device"}
	}
	if d.EmailStatus() == "" {
		w.notifier.Notify(msgSelectEmail, "info")
		w.setState(StateIdle)
		return &ValidationError{Field: "emailStatus"}
	}

	w.setState(StateConfirming)
	if !w.confirmer.Confirm(msgConfirmCreate) {
		w.setState(StateIdle)
		return nil
	}

	w.setState(StateSubmitting)
	imageURL, err := w.uploader.Resolve(ctx, d.AttachedFile())
	if err != nil {
		return w.fail(err)
	}

	// Stamped at submit time, not at form-open time
	now := w.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")

	err = w.client.CreateRule(ctx, api.CreateRuleRequest{
		DeviceID:    d.DeviceID(),
		DeviceName:  d.DeviceName(),
		ImageURL:    imageURL,
		UserID:      d.UserID(),
		UserName:    d.UserName(),
		EmailStatus: d.EmailStatus(),
		DateCreated: date,
		TimeCreated: clock,
		DateUpdated: date,
		TimeUpdated: clock,
	})
	if err != nil {
		return w.fail(err)
	}

	w.setState(StateSuccess)
	w.notifier.Notify(msgCreated, "success")
	if err := w.LoadAll(ctx); err != nil {
		log.Errorf("WORKFLOW: reload after create failed: %v", err)
	}
	w.CloseForm()
	w.setState(StateIdle)
	return nil
}

// DeleteRule confirms and deletes one rule, then reloads
func (w *Workflow) DeleteRule(ctx context.Context, ruleID string) error {
	if w.session.Restricted() {
		return ErrRestrictedRole
	}

	w.setState(StateConfirming)
	if !w.confirmer.Confirm(msgConfirmDelete) {
		w.setState(StateIdle)
		return nil
	}

	w.setState(StateSubmitting)
	if err := w.client.DeleteRule(ctx, ruleID); err != nil {
		return w.fail(err)
	}

	w.setState(StateSuccess)
	w.notifier.Notify(msgDeleted, "success")
	if err := w.LoadAll(ctx); err != nil {
		log.Errorf("WORKFLOW: reload after delete failed: %v", err)
	}
	w.setState(StateIdle)
	return nil
}

// fail surfaces a submit-path failure and returns to Idle with the draft
// intact. Structured server rejections are shown verbatim, everything else
// degrades to a generic notice.
func (w *Workflow) fail(err error) error {
	w.setState(StateFailed)
	log.Errorf("WORKFLOW: submit failed: %v", err)

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		w.notifier.Notify(apiErr.Message, "error")
	} else {
		w.notifier.Notify(msgUnexpectedError, "error")
	}
	w.setState(StateIdle)
	return err
}
